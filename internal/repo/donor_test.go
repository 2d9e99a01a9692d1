package repo

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDonorRepo_ListByDonation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, image, donation\s+FROM donors\s+ORDER BY donation DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image", "donation"}).
			AddRow(2, "Big Donor", "", 5000.0).
			AddRow(1, "Small Donor", "", 50.0))

	repo := NewDonorRepo(db)
	donors, err := repo.ListByDonation(context.Background())
	if err != nil {
		t.Fatalf("ListByDonation: %v", err)
	}
	if len(donors) != 2 || donors[0].Donation < donors[1].Donation {
		t.Errorf("donors not ordered by donation desc: %+v", donors)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestDonorRepo_Totals(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT count\(\*\), coalesce\(sum\(donation\), 0\) FROM donors`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(3, 5050.0))

	repo := NewDonorRepo(db)
	count, sum, err := repo.Totals(context.Background())
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if count != 3 || sum != 5050.0 {
		t.Errorf("totals: got count=%d sum=%v", count, sum)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
