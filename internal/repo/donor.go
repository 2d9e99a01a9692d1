package repo

import (
	"context"
	"database/sql"

	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/models"
)

type DonorRepo struct {
	DB *sql.DB
}

func NewDonorRepo(db *sql.DB) *DonorRepo {
	return &DonorRepo{DB: db}
}

// ListByDonation returns donors ordered by donation amount, highest first.
func (r *DonorRepo) ListByDonation(ctx context.Context) ([]models.Donor, error) {
	query := `
		SELECT id, name, image, donation
		FROM donors
		ORDER BY donation DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var donors []models.Donor
	for rows.Next() {
		var d models.Donor
		if err := rows.Scan(&d.ID, &d.Name, &d.Image, &d.Donation); err != nil {
			return nil, err
		}
		donors = append(donors, d)
	}

	return donors, rows.Err()
}

// Totals returns the donor count and the sum of all donations; used by the
// statistics refresher.
func (r *DonorRepo) Totals(ctx context.Context) (count int64, sum float64, err error) {
	err = r.DB.QueryRowContext(ctx, `SELECT count(*), coalesce(sum(donation), 0) FROM donors`).
		Scan(&count, &sum)
	return count, sum, err
}
