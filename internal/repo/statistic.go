package repo

import (
	"context"
	"database/sql"

	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/models"
)

type StatisticRepo struct {
	DB *sql.DB
}

func NewStatisticRepo(db *sql.DB) *StatisticRepo {
	return &StatisticRepo{DB: db}
}

func (r *StatisticRepo) List(ctx context.Context) ([]models.Statistic, error) {
	query := `
		SELECT id, name, label, value, updated_at
		FROM statistics
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.Statistic
	for rows.Next() {
		var s models.Statistic
		if err := rows.Scan(&s.ID, &s.Name, &s.Label, &s.Value, &s.UpdatedAt); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// Upsert writes a named statistic, overwriting the previous value.
func (r *StatisticRepo) Upsert(ctx context.Context, name, label string, value float64) error {
	query := `
		INSERT INTO statistics (name, label, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (name)
		DO UPDATE SET label = $2, value = $3, updated_at = now()
	`

	_, err := r.DB.ExecContext(ctx, query, name, label, value)
	return err
}
