package repo

import (
	"context"
	"database/sql"

	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/models"
)

type TestimonialRepo struct {
	DB *sql.DB
}

func NewTestimonialRepo(db *sql.DB) *TestimonialRepo {
	return &TestimonialRepo{DB: db}
}

func (r *TestimonialRepo) List(ctx context.Context) ([]models.Testimonial, error) {
	query := `
		SELECT id, name, role, image, message, created_at
		FROM testimonials
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Testimonial
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.Image, &t.Message, &t.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, t)
	}

	return items, rows.Err()
}
