package repo

import (
	"context"
	"database/sql"

	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/models"
)

type GalleryRepo struct {
	DB *sql.DB
}

func NewGalleryRepo(db *sql.DB) *GalleryRepo {
	return &GalleryRepo{DB: db}
}

func (r *GalleryRepo) List(ctx context.Context) ([]models.GalleryItem, error) {
	query := `
		SELECT id, title, image, caption
		FROM gallery_items
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.GalleryItem
	for rows.Next() {
		var g models.GalleryItem
		if err := rows.Scan(&g.ID, &g.Title, &g.Image, &g.Caption); err != nil {
			return nil, err
		}
		items = append(items, g)
	}

	return items, rows.Err()
}
