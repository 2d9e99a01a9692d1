package repo

import (
	"context"
	"database/sql"

	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/models"
)

type SupplyPostRepo struct {
	DB *sql.DB
}

func NewSupplyPostRepo(db *sql.DB) *SupplyPostRepo {
	return &SupplyPostRepo{DB: db}
}

func (r *SupplyPostRepo) List(ctx context.Context) ([]models.SupplyPost, error) {
	query := `
		SELECT id, title, image, category, amount, description, created_at
		FROM supply_posts
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.SupplyPost
	for rows.Next() {
		var p models.SupplyPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Image, &p.Category, &p.Amount, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

func (r *SupplyPostRepo) GetByID(ctx context.Context, id int) (*models.SupplyPost, error) {
	query := `
		SELECT id, title, image, category, amount, description, created_at
		FROM supply_posts
		WHERE id = $1
	`

	p := &models.SupplyPost{}

	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Title, &p.Image, &p.Category, &p.Amount, &p.Description, &p.CreatedAt)

	if err != nil {
		return nil, err
	}

	return p, nil
}

// Create inserts a post and returns its generated id.
func (r *SupplyPostRepo) Create(ctx context.Context, title, image, category, amount, description string) (int, error) {
	query := `
		INSERT INTO supply_posts (title, image, category, amount, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int
	err := r.DB.QueryRowContext(ctx, query, title, image, category, amount, description).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update changes title, description, amount, and category of a post.
// Returns the number of rows modified (0 when the post does not exist).
func (r *SupplyPostRepo) Update(ctx context.Context, id int, title, description, amount, category string) (int64, error) {
	query := `
		UPDATE supply_posts
		SET title = $1, description = $2, amount = $3, category = $4
		WHERE id = $5
	`

	result, err := r.DB.ExecContext(ctx, query, title, description, amount, category, id)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// Delete removes a post. Returns the number of rows deleted (0 when absent).
func (r *SupplyPostRepo) Delete(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM supply_posts WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// Count returns the total number of posts; used by the statistics refresher.
func (r *SupplyPostRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, `SELECT count(*) FROM supply_posts`).Scan(&n)
	return n, err
}
