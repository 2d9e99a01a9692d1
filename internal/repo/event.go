package repo

import (
	"context"
	"database/sql"

	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/models"
)

type EventRepo struct {
	DB *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{DB: db}
}

// ListUpcoming returns events that have not started yet, soonest first.
func (r *EventRepo) ListUpcoming(ctx context.Context) ([]models.CommunityEvent, error) {
	query := `
		SELECT id, title, location, description, starts_at
		FROM community_events
		WHERE starts_at >= now()
		ORDER BY starts_at
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.CommunityEvent
	for rows.Next() {
		var e models.CommunityEvent
		if err := rows.Scan(&e.ID, &e.Title, &e.Location, &e.Description, &e.StartsAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
