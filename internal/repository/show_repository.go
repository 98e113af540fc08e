package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

type showRepository struct {
	db *sql.DB
}

func NewShowRepository(db *sql.DB) interfaces.ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	query := `
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := inUnitOfWork(ctx, r.db, "create show", func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query, show.VenueID, show.ArtistID, show.StartTime).
			Scan(&show.ID, &show.CreatedAt)
	})
	if err != nil {
		log.Printf("Error creating show (venue %d, artist %d): %v", show.VenueID, show.ArtistID, err)
		return err
	}
	return nil
}

func (r *showRepository) List(ctx context.Context, filter interfaces.ShowFilter) ([]models.ShowListing, error) {
	where := showWhere(filter)
	query := `
		SELECT s.id, v.id, v.name, v.image_link, a.id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		JOIN artists a ON a.id = s.artist_id` + where.String() + `
		ORDER BY s.id`
	args := where.args
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error listing shows: %v", err)
		return nil, classify("list shows", err)
	}
	defer rows.Close()

	shows := []models.ShowListing{}
	for rows.Next() {
		var show models.ShowListing
		if err := rows.Scan(
			&show.ID,
			&show.VenueID,
			&show.VenueName,
			&show.VenueImageLink,
			&show.ArtistID,
			&show.ArtistName,
			&show.ArtistImageLink,
			&show.StartTime,
		); err != nil {
			return nil, classify("scan show", err)
		}
		shows = append(shows, show)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list shows", err)
	}
	return shows, nil
}

func (r *showRepository) Count(ctx context.Context, filter interfaces.ShowFilter) (int, error) {
	where := showWhere(filter)

	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM shows s"+where.String(), where.args...).Scan(&count)
	if err != nil {
		return 0, classify("count shows", err)
	}
	return count, nil
}

func showWhere(filter interfaces.ShowFilter) *whereBuilder {
	where := &whereBuilder{}
	if filter.VenueID != 0 {
		where.eq("s.venue_id", filter.VenueID)
	}
	if filter.ArtistID != 0 {
		where.eq("s.artist_id", filter.ArtistID)
	}
	return where
}
