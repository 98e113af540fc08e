package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

const venueColumns = `id, name, city, state, address, phone, genres, image_link,
	facebook_link, website, seeking_talent, seeking_description, created_at, updated_at`

// venueDistinctColumns whitelists the columns Distinct may enumerate.
var venueDistinctColumns = map[string]bool{
	"city":  true,
	"state": true,
}

type venueRepository struct {
	db *sql.DB
}

func NewVenueRepository(db *sql.DB) interfaces.VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	if venue.Genres == nil {
		venue.Genres = []string{}
	}

	query := `
		INSERT INTO venues (
			name, city, state, address, phone, genres, image_link,
			facebook_link, website, seeking_talent, seeking_description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := inUnitOfWork(ctx, r.db, "create venue", func(tx *sql.Tx) error {
		return tx.QueryRowContext(
			ctx,
			query,
			venue.Name,
			venue.City,
			venue.State,
			venue.Address,
			venue.Phone,
			pq.Array(venue.Genres),
			venue.ImageLink,
			venue.FacebookLink,
			venue.Website,
			venue.SeekingTalent,
			venue.SeekingDescription,
		).Scan(&venue.ID, &venue.CreatedAt, &venue.UpdatedAt)
	})
	if err != nil {
		log.Printf("Error creating venue: %v", err)
		return err
	}
	return nil
}

func (r *venueRepository) GetByID(ctx context.Context, id int) (*models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	venue, err := scanVenue(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, classify("get venue", err)
	}
	return venue, nil
}

func (r *venueRepository) List(ctx context.Context, filter interfaces.VenueFilter) ([]models.Venue, error) {
	var where whereBuilder
	if filter.City != "" {
		where.eq("city", filter.City)
	}
	if filter.State != "" {
		where.eq("state", filter.State)
	}
	order, err := orderClause(filter.OrderBy, "")
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}

	query := `SELECT ` + venueColumns + ` FROM venues` + where.String() + order
	return r.query(ctx, "list venues", query, where.args...)
}

func (r *venueRepository) Search(ctx context.Context, term string) ([]models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY id`
	return r.query(ctx, "search venues", query, escapeLike(term))
}

func (r *venueRepository) Update(ctx context.Context, id int, req *models.UpdateVenueRequest) error {
	var set setBuilder
	if req.Name != nil {
		set.add("name", *req.Name)
	}
	if req.City != nil {
		set.add("city", *req.City)
	}
	if req.State != nil {
		set.add("state", *req.State)
	}
	if req.Address != nil {
		set.add("address", *req.Address)
	}
	if req.Phone != nil {
		set.add("phone", *req.Phone)
	}
	if req.Genres != nil {
		genres := *req.Genres
		if genres == nil {
			genres = []string{}
		}
		set.add("genres", pq.Array(genres))
	}
	if req.ImageLink != nil {
		set.add("image_link", *req.ImageLink)
	}
	if req.FacebookLink != nil {
		set.add("facebook_link", *req.FacebookLink)
	}
	if req.Website != nil {
		set.add("website", *req.Website)
	}
	if req.SeekingTalent != nil {
		set.add("seeking_talent", *req.SeekingTalent)
	}
	if req.SeekingDescription != nil {
		set.add("seeking_description", *req.SeekingDescription)
	}

	query, args := set.build("venues", id)
	err := inUnitOfWork(ctx, r.db, "update venue", func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rowsAffected == 0 {
			return sql.ErrNoRows
		}
		return nil
	})
	if err != nil {
		log.Printf("Error updating venue %d: %v", id, err)
		return err
	}
	return nil
}

func (r *venueRepository) Distinct(ctx context.Context, column string) ([]string, error) {
	if !venueDistinctColumns[column] {
		return nil, fmt.Errorf("distinct venues: unsupported column %q", column)
	}

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf("SELECT DISTINCT %s FROM venues", column))
	if err != nil {
		return nil, classify("distinct venues", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, classify("scan distinct venue "+column, err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("distinct venues", err)
	}
	return values, nil
}

func (r *venueRepository) query(ctx context.Context, op string, query string, args ...interface{}) ([]models.Venue, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error in %s: %v", op, err)
		return nil, classify(op, err)
	}
	defer rows.Close()

	venues := []models.Venue{}
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, classify("scan venue", err)
		}
		venues = append(venues, *venue)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, err)
	}
	return venues, nil
}

func scanVenue(row rowScanner) (*models.Venue, error) {
	var venue models.Venue
	err := row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.City,
		&venue.State,
		&venue.Address,
		&venue.Phone,
		pq.Array(&venue.Genres),
		&venue.ImageLink,
		&venue.FacebookLink,
		&venue.Website,
		&venue.SeekingTalent,
		&venue.SeekingDescription,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if venue.Genres == nil {
		venue.Genres = []string{}
	}
	return &venue, nil
}
