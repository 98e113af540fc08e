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

const artistColumns = `id, name, city, state, phone, genres, image_link,
	facebook_link, website, seeking_venue, seeking_description, created_at, updated_at`

type artistRepository struct {
	db *sql.DB
}

func NewArtistRepository(db *sql.DB) interfaces.ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	if artist.Genres == nil {
		artist.Genres = []string{}
	}

	query := `
		INSERT INTO artists (
			name, city, state, phone, genres, image_link,
			facebook_link, website, seeking_venue, seeking_description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := inUnitOfWork(ctx, r.db, "create artist", func(tx *sql.Tx) error {
		return tx.QueryRowContext(
			ctx,
			query,
			artist.Name,
			artist.City,
			artist.State,
			artist.Phone,
			pq.Array(artist.Genres),
			artist.ImageLink,
			artist.FacebookLink,
			artist.Website,
			artist.SeekingVenue,
			artist.SeekingDescription,
		).Scan(&artist.ID, &artist.CreatedAt, &artist.UpdatedAt)
	})
	if err != nil {
		log.Printf("Error creating artist: %v", err)
		return err
	}
	return nil
}

func (r *artistRepository) GetByID(ctx context.Context, id int) (*models.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`

	artist, err := scanArtist(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, classify("get artist", err)
	}
	return artist, nil
}

func (r *artistRepository) List(ctx context.Context, filter interfaces.ArtistFilter) ([]models.Artist, error) {
	var where whereBuilder
	if filter.City != "" {
		where.eq("city", filter.City)
	}
	if filter.State != "" {
		where.eq("state", filter.State)
	}
	order, err := orderClause(filter.OrderBy, "")
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}

	query := `SELECT ` + artistColumns + ` FROM artists` + where.String() + order
	return r.query(ctx, "list artists", query, where.args...)
}

func (r *artistRepository) Search(ctx context.Context, term string) ([]models.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY id`
	return r.query(ctx, "search artists", query, escapeLike(term))
}

func (r *artistRepository) Update(ctx context.Context, id int, req *models.UpdateArtistRequest) error {
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
	if req.SeekingVenue != nil {
		set.add("seeking_venue", *req.SeekingVenue)
	}
	if req.SeekingDescription != nil {
		set.add("seeking_description", *req.SeekingDescription)
	}

	query, args := set.build("artists", id)
	err := inUnitOfWork(ctx, r.db, "update artist", func(tx *sql.Tx) error {
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
		log.Printf("Error updating artist %d: %v", id, err)
		return err
	}
	return nil
}

func (r *artistRepository) query(ctx context.Context, op string, query string, args ...interface{}) ([]models.Artist, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error in %s: %v", op, err)
		return nil, classify(op, err)
	}
	defer rows.Close()

	artists := []models.Artist{}
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, classify("scan artist", err)
		}
		artists = append(artists, *artist)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, err)
	}
	return artists, nil
}

func scanArtist(row rowScanner) (*models.Artist, error) {
	var artist models.Artist
	err := row.Scan(
		&artist.ID,
		&artist.Name,
		&artist.City,
		&artist.State,
		&artist.Phone,
		pq.Array(&artist.Genres),
		&artist.ImageLink,
		&artist.FacebookLink,
		&artist.Website,
		&artist.SeekingVenue,
		&artist.SeekingDescription,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if artist.Genres == nil {
		artist.Genres = []string{}
	}
	return &artist, nil
}
