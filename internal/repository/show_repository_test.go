package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

var showRowColumns = []string{"id", "venue_id", "venue_name", "venue_image_link", "artist_id", "artist_name", "artist_image_link", "start_time"}

func TestCreateShowMissingVenueIsConflict(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO shows").
		WithArgs(99, 1, sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})
	mock.ExpectRollback()

	err := NewShowRepository(db).Create(context.Background(), &models.Show{VenueID: 99, ArtistID: 1, StartTime: time.Now().UTC()})
	if !errors.Is(err, interfaces.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateShowAssignsID(t *testing.T) {
	db, mock := newMock(t)
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO shows").
		WithArgs(1, 2, start).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(5, time.Now().UTC()))
	mock.ExpectCommit()

	show := &models.Show{VenueID: 1, ArtistID: 2, StartTime: start}
	if err := NewShowRepository(db).Create(context.Background(), show); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if show.ID != 5 {
		t.Fatalf("expected id 5, got %d", show.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListShowsForVenueWithLimit(t *testing.T) {
	db, mock := newMock(t)
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`WHERE s.venue_id = \$1\s+ORDER BY s.id LIMIT \$2`).
		WithArgs(1, 3).
		WillReturnRows(sqlmock.NewRows(showRowColumns).
			AddRow(1, 1, "The Hall", "", 2, "The Band", "http://img", start))

	shows, err := NewShowRepository(db).List(context.Background(), interfaces.ShowFilter{VenueID: 1, Limit: 3})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(shows) != 1 || shows[0].ArtistName != "The Band" || !shows[0].StartTime.Equal(start) {
		t.Fatalf("unexpected shows %+v", shows)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCountShowsForArtist(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM shows s WHERE s.artist_id = $1")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := NewShowRepository(db).Count(context.Background(), interfaces.ShowFilter{ArtistID: 2})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4, got %d", count)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestEscapeLike(t *testing.T) {
	cases := map[string]string{
		"band":  "band",
		"50%":   `50\%`,
		"a_b":   `a\_b`,
		`back\`: `back\\`,
		"":      "",
	}
	for in, want := range cases {
		if got := escapeLike(in); got != want {
			t.Fatalf("escapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}
