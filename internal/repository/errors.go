package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"fyyur/internal/interfaces"
)

// integrityViolation is the SQLSTATE class for not-null, foreign key,
// unique and check violations.
const integrityViolation pq.ErrorClass = "23"

// classify maps a database error onto the store error kinds.
func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, interfaces.ErrNotFound),
		errors.Is(err, interfaces.ErrConflict),
		errors.Is(err, interfaces.ErrStorage):
		return err
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w", op, interfaces.ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == integrityViolation {
		return fmt.Errorf("%s: %w: %w", op, interfaces.ErrConflict, err)
	}
	return fmt.Errorf("%s: %w: %w", op, interfaces.ErrStorage, err)
}

// escapeLike makes term match literally inside a LIKE pattern.
func escapeLike(term string) string {
	out := make([]rune, 0, len(term))
	for _, r := range term {
		switch r {
		case '\\', '%', '_':
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
