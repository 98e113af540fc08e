package repository

import (
	"context"
	"database/sql"
	"log"
)

// inUnitOfWork runs fn in a transaction on a connection held for the
// duration of the call. The transaction is committed when fn succeeds and
// rolled back otherwise; the connection is released on every path,
// after the commit or rollback.
func inUnitOfWork(ctx context.Context, db *sql.DB, op string, fn func(tx *sql.Tx) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return classify(op, err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return classify(op, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("%s: rollback failed: %v", op, rbErr)
		}
		return classify(op, err)
	}

	if err := tx.Commit(); err != nil {
		return classify(op, err)
	}
	return nil
}
