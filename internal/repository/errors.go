package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate reports a unique-constraint violation. The database constraint
// is the durable guard; application-level existence checks only produce the
// friendlier message.
var ErrDuplicate = errors.New("duplicate record")

// ErrReferenced reports a foreign-key violation, either a delete blocked by
// dependents or an insert pointing at a missing parent.
var ErrReferenced = errors.New("record referenced by or referencing another record")

func mapPgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrDuplicate
		case "23503":
			return ErrReferenced
		}
	}
	return err
}
