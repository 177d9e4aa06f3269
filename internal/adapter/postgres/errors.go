package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MapFailure converts pgx/pgconn errors into a failure message naming the
// operation and the affected aggregate.
func MapFailure(err error, op, entity, id string) string {
	return mapFailure(err, op, entity, id)
}

// NotFound is the message for a missing aggregate.
func NotFound(entity, id string) string {
	return notFound(entity, id)
}

func mapFailure(err error, op, entity, id string) string {
	subject := entity
	if id != "" {
		subject = fmt.Sprintf("%s (id: %s)", entity, id)
	}

	// context errors keep their own text
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Sprintf("storage: %s %s: %v", op, subject, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return notFound(entity, id)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Sprintf("%s already exists", subject)
		case "23514": // check_violation
			return fmt.Sprintf("storage: %s %s: check constraint %s violated", op, subject, pgErr.ConstraintName)
		case "22001": // string_data_right_truncation
			return fmt.Sprintf("storage: %s %s: value too long for column %s", op, subject, pgErr.ColumnName)
		}
	}

	return fmt.Sprintf("storage: %s %s: %v", op, subject, err)
}

func notFound(entity, id string) string {
	return fmt.Sprintf("%s (id: %s) not found", entity, id)
}
