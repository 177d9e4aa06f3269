package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const testID = "5f0c2f3e-8d1e-4f52-9c1a-3b2d7e4a6b10"

func TestMapFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		op   string
		id   string
		want string
	}{
		{
			name: "no rows",
			err:  pgx.ErrNoRows,
			op:   "get",
			id:   testID,
			want: "Category (id: " + testID + ") not found",
		},
		{
			name: "wrapped no rows",
			err:  fmt.Errorf("scan row: %w", pgx.ErrNoRows),
			op:   "get",
			id:   testID,
			want: "Category (id: " + testID + ") not found",
		},
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: "23505", Message: "duplicate key"},
			op:   "commit",
			id:   testID,
			want: "Category (id: " + testID + ") already exists",
		},
		{
			name: "check violation",
			err:  &pgconn.PgError{Code: "23514", ConstraintName: "categories_name_not_blank"},
			op:   "commit",
			id:   testID,
			want: "storage: commit Category (id: " + testID + "): check constraint categories_name_not_blank violated",
		},
		{
			name: "value too long",
			err:  &pgconn.PgError{Code: "22001", ColumnName: "name"},
			op:   "commit",
			id:   testID,
			want: "storage: commit Category (id: " + testID + "): value too long for column name",
		},
		{
			name: "context canceled",
			err:  context.Canceled,
			op:   "list",
			want: "storage: list Category: context canceled",
		},
		{
			name: "deadline exceeded wrapped",
			err:  fmt.Errorf("query: %w", context.DeadlineExceeded),
			op:   "count",
			want: "storage: count Category: query: context deadline exceeded",
		},
		{
			name: "unknown error",
			err:  errors.New("connection reset"),
			op:   "get",
			id:   testID,
			want: "storage: get Category (id: " + testID + "): connection reset",
		},
		{
			name: "other pg code",
			err:  &pgconn.PgError{Severity: "ERROR", Code: "40001", Message: "serialization failure"},
			op:   "commit",
			want: "storage: commit Category: ERROR: serialization failure (SQLSTATE 40001)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MapFailure(tt.err, tt.op, "Category", tt.id)
			if got != tt.want {
				t.Errorf("MapFailure() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	want := "Category (id: " + testID + ") not found"
	if got := NotFound("Category", testID); got != want {
		t.Errorf("NotFound() = %q, want %q", got, want)
	}
}
