package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/admincatalog-backend/internal/domain"
)

// SeedCategory inserts a category row directly and returns it as a domain
// aggregate. createdAt is offset by age so callers can control ordering.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, name string, isActive bool, age time.Duration) *domain.Category {
	t.Helper()

	ts := time.Now().UTC().Add(-age).Truncate(time.Microsecond)
	c := domain.RestoreCategory(uuid.New(), name, name+" description", isActive, ts, ts)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, name, description, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID(), c.Name(), c.Description(), c.IsActive(), c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert: %v", err)
	}

	return c
}
