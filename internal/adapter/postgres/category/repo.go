// Package category implements the Category repository using PostgreSQL.
// Reads go straight to the database; writes are staged in the request's
// postgres.UnitOfWork and applied on Commit.
package category

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/admincatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/admincatalog-backend/internal/domain"
	"github.com/heartmarshall/admincatalog-backend/internal/search"
	"github.com/heartmarshall/admincatalog-backend/pkg/result"
)

const (
	entity = "Category"
	table  = "categories"
)

var columns = []string{"id", "name", "description", "is_active", "created_at", "updated_at"}

// categoryRow is the scan target for a categories row. The id is scanned
// as text, which pgx supports for uuid columns.
type categoryRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new category repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

var _ domain.CategoryRepository = (*Repo)(nil)

// ---------------------------------------------------------------------------
// Write operations (staged)
// ---------------------------------------------------------------------------

// Create stages an INSERT. Constraint violations surface on Commit.
func (r *Repo) Create(ctx context.Context, c *domain.Category) result.Result[result.Unit] {
	id := c.ID().String()
	if postgres.Staged(ctx, entity, id) {
		return result.Failuref[result.Unit]("%s (id: %s) already exists", entity, id)
	}

	st, err := postgres.NewStatement(
		postgres.Builder.Insert(table).
			Columns(columns...).
			Values(c.ID(), c.Name(), c.Description(), c.IsActive(), c.CreatedAt(), c.UpdatedAt()),
		entity, id, false,
	)
	if err != nil {
		return result.Failure[result.Unit](postgres.MapFailure(err, "build insert", entity, id))
	}

	if !postgres.Stage(ctx, st) {
		return result.Failure[result.Unit]("storage: create: no active unit of work")
	}
	return result.Ok()
}

// Update stages an UPDATE of an existing row. The row must exist in the
// database or be staged in the same unit of work.
func (r *Repo) Update(ctx context.Context, c *domain.Category) result.Result[result.Unit] {
	id := c.ID().String()

	if !postgres.Staged(ctx, entity, id) {
		exists := r.exists(ctx, c.ID())
		if exists.IsFailure() {
			return result.Propagate[result.Unit](exists)
		}
		if !exists.Value() {
			return result.Failure[result.Unit](postgres.NotFound(entity, id))
		}
	}

	st, err := postgres.NewStatement(
		postgres.Builder.Update(table).
			Set("name", c.Name()).
			Set("description", c.Description()).
			Set("is_active", c.IsActive()).
			Set("updated_at", c.UpdatedAt()).
			Where(sq.Eq{"id": c.ID()}),
		entity, id, true,
	)
	if err != nil {
		return result.Failure[result.Unit](postgres.MapFailure(err, "build update", entity, id))
	}

	if !postgres.Stage(ctx, st) {
		return result.Failure[result.Unit]("storage: update: no active unit of work")
	}
	return result.Ok()
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const existsSQL = `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`

func (r *Repo) exists(ctx context.Context, id uuid.UUID) result.Result[bool] {
	var ok bool
	if err := r.db.QueryRow(ctx, existsSQL, id).Scan(&ok); err != nil {
		return result.Failure[bool](postgres.MapFailure(err, "update", entity, id.String()))
	}
	return result.Success(ok)
}

// GetByID returns a category by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) result.Result[*domain.Category] {
	sql, args, err := postgres.Builder.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return result.Failure[*domain.Category](postgres.MapFailure(err, "build get", entity, id.String()))
	}

	var row categoryRow
	if err := pgxscan.Get(ctx, r.db, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return result.Failure[*domain.Category](postgres.NotFound(entity, id.String()))
		}
		return result.Failure[*domain.Category](postgres.MapFailure(err, "get", entity, id.String()))
	}

	return toDomain(row)
}

// List applies the name filter, counts the matches, then fetches the
// requested window ordered by the requested field with id as tie-break.
// Without a known sort field rows come back ordered by id.
func (r *Repo) List(ctx context.Context, input search.Input) result.Result[search.Output[*domain.Category]] {
	type out = search.Output[*domain.Category]

	countSQL, countArgs, err := r.filtered(input, "count(*)").ToSql()
	if err != nil {
		return result.Failure[out](postgres.MapFailure(err, "build count", entity, ""))
	}

	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return result.Failure[out](postgres.MapFailure(err, "count", entity, ""))
	}

	start, end := search.Window(total, input)
	if start == end {
		return result.Success(search.NewOutput[*domain.Category](input, total, nil))
	}

	page := domain.CategorySortFields.OrderBy(r.filtered(input, columns...), input.SortField, input.Order).
		OrderBy("id ASC").
		Offset(uint64(start)).
		Limit(uint64(end - start))

	sql, args, err := page.ToSql()
	if err != nil {
		return result.Failure[out](postgres.MapFailure(err, "build list", entity, ""))
	}

	var rows []categoryRow
	if err := pgxscan.Select(ctx, r.db, &rows, sql, args...); err != nil {
		return result.Failure[out](postgres.MapFailure(err, "list", entity, ""))
	}

	items := make([]*domain.Category, 0, len(rows))
	for _, row := range rows {
		c := toDomain(row)
		if c.IsFailure() {
			return result.Propagate[out](c)
		}
		items = append(items, c.Value())
	}

	return result.Success(search.NewOutput(input, total, items))
}

// filtered selects cols from categories, restricted to names containing
// the search term (case-sensitive LIKE) when one is given.
func (r *Repo) filtered(input search.Input, cols ...string) sq.SelectBuilder {
	b := postgres.Builder.Select(cols...).From(table)
	if input.Search != "" {
		b = b.Where(sq.Like{"name": "%" + escapeLike(input.Search) + "%"})
	}
	return b
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in a search term match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ---------------------------------------------------------------------------
// Mapping helpers: row -> domain
// ---------------------------------------------------------------------------

func toDomain(row categoryRow) result.Result[*domain.Category] {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return result.Failuref[*domain.Category]("storage: decode %s id %q: %v", entity, row.ID, err)
	}
	return result.Success(domain.RestoreCategory(
		id,
		row.Name,
		row.Description,
		row.IsActive,
		row.CreatedAt.UTC(),
		row.UpdatedAt.UTC(),
	))
}
