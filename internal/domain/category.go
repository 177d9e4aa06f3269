package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/admincatalog-backend/internal/search"
	"github.com/heartmarshall/admincatalog-backend/pkg/optional"
	"github.com/heartmarshall/admincatalog-backend/pkg/result"
)

const (
	CategoryMinNameLength        = 3
	CategoryMaxNameLength        = 255
	CategoryMaxDescriptionLength = 10_000
)

// Category is the catalog aggregate. Its fields are unexported: a valid
// instance comes only from NewCategory, or from RestoreCategory when
// rehydrating stored rows.
type Category struct {
	id          uuid.UUID
	name        string
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

// now truncates to microseconds, the resolution of PostgreSQL timestamptz,
// so values survive a storage round trip unchanged.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// NewCategory validates the inputs and returns a new Category with a fresh
// id and createdAt = updatedAt = now.
func NewCategory(name, description string, isActive bool) result.Result[*Category] {
	ts := now()
	c := &Category{
		id:          uuid.New(),
		name:        name,
		description: description,
		isActive:    isActive,
		createdAt:   ts,
		updatedAt:   ts,
	}
	if r := c.validate(); r.IsFailure() {
		return result.Propagate[*Category](r)
	}
	return result.Success(c)
}

// RestoreCategory rebuilds a Category from storage without validation.
// Only store adapters should call it.
func RestoreCategory(id uuid.UUID, name, description string, isActive bool, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:          id,
		name:        name,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) IsActive() bool       { return c.isActive }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

// Snapshot returns an independent copy.
func (c *Category) Snapshot() *Category {
	cp := *c
	return &cp
}

// Activate marks the category active.
func (c *Category) Activate() result.Result[*Category] {
	return c.mutate(func(next *Category) { next.isActive = true })
}

// Deactivate marks the category inactive.
func (c *Category) Deactivate() result.Result[*Category] {
	return c.mutate(func(next *Category) { next.isActive = false })
}

// Update replaces the name and/or description. Absent values keep the
// current ones.
func (c *Category) Update(name, description optional.Value[string]) result.Result[*Category] {
	return c.mutate(func(next *Category) {
		next.name = name.OrElse(next.name)
		next.description = description.OrElse(next.description)
	})
}

// mutate applies change to a copy, revalidates it and only then adopts the
// new state. On failure c is left untouched.
func (c *Category) mutate(change func(next *Category)) result.Result[*Category] {
	next := *c
	change(&next)
	next.touch()
	if r := next.validate(); r.IsFailure() {
		return result.Propagate[*Category](r)
	}
	*c = next
	return result.Success(c)
}

// touch sets updatedAt to now, keeping it strictly increasing even when
// the clock has not advanced past the previous value.
func (c *Category) touch() {
	ts := now()
	if !ts.After(c.updatedAt) {
		ts = c.updatedAt.Add(time.Microsecond)
	}
	c.updatedAt = ts
}

// validate checks name (blank, min, max) and then description (blank, max),
// stopping at the first violation.
func (c *Category) validate() result.Result[result.Unit] {
	return Validate(
		func() result.Result[result.Unit] { return NotBlank("Name", c.name) },
		func() result.Result[result.Unit] { return MinLength("Name", CategoryMinNameLength, c.name) },
		func() result.Result[result.Unit] { return MaxLength("Name", CategoryMaxNameLength, c.name) },
		func() result.Result[result.Unit] { return NotBlank("Description", c.description) },
		func() result.Result[result.Unit] {
			return MaxLength("Description", CategoryMaxDescriptionLength, c.description)
		},
	)
}

// CategorySortFields lists the attributes a category listing can be
// ordered by.
var CategorySortFields = search.NewFields(
	search.Field[*Category]{Name: "id", Column: "id", Compare: search.ByUUID((*Category).ID)},
	search.Field[*Category]{Name: "name", Column: "name", Compare: search.By((*Category).Name)},
	search.Field[*Category]{Name: "description", Column: "description", Compare: search.By((*Category).Description)},
	search.Field[*Category]{Name: "isActive", Column: "is_active", Compare: search.ByBool((*Category).IsActive)},
	search.Field[*Category]{Name: "createdAt", Column: "created_at", Compare: search.ByTime((*Category).CreatedAt)},
	search.Field[*Category]{Name: "updatedAt", Column: "updated_at", Compare: search.ByTime((*Category).UpdatedAt)},
)

// CategorySearchField is the attribute matched by a listing's search term.
func CategorySearchField(c *Category) string { return c.name }
