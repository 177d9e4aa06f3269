package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/admincatalog-backend/internal/domain"
	"github.com/heartmarshall/admincatalog-backend/pkg/result"
)

// UpdateCategory changes the name and/or description of a category.
// Absent fields keep their stored value.
func (s *Service) UpdateCategory(ctx context.Context, input UpdateCategoryInput) result.Result[result.Unit] {
	if r := input.Validate(); r.IsFailure() {
		return r
	}

	return s.modify(ctx, "update category", "category updated", input.ID,
		func(c *domain.Category) result.Result[*domain.Category] {
			return c.Update(input.Name, input.Description)
		},
	)
}

// modify fetches a category, applies change and saves the result.
func (s *Service) modify(
	ctx context.Context,
	op, done string,
	id uuid.UUID,
	change func(c *domain.Category) result.Result[*domain.Category],
) result.Result[result.Unit] {
	attr := slog.String("category_id", id.String())

	current := s.categories.GetByID(ctx, id)
	if current.IsFailure() {
		return failed(ctx, s.log, op, result.Propagate[result.Unit](current), attr)
	}

	changed := change(current.Value())
	if changed.IsFailure() {
		return failed(ctx, s.log, op, result.Propagate[result.Unit](changed), attr)
	}
	c := changed.Value()

	saved := s.save(ctx, func(ctx context.Context) result.Result[result.Unit] {
		return s.categories.Update(ctx, c)
	})
	if saved.IsFailure() {
		return failed(ctx, s.log, op, saved, attr)
	}

	s.log.InfoContext(ctx, done,
		attr,
		slog.String("name", c.Name()),
		slog.Bool("is_active", c.IsActive()),
		actor(ctx),
	)

	return result.Ok()
}
