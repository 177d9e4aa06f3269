package category

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/admincatalog-backend/internal/domain"
	"github.com/heartmarshall/admincatalog-backend/pkg/result"
)

// CreateCategory validates the input through the aggregate, stages the new
// category and commits.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) result.Result[CategoryResponse] {
	created := domain.NewCategory(input.Name, input.Description, input.IsActive.OrElse(true))
	if created.IsFailure() {
		return failed(ctx, s.log, "create category", result.Propagate[CategoryResponse](created))
	}
	c := created.Value()

	saved := s.save(ctx, func(ctx context.Context) result.Result[result.Unit] {
		return s.categories.Create(ctx, c)
	})
	if saved.IsFailure() {
		return failed(ctx, s.log, "create category", result.Propagate[CategoryResponse](saved),
			slog.String("category_id", c.ID().String()),
		)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("category_id", c.ID().String()),
		slog.String("name", c.Name()),
		actor(ctx),
	)

	return result.Success(toResponse(c))
}
