package category

import (
	"context"

	"github.com/heartmarshall/admincatalog-backend/pkg/result"
)

// ListCategories returns one page of categories whose name contains
// input.Search, ordered by input.Sort. An unknown sort field leaves the
// store's default order.
func (s *Service) ListCategories(ctx context.Context, input ListCategoriesInput) result.Result[ListCategoriesResult] {
	query := input.withDefaults(s.cfg.DefaultPageSize)

	if r := query.Validate(s.cfg.MaxPageSize); r.IsFailure() {
		return result.Propagate[ListCategoriesResult](r)
	}

	return result.Map(s.categories.List(ctx, query.toSearchInput()), toListResult)
}
