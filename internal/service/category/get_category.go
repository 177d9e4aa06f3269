package category

import (
	"context"

	"github.com/heartmarshall/admincatalog-backend/pkg/result"
)

// GetCategory returns a category by id.
func (s *Service) GetCategory(ctx context.Context, input GetCategoryInput) result.Result[CategoryResponse] {
	if r := input.Validate(); r.IsFailure() {
		return result.Propagate[CategoryResponse](r)
	}

	return result.Map(s.categories.GetByID(ctx, input.ID), toResponse)
}
