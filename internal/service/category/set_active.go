package category

import (
	"context"

	"github.com/heartmarshall/admincatalog-backend/internal/domain"
	"github.com/heartmarshall/admincatalog-backend/pkg/result"
)

// ActivateCategory marks a category active. Activating an active category
// still refreshes updatedAt.
func (s *Service) ActivateCategory(ctx context.Context, input SetActiveInput) result.Result[result.Unit] {
	if r := input.Validate(); r.IsFailure() {
		return r
	}

	return s.modify(ctx, "activate category", "category activated", input.ID, (*domain.Category).Activate)
}

// DeactivateCategory marks a category inactive.
func (s *Service) DeactivateCategory(ctx context.Context, input SetActiveInput) result.Result[result.Unit] {
	if r := input.Validate(); r.IsFailure() {
		return r
	}

	return s.modify(ctx, "deactivate category", "category deactivated", input.ID, (*domain.Category).Deactivate)
}
