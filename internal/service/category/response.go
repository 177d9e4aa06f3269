package category

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/admincatalog-backend/internal/domain"
	"github.com/heartmarshall/admincatalog-backend/internal/search"
)

// CategoryResponse is the read model returned by the handlers.
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

// ListCategoriesResult is one page of categories.
type ListCategoriesResult struct {
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalItems int                `json:"totalItems"`
	Items      []CategoryResponse `json:"items"`
}

func toListResult(out search.Output[*domain.Category]) ListCategoriesResult {
	items := make([]CategoryResponse, 0, len(out.Items))
	for _, c := range out.Items {
		items = append(items, toResponse(c))
	}
	return ListCategoriesResult{
		Page:       out.Page,
		PageSize:   out.PageSize,
		TotalItems: out.TotalItems,
		Items:      items,
	}
}
