package category

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/admincatalog-backend/internal/domain"
	"github.com/heartmarshall/admincatalog-backend/internal/search"
	"github.com/heartmarshall/admincatalog-backend/pkg/optional"
	"github.com/heartmarshall/admincatalog-backend/pkg/result"
)

// CreateCategoryInput holds the parameters for creating a category.
// IsActive defaults to true when absent.
type CreateCategoryInput struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	IsActive    optional.Value[bool] `json:"isActive"`
}

// GetCategoryInput identifies the category to fetch.
type GetCategoryInput struct {
	ID uuid.UUID
}

// Validate fails when the id is empty.
func (i GetCategoryInput) Validate() result.Result[result.Unit] {
	return domain.NotEmpty("Id", i.ID)
}

// UpdateCategoryInput holds the parameters for updating a category.
// Absent fields are left unchanged.
type UpdateCategoryInput struct {
	ID          uuid.UUID              `json:"-"`
	Name        optional.Value[string] `json:"name"`
	Description optional.Value[string] `json:"description"`
}

// Validate fails when the id is empty. Field values are checked by the
// aggregate.
func (i UpdateCategoryInput) Validate() result.Result[result.Unit] {
	return domain.NotEmpty("Id", i.ID)
}

// SetActiveInput identifies the category to activate or deactivate.
type SetActiveInput struct {
	ID uuid.UUID
}

// Validate fails when the id is empty.
func (i SetActiveInput) Validate() result.Result[result.Unit] {
	return domain.NotEmpty("Id", i.ID)
}

// ListCategoriesInput holds the list query. An absent Page means 1 and an
// absent PageSize takes the configured default; an explicit PageSize of 0
// asks for the count only. Sort is a field name, optionally prefixed by
// "-" for descending order.
type ListCategoriesInput struct {
	Search   string
	Sort     string
	Page     optional.Value[int]
	PageSize optional.Value[int]
}

// listQuery is a ListCategoriesInput with defaults applied.
type listQuery struct {
	search   string
	sort     string
	page     int
	pageSize int
}

func (i ListCategoriesInput) withDefaults(defaultPageSize int) listQuery {
	return listQuery{
		search:   i.Search,
		sort:     i.Sort,
		page:     i.Page.OrElse(1),
		pageSize: i.PageSize.OrElse(defaultPageSize),
	}
}

// Validate checks paging bounds.
func (q listQuery) Validate(maxPageSize int) result.Result[result.Unit] {
	return domain.Validate(
		func() result.Result[result.Unit] { return domain.AtLeast("Page", 1, q.page) },
		func() result.Result[result.Unit] { return domain.AtLeast("PageSize", 0, q.pageSize) },
		func() result.Result[result.Unit] { return domain.AtMost("PageSize", maxPageSize, q.pageSize) },
	)
}

func (q listQuery) toSearchInput() search.Input {
	return search.NewInput(q.page, q.pageSize, q.search, q.sort)
}
