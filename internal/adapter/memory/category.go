package memory

import (
	"github.com/heartmarshall/admincatalog-backend/internal/domain"
)

// NewCategoryStore returns an empty in-memory category store.
func NewCategoryStore() *Store[*domain.Category] {
	return New(Config[*domain.Category]{
		Entity:     "Category",
		ID:         (*domain.Category).ID,
		Clone:      (*domain.Category).Snapshot,
		Searchable: domain.CategorySearchField,
		Fields:     domain.CategorySortFields,
	})
}

var (
	_ domain.CategoryRepository = (*Store[*domain.Category])(nil)
	_ domain.UnitOfWork         = (*Store[*domain.Category])(nil)
)
