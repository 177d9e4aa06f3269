package domain

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/admincatalog-backend/internal/search"
	"github.com/heartmarshall/admincatalog-backend/pkg/result"
)

// Repository is the storage contract every aggregate store implements.
// Create and Update only stage changes in the unit of work attached to ctx;
// nothing is durable until UnitOfWork.Commit.
type Repository[A any] interface {
	Create(ctx context.Context, aggregate A) result.Result[result.Unit]
	GetByID(ctx context.Context, id uuid.UUID) result.Result[A]
	Update(ctx context.Context, aggregate A) result.Result[result.Unit]
	List(ctx context.Context, input search.Input) result.Result[search.Output[A]]
}

// CategoryRepository stores categories.
type CategoryRepository = Repository[*Category]

// UnitOfWork is the commit boundary of one logical request. Begin attaches
// an empty change set to the returned context; Commit applies everything
// staged in it atomically.
type UnitOfWork interface {
	Begin(ctx context.Context) context.Context
	Commit(ctx context.Context) result.Result[result.Unit]
}
