package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/admincatalog-backend/internal/config"
	"github.com/heartmarshall/admincatalog-backend/internal/domain"
	"github.com/heartmarshall/admincatalog-backend/internal/search"
	"github.com/heartmarshall/admincatalog-backend/pkg/ctxutil"
	"github.com/heartmarshall/admincatalog-backend/pkg/result"
)

type categoryRepo interface {
	Create(ctx context.Context, c *domain.Category) result.Result[result.Unit]
	GetByID(ctx context.Context, id uuid.UUID) result.Result[*domain.Category]
	Update(ctx context.Context, c *domain.Category) result.Result[result.Unit]
	List(ctx context.Context, input search.Input) result.Result[search.Output[*domain.Category]]
}

type unitOfWork interface {
	Begin(ctx context.Context) context.Context
	Commit(ctx context.Context) result.Result[result.Unit]
}

// Service provides the category commands and queries.
type Service struct {
	categories categoryRepo
	uow        unitOfWork
	cfg        config.CatalogConfig
	log        *slog.Logger
}

// NewService creates a new Category service.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	uow unitOfWork,
	cfg config.CatalogConfig,
) *Service {
	return &Service{
		categories: categories,
		uow:        uow,
		cfg:        cfg,
		log:        log.With("service", "category"),
	}
}

// save stages write on a fresh unit of work and commits it. Commit runs
// only when the staged write succeeded.
func (s *Service) save(ctx context.Context, write func(ctx context.Context) result.Result[result.Unit]) result.Result[result.Unit] {
	uowCtx := s.uow.Begin(ctx)
	if r := write(uowCtx); r.IsFailure() {
		return r
	}
	return s.uow.Commit(uowCtx)
}

// failed logs a failed operation and passes the Result through.
func failed[T any](ctx context.Context, log *slog.Logger, op string, r result.Result[T], attrs ...any) result.Result[T] {
	log.WarnContext(ctx, op+" failed", append(attrs, slog.String("error", r.Message()))...)
	return r
}

// actor names the operator behind ctx for audit logs. Calls without an
// authenticated subject (seeder, auth disabled) are logged as "system".
func actor(ctx context.Context) slog.Attr {
	if subject, ok := ctxutil.SubjectFromCtx(ctx); ok {
		return slog.String("actor", subject)
	}
	return slog.String("actor", "system")
}
