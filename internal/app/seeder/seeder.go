// Package seeder creates sample categories through the category service.
// Categories whose name already exists are skipped, so reruns are safe.
package seeder

import (
	"context"
	"log/slog"
	"slices"

	"github.com/heartmarshall/admincatalog-backend/internal/service/category"
	"github.com/heartmarshall/admincatalog-backend/pkg/optional"
	"github.com/heartmarshall/admincatalog-backend/pkg/result"
)

type categoryService interface {
	CreateCategory(ctx context.Context, input category.CreateCategoryInput) result.Result[category.CategoryResponse]
	ListCategories(ctx context.Context, input category.ListCategoriesInput) result.Result[category.ListCategoriesResult]
}

// Report counts the outcome of a run.
type Report struct {
	Created int
	Skipped int
	Failed  int
}

// Seeder creates the configured samples.
type Seeder struct {
	svc         categoryService
	log         *slog.Logger
	maxPageSize int
}

// New creates a Seeder. maxPageSize bounds the lookup of existing names.
func New(log *slog.Logger, svc categoryService, maxPageSize int) *Seeder {
	return &Seeder{svc: svc, log: log.With("component", "seeder"), maxPageSize: maxPageSize}
}

// Run creates every sample not yet present. A failed sample is logged and
// counted; the run continues with the next one. Nothing is written when
// cfg.DryRun is set.
func (s *Seeder) Run(ctx context.Context, cfg Config) Report {
	var rep Report

	for _, sample := range cfg.Categories {
		exists := s.exists(ctx, sample.Name)
		if exists.IsFailure() {
			s.log.WarnContext(ctx, "lookup failed", slog.String("name", sample.Name), slog.String("error", exists.Message()))
			rep.Failed++
			continue
		}
		if exists.Value() {
			rep.Skipped++
			continue
		}

		if cfg.DryRun {
			s.log.InfoContext(ctx, "would create", slog.String("name", sample.Name))
			rep.Created++
			continue
		}

		created := s.svc.CreateCategory(ctx, category.CreateCategoryInput{
			Name:        sample.Name,
			Description: sample.Description,
			IsActive:    optional.FromPtr(sample.Active),
		})
		if created.IsFailure() {
			s.log.WarnContext(ctx, "create failed", slog.String("name", sample.Name), slog.String("error", created.Message()))
			rep.Failed++
			continue
		}
		rep.Created++
	}

	s.log.InfoContext(ctx, "seeding finished",
		slog.Int("created", rep.Created),
		slog.Int("skipped", rep.Skipped),
		slog.Int("failed", rep.Failed),
		slog.Bool("dry_run", cfg.DryRun),
	)
	return rep
}

// exists reports whether a category with exactly name is stored. Search
// matches substrings, so every page of matches is checked.
func (s *Seeder) exists(ctx context.Context, name string) result.Result[bool] {
	for page := 1; ; page++ {
		r := s.svc.ListCategories(ctx, category.ListCategoriesInput{
			Search:   name,
			Page:     optional.Of(page),
			PageSize: optional.Of(s.maxPageSize),
		})
		if r.IsFailure() {
			return result.Propagate[bool](r)
		}
		out := r.Value()
		if slices.ContainsFunc(out.Items, func(c category.CategoryResponse) bool { return c.Name == name }) {
			return result.Success(true)
		}
		if len(out.Items) == 0 || page*out.PageSize >= out.TotalItems {
			return result.Success(false)
		}
	}
}
