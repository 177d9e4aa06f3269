// Package memory implements the aggregate store contract in process memory.
// It backs the "memory" storage driver and the service-level scenario
// tests. Staged writes live in a change set attached to the request
// context and are applied atomically by Commit.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/admincatalog-backend/internal/search"
	"github.com/heartmarshall/admincatalog-backend/pkg/result"
)

// Config describes the aggregate type a Store holds.
type Config[A any] struct {
	// Entity is the aggregate name used in failure messages.
	Entity string
	ID     func(A) uuid.UUID
	// Clone returns an independent copy; stored values never alias the
	// caller's.
	Clone func(A) A
	// Searchable returns the attribute matched by Input.Search
	// (case-sensitive substring).
	Searchable func(A) string
	Fields     search.Fields[A]
}

type opKind int

const (
	opCreate opKind = iota
	opUpdate
)

type stagedOp[A any] struct {
	kind  opKind
	id    uuid.UUID
	value A
}

type changeSet[A any] struct {
	mu      sync.Mutex
	ops     []stagedOp[A]
	created map[uuid.UUID]bool
}

type ctxKey struct{ owner any }

// Store is an in-memory aggregate store and unit of work.
type Store[A any] struct {
	cfg Config[A]

	mu    sync.RWMutex
	rows  map[uuid.UUID]A
	order []uuid.UUID
}

// New creates an empty Store.
func New[A any](cfg Config[A]) *Store[A] {
	return &Store[A]{
		cfg:  cfg,
		rows: make(map[uuid.UUID]A),
	}
}

// Begin attaches a fresh change set to ctx.
func (s *Store[A]) Begin(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{owner: s}, &changeSet[A]{created: make(map[uuid.UUID]bool)})
}

func (s *Store[A]) changes(ctx context.Context) *changeSet[A] {
	cs, _ := ctx.Value(ctxKey{owner: s}).(*changeSet[A])
	return cs
}

// Create stages an insert.
func (s *Store[A]) Create(ctx context.Context, aggregate A) result.Result[result.Unit] {
	cs := s.changes(ctx)
	if cs == nil {
		return result.Failure[result.Unit]("storage: create: no active unit of work")
	}

	id := s.cfg.ID(aggregate)

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.created[id] {
		return result.Failuref[result.Unit]("%s (id: %s) already exists", s.cfg.Entity, id)
	}
	cs.created[id] = true
	cs.ops = append(cs.ops, stagedOp[A]{kind: opCreate, id: id, value: s.cfg.Clone(aggregate)})
	return result.Ok()
}

// GetByID returns a copy of the stored aggregate.
func (s *Store[A]) GetByID(ctx context.Context, id uuid.UUID) result.Result[A] {
	if err := ctx.Err(); err != nil {
		return result.Failuref[A]("storage: get %s: %v", s.cfg.Entity, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.rows[id]
	if !ok {
		return result.Failure[A](s.notFound(id))
	}
	return result.Success(s.cfg.Clone(v))
}

// Update stages a replacement of a stored (or already staged) aggregate.
func (s *Store[A]) Update(ctx context.Context, aggregate A) result.Result[result.Unit] {
	cs := s.changes(ctx)
	if cs == nil {
		return result.Failure[result.Unit]("storage: update: no active unit of work")
	}

	id := s.cfg.ID(aggregate)

	s.mu.RLock()
	_, stored := s.rows[id]
	s.mu.RUnlock()

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if !stored && !cs.created[id] {
		return result.Failure[result.Unit](s.notFound(id))
	}
	cs.ops = append(cs.ops, stagedOp[A]{kind: opUpdate, id: id, value: s.cfg.Clone(aggregate)})
	return result.Ok()
}

// List filters, orders, counts and windows the stored aggregates. Without
// an ordering the result keeps insertion order.
func (s *Store[A]) List(ctx context.Context, input search.Input) result.Result[search.Output[A]] {
	if err := ctx.Err(); err != nil {
		return result.Failuref[search.Output[A]]("storage: list %s: %v", s.cfg.Entity, err)
	}

	s.mu.RLock()
	matched := make([]A, 0, len(s.order))
	for _, id := range s.order {
		v := s.rows[id]
		if input.Search != "" && !strings.Contains(s.cfg.Searchable(v), input.Search) {
			continue
		}
		matched = append(matched, s.cfg.Clone(v))
	}
	s.mu.RUnlock()

	s.cfg.Fields.Sort(matched, input.SortField, input.Order)

	return result.Success(search.Paginate(matched, input))
}

// Commit applies the change set of ctx atomically: either every staged
// operation is applied or none is.
func (s *Store[A]) Commit(ctx context.Context) result.Result[result.Unit] {
	cs := s.changes(ctx)
	if cs == nil {
		return result.Failure[result.Unit]("storage: commit: no active unit of work")
	}
	if err := ctx.Err(); err != nil {
		return result.Failuref[result.Unit]("storage: commit: %v", err)
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	exists := make(map[uuid.UUID]bool, len(cs.ops))
	for _, op := range cs.ops {
		_, stored := s.rows[op.id]
		present := stored || exists[op.id]
		switch op.kind {
		case opCreate:
			if present {
				return result.Failuref[result.Unit]("%s (id: %s) already exists", s.cfg.Entity, op.id)
			}
			exists[op.id] = true
		case opUpdate:
			if !present {
				return result.Failure[result.Unit](s.notFound(op.id))
			}
		}
	}

	for _, op := range cs.ops {
		if op.kind == opCreate {
			s.order = append(s.order, op.id)
		}
		s.rows[op.id] = op.value
	}

	cs.ops = nil
	clear(cs.created)
	return result.Ok()
}

// Len returns the number of committed aggregates.
func (s *Store[A]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

func (s *Store[A]) notFound(id uuid.UUID) string {
	return fmt.Sprintf("%s (id: %s) not found", s.cfg.Entity, id)
}
