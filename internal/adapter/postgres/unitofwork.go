package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/heartmarshall/admincatalog-backend/pkg/result"
)

type changeSetKey struct{}

type changeSet struct {
	mu         sync.Mutex
	statements []Statement
	staged     map[string]bool
}

// UnitOfWork collects the writes of one request and applies them in a
// single transaction on Commit. Nothing touches the database before Commit,
// so an abandoned change set needs no rollback.
type UnitOfWork struct {
	db DB
}

// NewUnitOfWork creates a UnitOfWork over db.
func NewUnitOfWork(db DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Begin attaches an empty change set to ctx.
func (u *UnitOfWork) Begin(ctx context.Context) context.Context {
	return context.WithValue(ctx, changeSetKey{}, &changeSet{staged: make(map[string]bool)})
}

// Stage appends st to the change set of ctx. It reports false when ctx has
// no active unit of work.
func Stage(ctx context.Context, st Statement) bool {
	cs, ok := ctx.Value(changeSetKey{}).(*changeSet)
	if !ok {
		return false
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.statements = append(cs.statements, st)
	cs.staged[st.Entity+"/"+st.ID] = true
	return true
}

// Staged reports whether a statement for entity/id is already staged in ctx.
func Staged(ctx context.Context, entity, id string) bool {
	cs, ok := ctx.Value(changeSetKey{}).(*changeSet)
	if !ok {
		return false
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.staged[entity+"/"+id]
}

// Commit executes the staged statements in order inside one transaction.
// Isolation level: Read Committed (PostgreSQL default).
// The first failing statement rolls everything back and its failure is
// returned. On panic the transaction is rolled back and the panic re-raised.
func (u *UnitOfWork) Commit(ctx context.Context) result.Result[result.Unit] {
	cs, ok := ctx.Value(changeSetKey{}).(*changeSet)
	if !ok {
		return result.Failure[result.Unit]("storage: commit: no active unit of work")
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if len(cs.statements) == 0 {
		return result.Ok()
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return result.Failuref[result.Unit]("storage: begin transaction: %v", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	for _, st := range cs.statements {
		tag, err := tx.Exec(ctx, st.SQL, st.Args...)
		if err == nil && st.MustAffect && tag.RowsAffected() == 0 {
			_ = tx.Rollback(ctx)
			return result.Failure[result.Unit](notFound(st.Entity, st.ID))
		}
		if err != nil {
			msg := mapFailure(err, "commit", st.Entity, st.ID)
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				msg = fmt.Sprintf("%s (rollback failed: %v)", msg, rbErr)
			}
			return result.Failure[result.Unit](msg)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return result.Failure[result.Unit](mapFailure(err, "commit", "transaction", ""))
	}

	cs.statements = nil
	clear(cs.staged)
	return result.Ok()
}
