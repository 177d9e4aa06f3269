package search

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// Field declares one orderable attribute of an aggregate: the name callers
// sort by, the SQL column backing it and the comparator used in memory.
type Field[T any] struct {
	Name    string
	Column  string
	Compare func(a, b T) int
}

// Fields is the ordering table of an aggregate. It is built once at package
// init and is safe for concurrent use afterwards.
type Fields[T any] struct {
	byName map[string]Field[T]
	names  []string
}

// NewFields builds an ordering table. Names are matched case-insensitively.
// It panics on a duplicate name or a field without column or comparator,
// since tables are declared statically.
func NewFields[T any](fields ...Field[T]) Fields[T] {
	f := Fields[T]{byName: make(map[string]Field[T], len(fields))}
	for _, field := range fields {
		key := normalize(field.Name)
		if key == "" || field.Column == "" || field.Compare == nil {
			panic(fmt.Sprintf("search: incomplete field declaration %q", field.Name))
		}
		if _, dup := f.byName[key]; dup {
			panic(fmt.Sprintf("search: duplicate field %q", field.Name))
		}
		f.byName[key] = field
		f.names = append(f.names, field.Name)
	}
	return f
}

// Resolve looks up a field by name, ignoring case and surrounding spaces.
func (f Fields[T]) Resolve(name string) (Field[T], bool) {
	field, ok := f.byName[normalize(name)]
	return field, ok
}

// Names returns the declared field names in declaration order.
func (f Fields[T]) Names() []string {
	return slices.Clone(f.names)
}

// Sort orders items in place by the named field. The sort is stable, so
// ties keep their incoming order. An empty or unknown name leaves items
// untouched.
func (f Fields[T]) Sort(items []T, name string, order Order) {
	field, ok := f.Resolve(name)
	if !ok {
		return
	}
	compare := field.Compare
	if order == Desc {
		compare = func(a, b T) int { return field.Compare(b, a) }
	}
	slices.SortStableFunc(items, compare)
}

// OrderBy appends an ORDER BY clause for the named field. The column comes
// from the table, never from the caller. An empty or unknown name returns
// the builder unchanged.
func (f Fields[T]) OrderBy(b sq.SelectBuilder, name string, order Order) sq.SelectBuilder {
	field, ok := f.Resolve(name)
	if !ok {
		return b
	}
	return b.OrderBy(field.Column + " " + order.String())
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// By compares an ordered attribute: ordinal for strings, numeric for numbers.
func By[T any, K cmp.Ordered](get func(T) K) func(a, b T) int {
	return func(a, b T) int { return cmp.Compare(get(a), get(b)) }
}

// ByTime compares a timestamp attribute chronologically.
func ByTime[T any](get func(T) time.Time) func(a, b T) int {
	return func(a, b T) int { return get(a).Compare(get(b)) }
}

// ByBool compares a boolean attribute with false before true.
func ByBool[T any](get func(T) bool) func(a, b T) int {
	return func(a, b T) int {
		x, y := get(a), get(b)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	}
}

// ByUUID compares a UUID attribute byte-wise, matching PostgreSQL's uuid
// ordering.
func ByUUID[T any](get func(T) uuid.UUID) func(a, b T) int {
	return func(a, b T) int {
		x, y := get(a), get(b)
		return bytes.Compare(x[:], y[:])
	}
}
