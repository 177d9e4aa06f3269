// Package search holds the paginated query envelope shared by every
// aggregate listing: the request (Input), the response (Output) and the
// window arithmetic that connects them.
package search

import (
	"math"
	"strings"
)

// Order is the direction of a single-key sort.
type Order int

const (
	Asc Order = iota
	Desc
)

func (o Order) String() string {
	if o == Desc {
		return "DESC"
	}
	return "ASC"
}

// ParseSort splits a raw sort parameter into a field name and a direction.
// A leading "-" selects Desc; anything else is Asc. An empty string yields
// an empty field, meaning unordered.
func ParseSort(raw string) (string, Order) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "-") {
		return strings.TrimSpace(raw[1:]), Desc
	}
	return raw, Asc
}

// Input is a paginated, filtered and ordered listing request.
type Input struct {
	Page      int
	PageSize  int
	Search    string
	SortField string
	Order     Order
}

// NewInput builds an Input from a raw sort parameter such as "-name".
func NewInput(page, pageSize int, search, sort string) Input {
	field, order := ParseSort(sort)
	return Input{
		Page:      page,
		PageSize:  pageSize,
		Search:    search,
		SortField: field,
		Order:     order,
	}
}

// Skip is the number of matching items before the requested page. It
// saturates at math.MaxInt instead of overflowing.
func (in Input) Skip() int {
	if in.Page < 1 || in.PageSize <= 0 {
		return 0
	}
	if in.Page-1 > math.MaxInt/in.PageSize {
		return math.MaxInt
	}
	return (in.Page - 1) * in.PageSize
}

// Output is one page of results together with the pre-windowing count.
type Output[T any] struct {
	Page       int
	PageSize   int
	TotalItems int
	Items      []T
}

// NewOutput builds an Output for in. A nil items slice is replaced with an
// empty one.
func NewOutput[T any](in Input, total int, items []T) Output[T] {
	if items == nil {
		items = []T{}
	}
	return Output[T]{
		Page:       in.Page,
		PageSize:   in.PageSize,
		TotalItems: total,
		Items:      items,
	}
}

// Window returns the half-open [start, end) index range of the page
// described by in within a result set of total items. Pages past the end
// produce an empty range.
func Window(total int, in Input) (start, end int) {
	if total < 0 {
		total = 0
	}
	size := max(in.PageSize, 0)
	start = min(in.Skip(), total)
	end = start + min(size, total-start)
	return start, end
}

// Paginate windows an already filtered and ordered slice. The returned
// items are a copy.
func Paginate[T any](matched []T, in Input) Output[T] {
	start, end := Window(len(matched), in)
	items := make([]T, end-start)
	copy(items, matched[start:end])
	return NewOutput(in, len(matched), items)
}
