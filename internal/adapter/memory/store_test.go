package memory_test

import (
	"context"
	"math"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/admincatalog-backend/internal/adapter/memory"
	"github.com/heartmarshall/admincatalog-backend/internal/domain"
	"github.com/heartmarshall/admincatalog-backend/internal/search"
	"github.com/heartmarshall/admincatalog-backend/pkg/optional"
)

func newCategory(t *testing.T, name string) *domain.Category {
	t.Helper()
	r := domain.NewCategory(name, name+" description", true)
	require.True(t, r.IsSuccess(), r.Message())
	return r.Value()
}

func seed(t *testing.T, store *memory.Store[*domain.Category], names ...string) []*domain.Category {
	t.Helper()
	ctx := store.Begin(context.Background())
	out := make([]*domain.Category, 0, len(names))
	for _, n := range names {
		c := newCategory(t, n)
		require.True(t, store.Create(ctx, c).IsSuccess())
		out = append(out, c)
	}
	r := store.Commit(ctx)
	require.True(t, r.IsSuccess(), r.Message())
	return out
}

func itemNames(items []*domain.Category) []string {
	out := make([]string, len(items))
	for i, c := range items {
		out[i] = c.Name()
	}
	return out
}

func TestStore_CreateAndGetByID(t *testing.T) {
	t.Parallel()
	store := memory.NewCategoryStore()
	created := seed(t, store, "Action")[0]

	r := store.GetByID(context.Background(), created.ID())
	require.True(t, r.IsSuccess(), r.Message())

	got := r.Value()
	assert.Equal(t, created.ID(), got.ID())
	assert.Equal(t, created.Name(), got.Name())
	assert.Equal(t, created.Description(), got.Description())
	assert.Equal(t, created.IsActive(), got.IsActive())
	assert.NotSame(t, created, got, "store must return a snapshot")
}

func TestStore_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	store := memory.NewCategoryStore()
	id := uuid.New()

	r := store.GetByID(context.Background(), id)
	require.True(t, r.IsFailure())
	assert.Equal(t, "Category (id: "+id.String()+") not found", r.Message())
}

func TestStore_StagedWritesInvisibleUntilCommit(t *testing.T) {
	t.Parallel()
	store := memory.NewCategoryStore()
	ctx := store.Begin(context.Background())
	c := newCategory(t, "Horror")

	require.True(t, store.Create(ctx, c).IsSuccess())
	assert.True(t, store.GetByID(ctx, c.ID()).IsFailure())
	assert.Equal(t, 0, store.Len())

	require.True(t, store.Commit(ctx).IsSuccess())
	assert.True(t, store.GetByID(ctx, c.ID()).IsSuccess())
}

func TestStore_WritesRequireUnitOfWork(t *testing.T) {
	t.Parallel()
	store := memory.NewCategoryStore()
	c := newCategory(t, "Horror")

	r := store.Create(context.Background(), c)
	require.True(t, r.IsFailure())
	assert.Contains(t, r.Message(), "no active unit of work")

	assert.True(t, store.Update(context.Background(), c).IsFailure())
	assert.True(t, store.Commit(context.Background()).IsFailure())
}

func TestStore_Create_DuplicateInSameUnit(t *testing.T) {
	t.Parallel()
	store := memory.NewCategoryStore()
	ctx := store.Begin(context.Background())
	c := newCategory(t, "Horror")

	require.True(t, store.Create(ctx, c).IsSuccess())
	r := store.Create(ctx, c)
	require.True(t, r.IsFailure())
	assert.Contains(t, r.Message(), "already exists")
}

func TestStore_Commit_IsAllOrNothing(t *testing.T) {
	t.Parallel()
	store := memory.NewCategoryStore()
	existing := seed(t, store, "Action")[0]

	ctx := store.Begin(context.Background())
	fresh := newCategory(t, "Comedy")
	require.True(t, store.Create(ctx, fresh).IsSuccess())
	require.True(t, store.Create(ctx, existing).IsSuccess())

	r := store.Commit(ctx)
	require.True(t, r.IsFailure())
	assert.Contains(t, r.Message(), existing.ID().String())
	assert.Contains(t, r.Message(), "already exists")
	assert.Equal(t, 1, store.Len())
	assert.True(t, store.GetByID(context.Background(), fresh.ID()).IsFailure())
}

func TestStore_Update(t *testing.T) {
	t.Parallel()
	store := memory.NewCategoryStore()
	c := seed(t, store, "Action")[0]

	ctx := store.Begin(context.Background())
	require.True(t, c.Update(optional.Of("Adventure"), optional.Empty[string]()).IsSuccess())
	require.True(t, store.Update(ctx, c).IsSuccess())
	require.True(t, store.Commit(ctx).IsSuccess())

	got := store.GetByID(context.Background(), c.ID()).Value()
	assert.Equal(t, "Adventure", got.Name())
	assert.Equal(t, "Action description", got.Description())
}

func TestStore_Update_NotFound(t *testing.T) {
	t.Parallel()
	store := memory.NewCategoryStore()
	ctx := store.Begin(context.Background())
	c := newCategory(t, "Ghost")

	r := store.Update(ctx, c)
	require.True(t, r.IsFailure())
	assert.Equal(t, "Category (id: "+c.ID().String()+") not found", r.Message())
}

func TestStore_Update_StagedCreate(t *testing.T) {
	t.Parallel()
	store := memory.NewCategoryStore()
	ctx := store.Begin(context.Background())
	c := newCategory(t, "Drama")

	require.True(t, store.Create(ctx, c).IsSuccess())
	require.True(t, c.Deactivate().IsSuccess())
	require.True(t, store.Update(ctx, c).IsSuccess())
	require.True(t, store.Commit(ctx).IsSuccess())

	assert.False(t, store.GetByID(context.Background(), c.ID()).Value().IsActive())
}

func TestStore_List_SearchScenario(t *testing.T) {
	t.Parallel()
	store := memory.NewCategoryStore()
	seed(t, store, "Action", "Horror", "Horror Real", "Sci-fi AI", "Sci-fi Space", "Sci-fi Robots")
	ctx := context.Background()

	first := store.List(ctx, search.NewInput(1, 2, "Sci-fi", ""))
	require.True(t, first.IsSuccess(), first.Message())
	assert.Equal(t, 3, first.Value().TotalItems)
	assert.Len(t, first.Value().Items, 2)

	second := store.List(ctx, search.NewInput(2, 2, "Sci-fi", ""))
	require.True(t, second.IsSuccess(), second.Message())
	assert.Equal(t, 3, second.Value().TotalItems)
	assert.Len(t, second.Value().Items, 1)
}

func TestStore_List_SearchIsCaseSensitive(t *testing.T) {
	t.Parallel()
	store := memory.NewCategoryStore()
	seed(t, store, "Sci-fi AI", "sci-fi lower")

	out := store.List(context.Background(), search.NewInput(1, 10, "Sci-fi", "")).Value()
	assert.Equal(t, []string{"Sci-fi AI"}, itemNames(out.Items))
}

func TestStore_List_EmptyStore(t *testing.T) {
	t.Parallel()
	store := memory.NewCategoryStore()

	r := store.List(context.Background(), search.NewInput(1, 10, "", ""))
	require.True(t, r.IsSuccess())
	assert.Equal(t, 0, r.Value().TotalItems)
	assert.NotNil(t, r.Value().Items)
	assert.Empty(t, r.Value().Items)
}

func TestStore_List_PageBeyondEnd(t *testing.T) {
	t.Parallel()
	store := memory.NewCategoryStore()
	seed(t, store, "Action", "Horror", "Comedy")

	r := store.List(context.Background(), search.NewInput(5, 2, "", ""))
	require.True(t, r.IsSuccess())
	assert.Equal(t, 3, r.Value().TotalItems)
	assert.Empty(t, r.Value().Items)
}

func TestStore_List_MaxPage(t *testing.T) {
	t.Parallel()
	store := memory.NewCategoryStore()
	seed(t, store, "Action", "Horror", "Comedy")

	r := store.List(context.Background(), search.NewInput(math.MaxInt, 10, "", ""))
	require.True(t, r.IsSuccess(), r.Message())
	assert.Equal(t, 3, r.Value().TotalItems)
	assert.NotNil(t, r.Value().Items)
	assert.Empty(t, r.Value().Items)
}

func TestStore_List_Sorting(t *testing.T) {
	t.Parallel()
	store := memory.NewCategoryStore()
	seed(t, store, "Horror", "Action", "Comedy")
	ctx := context.Background()

	asc := store.List(ctx, search.NewInput(1, 10, "", "name")).Value()
	assert.Equal(t, []string{"Action", "Comedy", "Horror"}, itemNames(asc.Items))

	desc := store.List(ctx, search.NewInput(1, 10, "", "-NAME")).Value()
	assert.Equal(t, []string{"Horror", "Comedy", "Action"}, itemNames(desc.Items))

	unordered := store.List(ctx, search.NewInput(1, 10, "", "")).Value()
	assert.Equal(t, []string{"Horror", "Action", "Comedy"}, itemNames(unordered.Items))
}

func TestStore_List_UnknownSortKeepsAllRows(t *testing.T) {
	t.Parallel()
	store := memory.NewCategoryStore()
	seed(t, store, "Horror", "Action", "Comedy")
	ctx := context.Background()

	plain := store.List(ctx, search.NewInput(1, 10, "", "")).Value()
	typo := store.List(ctx, search.NewInput(1, 10, "", "-nmae"))
	require.True(t, typo.IsSuccess())

	ids := func(items []*domain.Category) []string {
		out := make([]string, len(items))
		for i, c := range items {
			out[i] = c.ID().String()
		}
		slices.Sort(out)
		return out
	}
	assert.Equal(t, ids(plain.Items), ids(typo.Value().Items))
	assert.Equal(t, plain.TotalItems, typo.Value().TotalItems)
}

func TestStore_CanceledContext(t *testing.T) {
	t.Parallel()
	store := memory.NewCategoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := store.List(ctx, search.NewInput(1, 10, "", ""))
	require.True(t, r.IsFailure())
	assert.Contains(t, r.Message(), "context canceled")
}
