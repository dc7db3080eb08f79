package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/pkg/logger"
	"github.com/m04kA/SMC-TeeTimeService/pkg/ptr"
)

type fakeStorage struct {
	mu      sync.Mutex
	data    map[string][]byte
	loadErr error
	saveErr error
	saves   int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: make(map[string][]byte)}
}

func (f *fakeStorage) Load(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.data[key], nil
}

func (f *fakeStorage) Save(_ context.Context, key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.data[key] = append([]byte(nil), data...)
	return nil
}

func item(id, courseID, teeTime string, total float64) domain.CartItem {
	return domain.CartItem{
		ID:           id,
		CourseID:     courseID,
		CourseName:   "Course " + courseID,
		Date:         teeTime[:10],
		Time:         teeTime,
		Players:      2,
		Package:      domain.Package{ID: "gf18", Name: "Green fee 18", Price: total / 2},
		AddOns:       []domain.AddOn{},
		TotalPrice:   total,
		ProviderType: domain.ProviderZest,
	}
}

func TestStore_AddDistinctKeys(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, newFakeStorage(), "s1", logger.Nop())

	for i := 0; i < 5; i++ {
		teeTime := fmt.Sprintf("2025-06-0%dT09:00:00", i+1)
		require.NoError(t, store.AddItem(ctx, item(fmt.Sprintf("id-%d", i), "A", teeTime, 100)))
		assert.Equal(t, i+1, store.ItemCount())
	}
	assert.Equal(t, 500.0, store.TotalPrice())
}

func TestStore_AddSameKeyReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, newFakeStorage(), "s1", logger.Nop())

	require.NoError(t, store.AddItem(ctx, item("1", "A", "2025-06-01T09:00:00", 100)))
	require.NoError(t, store.AddItem(ctx, item("2", "B", "2025-06-01T15:00:00", 50)))

	replacement := item("3", "A", "2025-06-01T09:00:00", 160)
	replacement.Players = 4
	require.NoError(t, store.AddItem(ctx, replacement))

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "3", items[0].ID)
	assert.Equal(t, 4, items[0].Players)
	assert.Equal(t, 160.0, items[0].TotalPrice)
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, 210.0, store.TotalPrice())
}

func TestStore_RemoveChangesTotalByItemPrice(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, newFakeStorage(), "s1", logger.Nop())

	require.NoError(t, store.AddItem(ctx, item("1", "A", "2025-06-01T09:00:00", 120.5)))
	require.NoError(t, store.AddItem(ctx, item("2", "B", "2025-06-02T09:00:00", 80)))
	before := store.TotalPrice()

	require.NoError(t, store.RemoveItem(ctx, "1"))
	assert.Equal(t, before-120.5, store.TotalPrice())
	assert.Equal(t, 1, store.ItemCount())

	// Отсутствующая позиция: no-op
	require.NoError(t, store.RemoveItem(ctx, "missing"))
	assert.Equal(t, 1, store.ItemCount())
}

func TestStore_UpdateItem(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()
	store := NewStore(ctx, storage, "s1", logger.Nop())
	require.NoError(t, store.AddItem(ctx, item("1", "A", "2025-06-01T09:00:00", 100)))

	require.NoError(t, store.UpdateItem(ctx, "1", domain.CartItemPatch{
		Players:    ptr.Ptr(3),
		TotalPrice: ptr.Ptr(150.0),
		AddOns:     []domain.AddOn{{ID: "buggy", TotalPrice: 40}},
	}))

	updated, ok := store.Item("1")
	require.True(t, ok)
	assert.Equal(t, 3, updated.Players)
	assert.Equal(t, 150.0, updated.TotalPrice)
	assert.Len(t, updated.AddOns, 1)
	assert.Equal(t, "Course A", updated.CourseName)

	saves := storage.saves
	require.NoError(t, store.UpdateItem(ctx, "missing", domain.CartItemPatch{Players: ptr.Ptr(1)}))
	assert.Equal(t, saves, storage.saves)
}

func TestStore_HasItemAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, newFakeStorage(), "s1", logger.Nop())
	require.NoError(t, store.AddItem(ctx, item("1", "A", "2025-06-01T09:00:00", 100)))

	assert.True(t, store.HasItem("A", "2025-06-01T09:00:00"))
	assert.False(t, store.HasItem("A", "2025-06-01T10:00:00"))
	assert.False(t, store.HasItem("B", "2025-06-01T09:00:00"))

	require.NoError(t, store.ClearCart(ctx))
	assert.Equal(t, 0, store.ItemCount())
	assert.Equal(t, 0.0, store.TotalPrice())
}

func TestStore_PersistsEveryMutationAndRoundTrips(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()
	store := NewStore(ctx, storage, "s1", logger.Nop())

	first := item("1", "A", "2025-06-01T09:00:00", 100)
	first.Package.IncludesBuggy = true
	first.AddOns = []domain.AddOn{{ID: "lunch", Name: "Lunch", Price: 15, TotalPrice: 30}}
	require.NoError(t, store.AddItem(ctx, first))
	require.NoError(t, store.AddItem(ctx, item("2", "B", "2025-06-03T10:00:00", 75)))
	assert.Equal(t, 2, storage.saves)

	reloaded := NewStore(ctx, storage, "s1", logger.Nop())
	assert.Equal(t, store.Items(), reloaded.Items())

	other := NewStore(ctx, storage, "s2", logger.Nop())
	assert.Equal(t, 0, other.ItemCount())
}

func TestStore_CorruptDataStartsEmpty(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()
	storage.data[StorageKey("s1")] = []byte(`{not json`)

	store := NewStore(ctx, storage, "s1", logger.Nop())
	assert.Equal(t, 0, store.ItemCount())
	assert.NotNil(t, store.Items())
}

func TestStore_LoadErrorStartsEmpty(t *testing.T) {
	storage := newFakeStorage()
	storage.loadErr = errors.New("connection refused")

	store := NewStore(context.Background(), storage, "s1", logger.Nop())
	assert.Equal(t, 0, store.ItemCount())
}

func TestStore_SaveErrorKeepsInMemoryChange(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()
	storage.saveErr = errors.New("disk full")
	store := NewStore(ctx, storage, "s1", logger.Nop())

	err := store.AddItem(ctx, item("1", "A", "2025-06-01T09:00:00", 100))
	assert.ErrorIs(t, err, ErrPersist)
	assert.Equal(t, 1, store.ItemCount())
}

func TestStore_CheckConflicts(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, newFakeStorage(), "s1", logger.Nop())
	require.NoError(t, store.AddItem(ctx, item("1", "A", "2025-06-01T09:00:00", 100)))

	conflicts := store.CheckConflicts("B", "2025-06-01", "2025-06-01T11:30:00")
	require.Len(t, conflicts, 1)
	assert.Equal(t, domain.ConflictTimeOverlap, conflicts[0].Type)

	assert.Empty(t, store.CheckConflicts("B", "2025-06-01", "2025-06-01T14:00:00"))
}
