package cartstore_test

import (
	"context"
	"testing"

	"github.com/dulcet/patisserie/internal/cartstore"
	"github.com/dulcet/patisserie/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MemoryStore_RoundTrip(t *testing.T) {
	store := cartstore.NewMemoryStore()
	ctx := context.Background()

	items := []domain.LineItem{
		{ProductCode: "GTO-CHOC", Name: "Chocolate Gateau", UnitPriceCents: 2400, Quantity: 2},
		{ProductCode: "ECL-VAN", Name: "Vanilla Eclair", UnitPriceCents: 450, Quantity: 6, Message: "No topping"},
	}

	require.NoError(t, store.Save(ctx, "user-42", items))

	loaded, err := store.Load(ctx, "user-42")
	require.NoError(t, err)
	assert.Equal(t, items, loaded)
}

func Test_MemoryStore_OwnersAreIsolated(t *testing.T) {
	store := cartstore.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user-a", []domain.LineItem{{ProductCode: "GTO-CHOC", Quantity: 1}}))
	require.NoError(t, store.Save(ctx, "", []domain.LineItem{{ProductCode: "ECL-VAN", Quantity: 3}}))

	a, err := store.Load(ctx, "user-a")
	require.NoError(t, err)
	anon, err := store.Load(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, "GTO-CHOC", a[0].ProductCode)
	assert.Equal(t, "ECL-VAN", anon[0].ProductCode)
}

func Test_MemoryStore_LoadUnknownOwnerIsEmpty(t *testing.T) {
	store := cartstore.NewMemoryStore()

	items, err := store.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func Test_MemoryStore_ClearIsIdempotent(t *testing.T) {
	store := cartstore.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user-42", []domain.LineItem{{ProductCode: "GTO-CHOC", Quantity: 1}}))
	require.NoError(t, store.Clear(ctx, "user-42"))
	require.NoError(t, store.Clear(ctx, "user-42"))

	items, err := store.Load(ctx, "user-42")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func Test_MemoryStore_SavedSliceIsDetached(t *testing.T) {
	store := cartstore.NewMemoryStore()
	ctx := context.Background()

	items := []domain.LineItem{{ProductCode: "GTO-CHOC", Quantity: 1}}
	require.NoError(t, store.Save(ctx, "user-42", items))

	// Mutating the caller's slice must not leak into the store.
	items[0].Quantity = 99

	loaded, err := store.Load(ctx, "user-42")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded[0].Quantity)
}

func Test_NewStore_SelectsProvider(t *testing.T) {
	store, err := cartstore.NewStore(context.Background(), cartstore.Config{Provider: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &cartstore.MemoryStore{}, store)

	_, err = cartstore.NewStore(context.Background(), cartstore.Config{Provider: "filesystem"})
	assert.Error(t, err)

	_, err = cartstore.NewStore(context.Background(), cartstore.Config{Provider: "redis"})
	assert.ErrorIs(t, err, cartstore.ErrRedisURLRequired)
}
