package cartstore

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/cart"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*redisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, time.Hour), mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	c := cart.New()
	require.NoError(t, c.AddItem(cart.Item{DishID: "d1", Name: "Borscht", UnitPrice: 1200, Quantity: 2, SellerID: "5"}))
	require.NoError(t, c.AddItem(cart.Item{DishID: "d2", Name: "Pelmeni", UnitPrice: 900, Quantity: 1, SellerID: "5"}))

	require.NoError(t, store.Save(ctx, "buyer-1", c))
	assert.True(t, mr.Exists("cart:buyer-1"))
	assert.Equal(t, time.Hour, mr.TTL("cart:buyer-1"))

	got, err := store.Get(ctx, "buyer-1")
	require.NoError(t, err)
	assert.Equal(t, "5", got.SellerID())
	assert.Equal(t, int64(3300), got.Total())
	assert.Equal(t, c.Items(), got.Items())
}

func TestRedisStore_Missing(t *testing.T) {
	store, _ := setupStore(t)

	got, err := store.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
	assert.Empty(t, got.SellerID())
}

func TestRedisStore_EmptyCartDeletesKey(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	c := cart.New()
	require.NoError(t, c.AddItem(cart.Item{DishID: "d1", UnitPrice: 100, Quantity: 1, SellerID: "5"}))
	require.NoError(t, store.Save(ctx, "buyer-1", c))

	c.Clear()
	require.NoError(t, store.Save(ctx, "buyer-1", c))
	assert.False(t, mr.Exists("cart:buyer-1"))
}

func TestRedisStore_Expires(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	c := cart.New()
	require.NoError(t, c.AddItem(cart.Item{DishID: "d1", UnitPrice: 100, Quantity: 1, SellerID: "5"}))
	require.NoError(t, store.Save(ctx, "buyer-1", c))

	mr.FastForward(2 * time.Hour)

	got, err := store.Get(ctx, "buyer-1")
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestRedisStore_CorruptPayload(t *testing.T) {
	store, mr := setupStore(t)
	require.NoError(t, mr.Set("cart:buyer-1", "not json"))

	_, err := store.Get(context.Background(), "buyer-1")
	assert.Error(t, err)
}
