package cart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddItem(t *testing.T) {
	testCases := []struct {
		name       string
		items      []Item
		add        Item
		wantErr    error
		wantSeller string
		wantLines  int
		wantTotal  int64
	}{
		{
			name:       "empty cart adopts seller",
			add:        Item{DishID: "d1", UnitPrice: 500, Quantity: 2, SellerID: "5"},
			wantSeller: "5",
			wantLines:  1,
			wantTotal:  1000,
		},
		{
			name:       "same dish merges quantity",
			items:      []Item{{DishID: "d1", UnitPrice: 500, Quantity: 1, SellerID: "5"}},
			add:        Item{DishID: "d1", UnitPrice: 500, Quantity: 3, SellerID: "5"},
			wantSeller: "5",
			wantLines:  1,
			wantTotal:  2000,
		},
		{
			name:       "same seller new dish appends",
			items:      []Item{{DishID: "d1", UnitPrice: 500, Quantity: 1, SellerID: "5"}},
			add:        Item{DishID: "d2", UnitPrice: 250, Quantity: 2, SellerID: "5"},
			wantSeller: "5",
			wantLines:  2,
			wantTotal:  1000,
		},
		{
			name:       "different seller rejected",
			items:      []Item{{DishID: "d1", UnitPrice: 500, Quantity: 1, SellerID: "5"}},
			add:        Item{DishID: "d9", UnitPrice: 100, Quantity: 1, SellerID: "7"},
			wantErr:    ErrDifferentSeller,
			wantSeller: "5",
			wantLines:  1,
			wantTotal:  500,
		},
		{
			name:      "zero quantity rejected",
			add:       Item{DishID: "d1", UnitPrice: 500, Quantity: 0, SellerID: "5"},
			wantErr:   ErrInvalidItem,
			wantLines: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Restore(tc.items)
			require.NoError(t, err)

			err = c.AddItem(tc.add)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tc.wantSeller, c.SellerID())
			assert.Len(t, c.Items(), tc.wantLines)
			assert.Equal(t, tc.wantTotal, c.Total())
		})
	}
}

func TestCart_DifferentSellerLeavesCartUnchanged(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(Item{DishID: "a", UnitPrice: 100, Quantity: 1, SellerID: "5"}))
	require.NoError(t, c.AddItem(Item{DishID: "b", UnitPrice: 200, Quantity: 2, SellerID: "5"}))
	before := c.Items()

	err := c.AddItem(Item{DishID: "a", UnitPrice: 100, Quantity: 1, SellerID: "7"})

	var dse *DifferentSellerError
	require.True(t, errors.As(err, &dse))
	assert.Equal(t, "5", dse.CartSeller)
	assert.Equal(t, "7", dse.ItemSeller)
	assert.Equal(t, before, c.Items())
	assert.Equal(t, []string{"5"}, c.Sellers())
}

func TestCart_NeverHoldsTwoSellers(t *testing.T) {
	sellers := []string{"1", "2", "3"}
	c := New()
	for i := 0; i < 60; i++ {
		_ = c.AddItem(Item{
			DishID:    string(rune('a' + i%7)),
			UnitPrice: int64(i),
			Quantity:  1 + i%3,
			SellerID:  sellers[(i*7)%len(sellers)],
		})
		if i%11 == 10 {
			c.Clear()
		}
		assert.LessOrEqual(t, len(c.Sellers()), 1)
	}
}

func TestCart_SetQuantity(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(Item{DishID: "a", UnitPrice: 100, Quantity: 1, SellerID: "5"}))
	require.NoError(t, c.AddItem(Item{DishID: "b", UnitPrice: 300, Quantity: 1, SellerID: "5"}))

	require.NoError(t, c.SetQuantity("a", 4))
	assert.Equal(t, int64(700), c.Total())

	require.NoError(t, c.SetQuantity("b", 0))
	assert.Len(t, c.Items(), 1)

	assert.ErrorIs(t, c.SetQuantity("zzz", 2), ErrItemNotFound)

	require.NoError(t, c.SetQuantity("a", -1))
	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.SellerID(), "removing the last line releases the seller")
}

func TestCart_ClearReleasesSeller(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(Item{DishID: "a", UnitPrice: 100, Quantity: 1, SellerID: "5"}))
	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Total())
	require.NoError(t, c.AddItem(Item{DishID: "x", UnitPrice: 100, Quantity: 1, SellerID: "7"}))
	assert.Equal(t, "7", c.SellerID())
}

func TestCart_RemoveItem(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(Item{DishID: "a", UnitPrice: 100, Quantity: 1, SellerID: "5"}))

	assert.ErrorIs(t, c.RemoveItem("b"), ErrItemNotFound)
	require.NoError(t, c.RemoveItem("a"))
	assert.True(t, c.IsEmpty())
}
