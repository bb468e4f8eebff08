package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeCartSumsDuplicates(t *testing.T) {
	items := []CartItem{
		{ID: 1, Quantity: 2, Product: &Product{ID: 7, Name: "Clavier", Price: 25}},
		{ID: 2, Quantity: 1, Product: &Product{ID: 9, Name: "Souris", Price: 10}},
		{ID: 3, Quantity: 3, Product: &Product{ID: 7, Name: "Clavier", Price: 25}},
	}

	merged := MergeCart(items)
	require.Len(t, merged, 2)
	assert.Equal(t, int64(7), merged[0].Product.ID)
	assert.Equal(t, 5, merged[0].Quantity, "2 + 3 sur le même produit")
	assert.Equal(t, int64(9), merged[1].Product.ID)

	// L'entrée d'origine ne doit pas être modifiée.
	assert.Equal(t, 2, items[0].Quantity)
}

func TestMergeCartKeepsFirstPosition(t *testing.T) {
	items := []CartItem{
		{Quantity: 1, Product: &Product{ID: 3}},
		{Quantity: 1, Product: &Product{ID: 1}},
		{Quantity: 1, Product: &Product{ID: 3}},
	}
	merged := MergeCart(items)
	require.Len(t, merged, 2)
	assert.Equal(t, int64(3), merged[0].Product.ID)
	assert.Equal(t, int64(1), merged[1].Product.ID)
}

func TestMergeCartEmpty(t *testing.T) {
	assert.Empty(t, MergeCart(nil))
}

func TestMergeWishlistDropsDuplicates(t *testing.T) {
	items := []WishlistItem{
		{ID: 1, Product: &Product{ID: 7, Name: "Clavier"}},
		{ID: 2, Product: &Product{ID: 7, Name: "Clavier"}},
	}
	merged := MergeWishlist(items)
	require.Len(t, merged, 1)
	assert.Equal(t, int64(1), merged[0].ID, "la première occurrence gagne")
}

func TestCartSubtotal(t *testing.T) {
	items := []CartItem{
		{Quantity: 2, Product: &Product{ID: 1, Price: 10.5}},
		{Quantity: 1, Product: &Product{ID: 2, Price: 4.25}},
	}
	assert.True(t, CartSubtotal(items).Equal(decimal.RequireFromString("25.25")))
}

func TestOrderTotal(t *testing.T) {
	o := Order{Quantity: 3, Product: &Product{Price: 19.99}}
	assert.Equal(t, "59.97", o.Total().StringFixed(2))

	// Produit manquant : total nul plutôt qu'un plantage.
	assert.True(t, Order{Quantity: 2}.Total().IsZero())
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("SELLER")
	require.True(t, ok)
	assert.Equal(t, RoleSeller, r)

	_, ok = ParseRole("seller")
	assert.False(t, ok, "le backend envoie les rôles en majuscules")
	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestNavEntriesPerRole(t *testing.T) {
	assert.Len(t, RoleBuyer.NavEntries(), 6)
	assert.Len(t, RoleSeller.NavEntries(), 4)
	assert.Len(t, RoleAdmin.NavEntries(), 4)
	assert.Len(t, Role("").NavEntries(), 2)

	assert.Equal(t, "/buyer", RoleBuyer.HomePath())
	assert.Equal(t, "/seller", RoleSeller.HomePath())
	assert.Equal(t, "/admin", RoleAdmin.HomePath())
}
