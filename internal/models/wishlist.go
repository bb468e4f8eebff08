package models

// WishlistItem est une ligne de liste d'envies (GET /wishlist/{email}).
type WishlistItem struct {
	ID         int64    `json:"id"`
	BuyerEmail string   `json:"buyerEmail,omitempty"`
	Product    *Product `json:"product"`
}

// WishlistInput est le corps de POST /wishlist.
type WishlistInput struct {
	BuyerEmail string     `json:"buyerEmail"`
	Product    ProductRef `json:"product"`
}

// MergeWishlist supprime les doublons par produit, première occurrence gagnante.
// Même logique d'affichage que MergeCart, sans quantité à additionner.
func MergeWishlist(items []WishlistItem) []WishlistItem {
	merged := make([]WishlistItem, 0, len(items))
	seen := make(map[int64]bool, len(items))

	for _, item := range items {
		if item.Product == nil {
			merged = append(merged, item)
			continue
		}
		if seen[item.Product.ID] {
			continue
		}
		seen[item.Product.ID] = true
		merged = append(merged, item)
	}
	return merged
}
