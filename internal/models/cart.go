package models

import "github.com/shopspring/decimal"

// CartItem est une ligne de panier telle que renvoyée par GET /cart/{email}.
type CartItem struct {
	ID         int64    `json:"id"`
	BuyerEmail string   `json:"buyerEmail,omitempty"`
	Quantity   int      `json:"quantity"`
	Product    *Product `json:"product"`
}

// Total de la ligne, en décimal.
func (i CartItem) Total() decimal.Decimal {
	price := decimal.Zero
	if i.Product != nil {
		price = decimal.NewFromFloat(i.Product.Price)
	}
	return price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartInput est le corps de POST /cart.
type CartInput struct {
	BuyerEmail string     `json:"buyerEmail"`
	Quantity   int        `json:"quantity"`
	Product    ProductRef `json:"product"`
}

// MergeCart fusionne les lignes dupliquées renvoyées par le backend (plusieurs
// ajouts du même produit avant déduplication serveur) : une ligne par produit,
// quantités additionnées, ordre de première apparition conservé. Fusion
// d'affichage uniquement — la prochaine lecture complète reste la référence.
func MergeCart(items []CartItem) []CartItem {
	merged := make([]CartItem, 0, len(items))
	index := make(map[int64]int, len(items))

	for _, item := range items {
		if item.Product == nil {
			merged = append(merged, item)
			continue
		}
		if pos, ok := index[item.Product.ID]; ok {
			merged[pos].Quantity += item.Quantity
			continue
		}
		index[item.Product.ID] = len(merged)
		merged = append(merged, item)
	}
	return merged
}

// CartSubtotal additionne les totaux des lignes sélectionnées.
func CartSubtotal(items []CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Total())
	}
	return sum
}
