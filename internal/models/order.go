package models

import (
	"time"

	"github.com/shopspring/decimal"

	"shopease_front_end/internal/orderstatus"
)

// Order est la copie de lecture d'une commande, re-téléchargée après chaque
// mutation. Le backend est le seul à la modifier.
type Order struct {
	ID          int64              `json:"id"`
	BuyerEmail  string             `json:"buyerEmail"`
	SellerEmail string             `json:"sellerEmail,omitempty"`
	Quantity    int                `json:"quantity"`
	Status      orderstatus.Status `json:"status"`
	OrderDate   time.Time          `json:"orderDate"`
	Product     *Product           `json:"product,omitempty"`
}

// Total = prix unitaire × quantité, calculé en décimal pour éviter les
// arrondis flottants à l'affichage.
func (o Order) Total() decimal.Decimal {
	price := decimal.Zero
	if o.Product != nil {
		price = decimal.NewFromFloat(o.Product.Price)
	}
	return price.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// OrderInput est le corps de POST /orders. Le backend identifie l'acheteur
// via le token, seuls le produit et la quantité comptent.
type OrderInput struct {
	BuyerEmail string     `json:"buyerEmail,omitempty"`
	Quantity   int        `json:"quantity"`
	Product    ProductRef `json:"product"`
}

type ProductRef struct {
	ID int64 `json:"id"`
}
