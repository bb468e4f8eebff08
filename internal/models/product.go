package models

// Product reflète le format JSON du backend ShopEase. La passerelle ne fait
// que le relire et le réafficher, le backend reste propriétaire des données.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Active      bool    `json:"active"`
	SellerEmail string  `json:"sellerEmail,omitempty"`
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

// ProductInput est le corps envoyé au backend pour créer ou modifier un produit.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}
