package models

// Role est le rôle exclusif porté par le token ShopEase. Tout l'aiguillage
// par rôle (menu, page d'accueil, préfixes protégés) passe par ce type au
// lieu de conditions répétées dans chaque vue.
type Role string

const (
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"
	RoleAdmin  Role = "ADMIN"
)

// ParseRole valide la valeur reçue du backend ou de la session.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// NavEntry est un lien du menu de navigation.
type NavEntry struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// HomePath est la page d'atterrissage après connexion.
func (r Role) HomePath() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleSeller:
		return "/seller"
	default:
		return "/buyer"
	}
}

// NavEntries reprend les liens de l'ancienne barre de navigation, un menu
// exhaustif par rôle plutôt qu'une pile de conditions.
func (r Role) NavEntries() []NavEntry {
	switch r {
	case RoleBuyer:
		return []NavEntry{
			{Label: "Home", Path: "/buyer"},
			{Label: "Products", Path: "/buyer/products"},
			{Label: "Contact", Path: "/contact"},
			{Label: "Cart", Path: "/cart"},
			{Label: "Wishlist", Path: "/wishlist"},
			{Label: "My Orders", Path: "/buyer/orders"},
		}
	case RoleSeller:
		return []NavEntry{
			{Label: "Home", Path: "/seller"},
			{Label: "My Products", Path: "/seller/products"},
			{Label: "Add Product", Path: "/seller/products/new"},
			{Label: "Orders", Path: "/seller/orders"},
		}
	case RoleAdmin:
		return []NavEntry{
			{Label: "Dashboard", Path: "/admin"},
			{Label: "Users", Path: "/admin/users"},
			{Label: "Products", Path: "/admin/products"},
			{Label: "Orders", Path: "/admin/orders"},
		}
	}
	// Visiteur non connecté.
	return []NavEntry{
		{Label: "Products", Path: "/products"},
		{Label: "Contact", Path: "/contact"},
	}
}
