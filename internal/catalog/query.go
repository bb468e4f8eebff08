// Package catalog reproduit le filtre/tri local de la page produits : une
// fois la liste téléchargée, chaque frappe re-filtre sans repasser par le
// réseau. Fonctions pures, la liste d'entrée n'est jamais modifiée.
package catalog

import (
	"sort"
	"strings"

	"shopease_front_end/internal/models"
)

// AllCategories est la sentinelle "pas de filtre catégorie".
const AllCategories = "ALL"

// Clés de tri acceptées. RELEVANCE conserve l'ordre renvoyé par le backend.
const (
	SortRelevance = "RELEVANCE"
	SortPriceAsc  = "PRICE_ASC"
	SortPriceDesc = "PRICE_DESC"
)

type Query struct {
	Text     string
	Category string
	Sort     string
}

// Apply filtre puis trie la liste. Texte : sous-chaîne insensible à la casse
// sur le nom. Catégorie : égalité stricte, "ALL" ou vide = tout. Les tris prix
// sont stables, un prix absent vaut 0.
func Apply(products []models.Product, q Query) []models.Product {
	out := make([]models.Product, 0, len(products))

	text := strings.ToLower(strings.TrimSpace(q.Text))
	for _, p := range products {
		if q.Category != "" && q.Category != AllCategories && p.Category != q.Category {
			continue
		}
		if text != "" && !strings.Contains(strings.ToLower(p.Name), text) {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}

// Categories renvoie "ALL" suivi des catégories distinctes dans l'ordre de
// première apparition, pour remplir le menu déroulant.
func Categories(products []models.Product) []string {
	out := []string{AllCategories}
	seen := make(map[string]bool)
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}
