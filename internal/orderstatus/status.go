package orderstatus

// Statut d'une commande ShopEase. Les cinq valeurs correspondent au format
// renvoyé par le backend, il ne faut pas les renommer.
type Status string

const (
	Placed    Status = "PLACED"
	Confirmed Status = "CONFIRMED"
	Shipped   Status = "SHIPPED"
	Delivered Status = "DELIVERED"
	Cancelled Status = "CANCELLED"
)

// Table des transitions autorisées. C'est LA référence unique : les vues
// acheteur, vendeur et admin la consultent toutes avant d'appeler le backend.
// L'annulation n'est possible que depuis PLACED ou CONFIRMED.
var validNext = map[Status][]Status{
	Placed:    {Confirmed, Cancelled},
	Confirmed: {Shipped, Cancelled},
	Shipped:   {Delivered},
	Delivered: {},
	Cancelled: {},
}

// Chemin nominal d'une commande, utilisé pour la barre de progression côté acheteur.
var happyPath = []Status{Placed, Confirmed, Shipped, Delivered}

// Valid indique si s est un des cinq statuts connus.
func Valid(s Status) bool {
	_, ok := validNext[s]
	return ok
}

// CanTransition indique si le passage from -> to est légal.
// Aucune boucle sur soi-même, aucun départ depuis un statut terminal.
func CanTransition(from, to Status) bool {
	for _, next := range validNext[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Next renvoie la liste ordonnée des statuts atteignables depuis s.
// Sert à construire le menu d'actions côté vendeur et admin.
func Next(s Status) []Status {
	targets := validNext[s]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// Advance renvoie la prochaine étape du chemin nominal
// (PLACED→CONFIRMED→SHIPPED→DELIVERED). false si s est terminal ou inconnu.
func Advance(s Status) (Status, bool) {
	for i, step := range happyPath {
		if step == s && i+1 < len(happyPath) {
			return happyPath[i+1], true
		}
	}
	return "", false
}

// CanCancel indique si l'annulation est encore possible.
func CanCancel(s Status) bool {
	return CanTransition(s, Cancelled)
}

// Terminal indique qu'aucune transition ne part de s.
func Terminal(s Status) bool {
	return Valid(s) && len(validNext[s]) == 0
}

// Steps renvoie le chemin nominal complet (copie, les appelants peuvent le modifier).
func Steps() []Status {
	out := make([]Status, len(happyPath))
	copy(out, happyPath)
	return out
}

// StepIndex renvoie la position de s sur le chemin nominal (0 si hors chemin),
// comme la barre de progression de la page "Mes commandes".
func StepIndex(s Status) int {
	for i, step := range happyPath {
		if step == s {
			return i
		}
	}
	return 0
}

// Badge renvoie la classe d'affichage du statut, partagée par les trois tableaux
// de bord au lieu de trois copies locales.
func Badge(s Status) string {
	switch s {
	case Delivered:
		return "success"
	case Shipped:
		return "info"
	case Confirmed:
		return "warning"
	case Placed:
		return "neutral"
	case Cancelled:
		return "error"
	default:
		return "neutral"
	}
}

// All renvoie les cinq statuts dans l'ordre d'affichage des filtres.
func All() []Status {
	return []Status{Placed, Confirmed, Shipped, Delivered, Cancelled}
}
