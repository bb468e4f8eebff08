// Package session porte le contexte d'authentification de la passerelle :
// token, email et rôle, rien d'autre. Rempli à la connexion, vidé à la
// déconnexion ou dès qu'un 401 remonte du backend.
package session

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/sessions"

	"shopease_front_end/internal/models"
)

const cookieName = "shopease_session"

var store *sessions.CookieStore

// Init configure le store de cookies. MaxAge 0 = cookie de session, la
// connexion ne survit pas à la fermeture du navigateur.
func Init() {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Fatal("❌ SESSION_SECRET manquant dans .env")
	}

	store = sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
	log.Println("✅ Store de session initialisé")
}

// Auth est le contexte d'authentification explicite passé aux handlers.
type Auth struct {
	Token string
	Email string
	Role  models.Role
}

// Current relit la session du cookie. false si l'utilisateur n'est pas connecté.
func Current(r *http.Request) (Auth, bool) {
	s, err := store.Get(r, cookieName)
	if err != nil {
		return Auth{}, false
	}

	token, _ := s.Values["token"].(string)
	if token == "" {
		return Auth{}, false
	}
	email, _ := s.Values["email"].(string)
	roleStr, _ := s.Values["role"].(string)
	role, _ := models.ParseRole(roleStr)

	return Auth{Token: token, Email: email, Role: role}, true
}

// Save remplit la session après connexion.
func Save(w http.ResponseWriter, r *http.Request, auth Auth) error {
	s, _ := store.Get(r, cookieName)
	s.Values["token"] = auth.Token
	s.Values["email"] = auth.Email
	s.Values["role"] = string(auth.Role)
	return s.Save(r, w)
}

// Clear vide la session (déconnexion explicite ou 401 backend).
func Clear(w http.ResponseWriter, r *http.Request) {
	s, _ := store.Get(r, cookieName)
	s.Values = map[any]any{}
	s.Options.MaxAge = -1
	if err := s.Save(r, w); err != nil {
		log.Printf("⚠️ Impossible de vider la session: %v", err)
	}
}
