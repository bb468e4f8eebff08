package models

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Credentials est le corps de POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput est le corps de POST /auth/register.
type RegisterInput struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginResult est la réponse du backend après connexion.
type LoginResult struct {
	Message string `json:"message"`
	Role    string `json:"role"`
	Token   string `json:"token"`
}
