package models

// Credentials are the values collected by the login form
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6,max=128"`
}

// Registration are the values collected by the register form
type Registration struct {
	Name     string `json:"name" validate:"min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6,max=128"`
}

// Auth contains the structured authentication response returned by
// both login and register
type Auth struct {
	Token string `json:"accessToken"`
	User  User   `json:"user"`
}
