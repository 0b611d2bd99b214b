package auth

import "time"

// User is an authenticated API caller. Every translation operation requires
// one; anonymous requests never reach the domain services.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

// Session is the result of a successful login or refresh.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"-"`
	User         *User  `json:"user"`
}

// Field identifiers used in validation errors.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldLogin    = "login"
)

// RefreshTokenLength is the byte length of the random refresh token.
const RefreshTokenLength = 32
