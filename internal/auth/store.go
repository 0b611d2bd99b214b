package auth

import (
	"context"
	"time"
)

// UserRepository defines the persistent storage contract for user accounts.
type UserRepository interface {
	Create(context context.Context, user *User) error
	FindByID(context context.Context, id string) (*User, error)
	FindByEmail(context context.Context, email string) (*User, error)
	FindByUsername(context context.Context, username string) (*User, error)
}

// SessionRepository defines the volatile storage contract for refresh
// sessions. Entries expire on their own; Delete revokes one early.
type SessionRepository interface {
	Set(context context.Context, token, userID string, ttl time.Duration) error
	Get(context context.Context, token string) (string, error)
	Delete(context context.Context, token string) error
}
