// Copyright (c) 2026 Lingo Project. All rights reserved.

/*
Package auth implements the identity collaborator for the translation API.

It handles user registration, credential verification, and session lifecycle
via RSA-signed JWT access tokens plus Redis-backed refresh sessions.

Architecture:

  - Service: Orchestrates business logic (Register, Login, Refresh, Logout).
  - Repositories: Abstracted interfaces for Postgres (users) and Redis (sessions).
  - Security: bcrypt password hashing, RS256 JWTs.

The translation core treats this package purely as the pre-existing
credential-check dependency: it annotates each request with an authenticated
caller or rejects it.
*/
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lingohq/lingo/internal/platform/apperr"
	"github.com/lingohq/lingo/internal/platform/constants"
	"github.com/lingohq/lingo/internal/platform/sec"
)

// TokenProvider defines the contract for generating access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, username string, timeToLive time.Duration) (string, error)
}

// Service implements the user authentication use cases.
type Service struct {
	userRepository    UserRepository
	sessionRepository SessionRepository
	tokenProvider     TokenProvider
}

// NewService constructs a new [Service] with its dependencies.
func NewService(userRepo UserRepository, sessionRepo SessionRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		tokenProvider:     tokenProv,
	}
}

// RegisterInput holds the data required to enroll a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register validates, hashes, and persists a brand new user account.
//
// Returns a Conflict error when the email or username is already taken.
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Verify email uniqueness. Return a client-safe Conflict error.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Verify username uniqueness. Return a client-safe Conflict error.
	_, err = service.userRepository.FindByUsername(context, input.Username)
	if err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	// Prevent storing plain-text passwords.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Time-sortable ID to prevent PG index fragmentation.
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("auth_service_uuid_failed: %w", err)
	}

	user := &User{
		ID:           id.String(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return user, nil
}

// Login verifies credentials and establishes a new session.
//
// The login value may be either the username or the email address. The same
// Unauthorized error is returned for unknown users and wrong passwords so
// that account existence is never leaked.
func (service *Service) Login(context context.Context, login, password string) (*Session, error) {
	user, err := service.userRepository.FindByUsername(context, login)
	if err != nil {
		user, err = service.userRepository.FindByEmail(context, login)
	}
	if err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	return service.establishSession(context, user)
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// session is issued for its user.
func (service *Service) Refresh(context context.Context, refreshToken string) (*Session, error) {
	userID, err := service.sessionRepository.Get(context, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, apperr.Unauthorized("Session user no longer exists")
	}

	// Rotation: the old token must die with this call.
	if err := service.sessionRepository.Delete(context, refreshToken); err != nil {
		return nil, err
	}

	return service.establishSession(context, user)
}

// Logout revokes the refresh session. The access token expires on its own.
func (service *Service) Logout(context context.Context, refreshToken string) error {
	return service.sessionRepository.Delete(context, refreshToken)
}

// establishSession mints an access token and stores a fresh refresh session.
func (service *Service) establishSession(context context.Context, user *User) (*Session, error) {
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	if err := service.sessionRepository.Set(context, refreshToken, user.ID, constants.RefreshTokenTTL); err != nil {
		return nil, err
	}

	return &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
