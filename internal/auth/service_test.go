package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingohq/lingo/internal/auth"
	"github.com/lingohq/lingo/internal/platform/apperr"
	"github.com/lingohq/lingo/internal/platform/dberr"
	"github.com/lingohq/lingo/internal/platform/sec"
)

// # Test Fakes

type fakeUserRepo struct {
	byEmail    map[string]*auth.User
	byUsername map[string]*auth.User
	byID       map[string]*auth.User
	created    *auth.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail:    map[string]*auth.User{},
		byUsername: map[string]*auth.User{},
		byID:       map[string]*auth.User{},
	}
}

func (f *fakeUserRepo) add(user *auth.User) {
	f.byEmail[user.Email] = user
	f.byUsername[user.Username] = user
	f.byID[user.ID] = user
}

func (f *fakeUserRepo) Create(_ context.Context, user *auth.User) error {
	f.created = user
	f.add(user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := f.byID[id]; ok {
		return user, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	if user, ok := f.byUsername[username]; ok {
		return user, nil
	}
	return nil, dberr.ErrNotFound
}

type fakeSessionRepo struct {
	sessions map[string]string
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]string{}}
}

func (f *fakeSessionRepo) Set(_ context.Context, token, userID string, _ time.Duration) error {
	f.sessions[token] = userID
	return nil
}

func (f *fakeSessionRepo) Get(_ context.Context, token string) (string, error) {
	userID, ok := f.sessions[token]
	if !ok {
		return "", apperr.Unauthorized("Session is invalid or expired")
	}
	return userID, nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(userID, username string, _ time.Duration) (string, error) {
	return "access-" + userID, nil
}

func newTestService() (*auth.Service, *fakeUserRepo, *fakeSessionRepo) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	return auth.NewService(users, sessions, fakeTokenProvider{}), users, sessions
}

func registeredUser(t *testing.T, users *fakeUserRepo, password string) *auth.User {
	t.Helper()

	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	user := &auth.User{
		ID:           "u-1",
		Username:     "alex",
		Email:        "alex@example.com",
		PasswordHash: hash,
	}
	users.add(user)
	return user
}

// # Registration

func TestService_Register(t *testing.T) {
	service, users, _ := newTestService()

	user, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "alex",
		Email:    "alex@example.com",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	require.NotNil(t, users.created)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "correct horse battery", user.PasswordHash, "password must be hashed")
	assert.True(t, sec.CheckPasswordHash("correct horse battery", user.PasswordHash))
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	service, users, _ := newTestService()
	registeredUser(t, users, "pw-irrelevant")

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "other",
		Email:    "alex@example.com",
		Password: "some password",
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	service, users, _ := newTestService()
	registeredUser(t, users, "pw-irrelevant")

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "alex",
		Email:    "other@example.com",
		Password: "some password",
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

// # Login

func TestService_Login(t *testing.T) {
	service, users, sessions := newTestService()
	user := registeredUser(t, users, "open sesame")

	session, err := service.Login(context.Background(), "alex", "open sesame")

	require.NoError(t, err)
	assert.Equal(t, "access-"+user.ID, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, user.ID, sessions.sessions[session.RefreshToken])
}

func TestService_Login_ByEmail(t *testing.T) {
	service, users, _ := newTestService()
	registeredUser(t, users, "open sesame")

	_, err := service.Login(context.Background(), "alex@example.com", "open sesame")
	assert.NoError(t, err)
}

// Unknown users and wrong passwords must be indistinguishable to the caller.
func TestService_Login_InvalidCredentials(t *testing.T) {
	service, users, _ := newTestService()
	registeredUser(t, users, "open sesame")

	_, unknownErr := service.Login(context.Background(), "nobody", "open sesame")
	_, wrongPwErr := service.Login(context.Background(), "alex", "wrong")

	require.Error(t, unknownErr)
	require.Error(t, wrongPwErr)
	assert.Equal(t, unknownErr.Error(), wrongPwErr.Error())
}

// # Session Lifecycle

func TestService_Refresh_RotatesToken(t *testing.T) {
	service, users, sessions := newTestService()
	registeredUser(t, users, "open sesame")

	first, err := service.Login(context.Background(), "alex", "open sesame")
	require.NoError(t, err)

	second, err := service.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	_, revoked := sessions.sessions[first.RefreshToken]
	assert.False(t, revoked, "presented refresh token must be revoked on rotation")

	// The revoked token can never be replayed.
	_, err = service.Refresh(context.Background(), first.RefreshToken)
	require.Error(t, err)
}

func TestService_Logout(t *testing.T) {
	service, users, sessions := newTestService()
	registeredUser(t, users, "open sesame")

	session, err := service.Login(context.Background(), "alex", "open sesame")
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), session.RefreshToken))
	assert.Empty(t, sessions.sessions)
}
