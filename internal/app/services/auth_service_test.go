package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studysphere/studysphere/internal/app/models/dto"
	"github.com/studysphere/studysphere/internal/pkg/apperrors"
	"github.com/studysphere/studysphere/internal/pkg/auth"
)

func newAuthServiceFixture() (AuthService, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "studysphere.test",
	})
	return NewAuthService(newFakeUserRepo(), jwtService, zerolog.Nop()), jwtService
}

func TestRegisterAndLogin(t *testing.T) {
	svc, jwtService := newAuthServiceFixture()

	registered, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "sup3rsecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", registered.User.Username)

	token, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "sup3rsecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int(time.Hour.Seconds()), token.ExpiresIn)

	claims, err := jwtService.ValidateAndExtractClaims(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthServiceFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "sup3rsecret",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice", Email: "other@example.com", Password: "sup3rsecret",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUsernameAlreadyExists))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthServiceFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "sup3rsecret",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice2", Email: "alice@example.com", Password: "sup3rsecret",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrEmailAlreadyExists))
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthServiceFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "sup3rsecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestLoginUnknownUserReportsInvalidCredentials(t *testing.T) {
	svc, _ := newAuthServiceFixture()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "whatever"})
	require.Error(t, err)
	// Unknown users get the same error as a wrong password
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
}
