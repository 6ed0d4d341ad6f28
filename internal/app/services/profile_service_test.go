package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studysphere/studysphere/internal/app/models"
	"github.com/studysphere/studysphere/internal/app/models/dto"
	"github.com/studysphere/studysphere/internal/pkg/apperrors"
)

func newProfileServiceFixture() ProfileService {
	users := newFakeUserRepo(&models.User{ID: 1, Username: "alice", Email: "alice@example.com"})
	return NewProfileService(newFakeProfileRepo(), users, zerolog.Nop())
}

func TestGetProfileCreatesEmptyProfileOnFirstAccess(t *testing.T) {
	svc := newProfileServiceFixture()

	resp, err := svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Empty(t, resp.Profile.Bio)
	assert.Empty(t, resp.Profile.Skills)
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc := newProfileServiceFixture()

	_, err := svc.GetProfile(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUserNotFound))
}

func TestUpdateProfilePartialUpdate(t *testing.T) {
	svc := newProfileServiceFixture()

	bio := "Go enthusiast"
	resp, err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "Go enthusiast", resp.Profile.Bio)

	skills := "go,sql"
	resp, err = svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{Skills: &skills})
	require.NoError(t, err)
	assert.Equal(t, "go,sql", resp.Profile.Skills)
	// Omitted fields keep their previous value
	assert.Equal(t, "Go enthusiast", resp.Profile.Bio)
}
