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

func newSocialServiceFixture() SocialService {
	users := newFakeUserRepo(
		&models.User{ID: 1, Username: "alice", Email: "alice@example.com"},
		&models.User{ID: 2, Username: "bob", Email: "bob@example.com"},
		&models.User{ID: 3, Username: "carol", Email: "carol@example.com"},
	)
	return NewSocialService(newFakeFriendRequestRepo(), users, zerolog.Nop())
}

func TestSendFriendRequestToSelfFails(t *testing.T) {
	svc := newSocialServiceFixture()

	_, err := svc.SendFriendRequest(context.Background(), 1, &dto.SendFriendRequestRequest{ReceiverID: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestSendFriendRequestToMissingUserNotFound(t *testing.T) {
	svc := newSocialServiceFixture()

	_, err := svc.SendFriendRequest(context.Background(), 1, &dto.SendFriendRequestRequest{ReceiverID: 99})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestDuplicateFriendRequestConflicts(t *testing.T) {
	svc := newSocialServiceFixture()

	_, err := svc.SendFriendRequest(context.Background(), 1, &dto.SendFriendRequestRequest{ReceiverID: 2})
	require.NoError(t, err)

	_, err = svc.SendFriendRequest(context.Background(), 1, &dto.SendFriendRequestRequest{ReceiverID: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestReverseFriendRequestDoesNotConflict(t *testing.T) {
	svc := newSocialServiceFixture()

	_, err := svc.SendFriendRequest(context.Background(), 1, &dto.SendFriendRequestRequest{ReceiverID: 2})
	require.NoError(t, err)

	// The duplicate check runs sender to receiver only
	_, err = svc.SendFriendRequest(context.Background(), 2, &dto.SendFriendRequestRequest{ReceiverID: 1})
	require.NoError(t, err)
}

func TestResubmitAfterRejectionSucceeds(t *testing.T) {
	svc := newSocialServiceFixture()

	sent, err := svc.SendFriendRequest(context.Background(), 1, &dto.SendFriendRequestRequest{ReceiverID: 2})
	require.NoError(t, err)

	_, err = svc.RespondToRequest(context.Background(), 2, sent.Request.ID, &dto.RespondFriendRequestRequest{Action: "reject"})
	require.NoError(t, err)

	_, err = svc.SendFriendRequest(context.Background(), 1, &dto.SendFriendRequestRequest{ReceiverID: 2})
	require.NoError(t, err)
}

func TestRespondWithUnknownActionFails(t *testing.T) {
	svc := newSocialServiceFixture()

	sent, err := svc.SendFriendRequest(context.Background(), 1, &dto.SendFriendRequestRequest{ReceiverID: 2})
	require.NoError(t, err)

	_, err = svc.RespondToRequest(context.Background(), 2, sent.Request.ID, &dto.RespondFriendRequestRequest{Action: "maybe"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestRespondAsNonReceiverNotFound(t *testing.T) {
	svc := newSocialServiceFixture()

	sent, err := svc.SendFriendRequest(context.Background(), 1, &dto.SendFriendRequestRequest{ReceiverID: 2})
	require.NoError(t, err)

	_, err = svc.RespondToRequest(context.Background(), 3, sent.Request.ID, &dto.RespondFriendRequestRequest{Action: "accept"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestAnsweredRequestCanBeAnsweredAgain(t *testing.T) {
	svc := newSocialServiceFixture()

	sent, err := svc.SendFriendRequest(context.Background(), 1, &dto.SendFriendRequestRequest{ReceiverID: 2})
	require.NoError(t, err)

	resp, err := svc.RespondToRequest(context.Background(), 2, sent.Request.ID, &dto.RespondFriendRequestRequest{Action: "reject"})
	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)

	resp, err = svc.RespondToRequest(context.Background(), 2, sent.Request.ID, &dto.RespondFriendRequestRequest{Action: "accept"})
	require.NoError(t, err)
	assert.Equal(t, "accepted", resp.Status)
}

func TestListFriendsUnionsBothDirections(t *testing.T) {
	svc := newSocialServiceFixture()

	sent, err := svc.SendFriendRequest(context.Background(), 1, &dto.SendFriendRequestRequest{ReceiverID: 2})
	require.NoError(t, err)
	_, err = svc.RespondToRequest(context.Background(), 2, sent.Request.ID, &dto.RespondFriendRequestRequest{Action: "accept"})
	require.NoError(t, err)

	sent, err = svc.SendFriendRequest(context.Background(), 3, &dto.SendFriendRequestRequest{ReceiverID: 1})
	require.NoError(t, err)
	_, err = svc.RespondToRequest(context.Background(), 1, sent.Request.ID, &dto.RespondFriendRequestRequest{Action: "accept"})
	require.NoError(t, err)

	friends, err := svc.ListFriends(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, friends, 2)

	names := []string{friends[0].Username, friends[1].Username}
	assert.ElementsMatch(t, []string{"bob", "carol"}, names)
}

func TestPendingListOmitsAnsweredRequests(t *testing.T) {
	svc := newSocialServiceFixture()

	first, err := svc.SendFriendRequest(context.Background(), 1, &dto.SendFriendRequestRequest{ReceiverID: 2})
	require.NoError(t, err)
	_, err = svc.SendFriendRequest(context.Background(), 3, &dto.SendFriendRequestRequest{ReceiverID: 2})
	require.NoError(t, err)

	_, err = svc.RespondToRequest(context.Background(), 2, first.Request.ID, &dto.RespondFriendRequestRequest{Action: "accept"})
	require.NoError(t, err)

	pending, err := svc.ListPendingRequests(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "carol", pending[0].Sender.Username)
}
