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

type doubtFixture struct {
	svc     DoubtService
	groups  GroupService
	doubts  *fakeDoubtRepo
	members *fakeMembershipRepo
}

func newDoubtFixture() *doubtFixture {
	members := newFakeMembershipRepo()
	groupRepo := newFakeGroupRepo(members)
	doubtRepo := newFakeDoubtRepo()
	users := newFakeUserRepo(
		&models.User{ID: 1, Username: "alice", Email: "alice@example.com"},
		&models.User{ID: 2, Username: "bob", Email: "bob@example.com"},
	)
	return &doubtFixture{
		svc:     NewDoubtService(doubtRepo, groupRepo, members, users, zerolog.Nop()),
		groups:  NewGroupService(groupRepo, members, users, zerolog.Nop()),
		doubts:  doubtRepo,
		members: members,
	}
}

func TestCreateDoubtRequiresMembership(t *testing.T) {
	f := newDoubtFixture()
	group, err := f.groups.CreateGroup(context.Background(), 1, &dto.CreateGroupRequest{Name: "CS101"})
	require.NoError(t, err)

	_, err = f.svc.CreateDoubt(context.Background(), 2, &dto.CreateDoubtRequest{
		GroupID: group.ID, Title: "Q1", Body: "How does this work?",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestCreateDoubtMissingGroupNotFound(t *testing.T) {
	f := newDoubtFixture()

	_, err := f.svc.CreateDoubt(context.Background(), 1, &dto.CreateDoubtRequest{
		GroupID: 99, Title: "Q1", Body: "Anyone?",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestCreateDoubtDirectedToNonMemberFails(t *testing.T) {
	f := newDoubtFixture()
	group, err := f.groups.CreateGroup(context.Background(), 1, &dto.CreateGroupRequest{Name: "CS101"})
	require.NoError(t, err)

	bobID := int64(2)
	_, err = f.svc.CreateDoubt(context.Background(), 1, &dto.CreateDoubtRequest{
		GroupID: group.ID, Title: "Q1", Body: "For bob", DirectedToID: &bobID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestCreateDoubtDirectedToMissingUserNotFound(t *testing.T) {
	f := newDoubtFixture()
	group, err := f.groups.CreateGroup(context.Background(), 1, &dto.CreateGroupRequest{Name: "CS101"})
	require.NoError(t, err)

	ghostID := int64(99)
	_, err = f.svc.CreateDoubt(context.Background(), 1, &dto.CreateDoubtRequest{
		GroupID: group.ID, Title: "Q1", Body: "For nobody", DirectedToID: &ghostID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestReplyRequiresMembership(t *testing.T) {
	f := newDoubtFixture()
	group, err := f.groups.CreateGroup(context.Background(), 1, &dto.CreateGroupRequest{Name: "CS101"})
	require.NoError(t, err)

	doubt, err := f.svc.CreateDoubt(context.Background(), 1, &dto.CreateDoubtRequest{
		GroupID: group.ID, Title: "Q1", Body: "Anyone?",
	})
	require.NoError(t, err)

	_, err = f.svc.ReplyToDoubt(context.Background(), 2, doubt.ID, &dto.DoubtReplyRequest{Text: "A1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestMarkSolutionOnlyAsker(t *testing.T) {
	f := newDoubtFixture()
	group, err := f.groups.CreateGroup(context.Background(), 1, &dto.CreateGroupRequest{Name: "CS101"})
	require.NoError(t, err)
	_, err = f.groups.JoinGroup(context.Background(), group.ID, 2)
	require.NoError(t, err)

	doubt, err := f.svc.CreateDoubt(context.Background(), 1, &dto.CreateDoubtRequest{
		GroupID: group.ID, Title: "Q1", Body: "Anyone?",
	})
	require.NoError(t, err)

	reply, err := f.svc.ReplyToDoubt(context.Background(), 2, doubt.ID, &dto.DoubtReplyRequest{Text: "A1"})
	require.NoError(t, err)

	_, err = f.svc.MarkSolution(context.Background(), 2, doubt.ID, &dto.MarkSolutionRequest{ReplyID: reply.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestMarkSolutionKeepsSingleSolution(t *testing.T) {
	f := newDoubtFixture()
	group, err := f.groups.CreateGroup(context.Background(), 1, &dto.CreateGroupRequest{Name: "CS101"})
	require.NoError(t, err)
	_, err = f.groups.JoinGroup(context.Background(), group.ID, 2)
	require.NoError(t, err)

	doubt, err := f.svc.CreateDoubt(context.Background(), 1, &dto.CreateDoubtRequest{
		GroupID: group.ID, Title: "Q1", Body: "Anyone?",
	})
	require.NoError(t, err)

	first, err := f.svc.ReplyToDoubt(context.Background(), 2, doubt.ID, &dto.DoubtReplyRequest{Text: "A1"})
	require.NoError(t, err)
	second, err := f.svc.ReplyToDoubt(context.Background(), 2, doubt.ID, &dto.DoubtReplyRequest{Text: "A2"})
	require.NoError(t, err)

	_, err = f.svc.MarkSolution(context.Background(), 1, doubt.ID, &dto.MarkSolutionRequest{ReplyID: first.ID})
	require.NoError(t, err)

	updated, err := f.svc.MarkSolution(context.Background(), 1, doubt.ID, &dto.MarkSolutionRequest{ReplyID: second.ID})
	require.NoError(t, err)

	assert.Equal(t, string(models.DoubtStatusAnswered), updated.Status)

	solutions := 0
	for _, reply := range updated.Replies {
		if reply.IsSolution {
			solutions++
			assert.Equal(t, second.ID, reply.ID)
		}
	}
	assert.Equal(t, 1, solutions, "exactly one reply should carry the solution flag")
}

func TestMarkSolutionReplyScopedToDoubt(t *testing.T) {
	f := newDoubtFixture()
	group, err := f.groups.CreateGroup(context.Background(), 1, &dto.CreateGroupRequest{Name: "CS101"})
	require.NoError(t, err)
	_, err = f.groups.JoinGroup(context.Background(), group.ID, 2)
	require.NoError(t, err)

	first, err := f.svc.CreateDoubt(context.Background(), 1, &dto.CreateDoubtRequest{
		GroupID: group.ID, Title: "Q1", Body: "Anyone?",
	})
	require.NoError(t, err)
	second, err := f.svc.CreateDoubt(context.Background(), 1, &dto.CreateDoubtRequest{
		GroupID: group.ID, Title: "Q2", Body: "Anyone else?",
	})
	require.NoError(t, err)

	reply, err := f.svc.ReplyToDoubt(context.Background(), 2, second.ID, &dto.DoubtReplyRequest{Text: "A1"})
	require.NoError(t, err)

	// The reply belongs to another doubt, so marking it here must fail
	_, err = f.svc.MarkSolution(context.Background(), 1, first.ID, &dto.MarkSolutionRequest{ReplyID: reply.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestListAssignedDoubts(t *testing.T) {
	f := newDoubtFixture()
	group, err := f.groups.CreateGroup(context.Background(), 1, &dto.CreateGroupRequest{Name: "CS101"})
	require.NoError(t, err)
	_, err = f.groups.JoinGroup(context.Background(), group.ID, 2)
	require.NoError(t, err)

	bobID := int64(2)
	_, err = f.svc.CreateDoubt(context.Background(), 1, &dto.CreateDoubtRequest{
		GroupID: group.ID, Title: "For bob", Body: "Help", DirectedToID: &bobID,
	})
	require.NoError(t, err)
	_, err = f.svc.CreateDoubt(context.Background(), 1, &dto.CreateDoubtRequest{
		GroupID: group.ID, Title: "For anyone", Body: "Help",
	})
	require.NoError(t, err)

	assigned, err := f.svc.ListAssignedDoubts(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, "For bob", assigned[0].Title)
}
