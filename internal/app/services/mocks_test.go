package services

import (
	"context"

	"github.com/studysphere/studysphere/internal/app/models"
	"github.com/studysphere/studysphere/internal/pkg/apperrors"
)

// In-memory fakes backing the service tests. Each fake keeps just enough
// state to exercise the service rules without a database.

type fakeUserRepo struct {
	users map[int64]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[int64]*models.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return apperrors.ErrUsernameAlreadyExists
		}
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = int64(len(r.users) + 1)
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

type fakeProfileRepo struct {
	profiles map[int64]*models.Profile
	nextID   int64
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[int64]*models.Profile), nextID: 1}
}

func (r *fakeProfileRepo) GetOrCreate(ctx context.Context, userID int64) (*models.Profile, error) {
	if profile, ok := r.profiles[userID]; ok {
		return profile, nil
	}
	profile := &models.Profile{ID: r.nextID, UserID: userID}
	r.nextID++
	r.profiles[userID] = profile
	return profile, nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, userID int64, bio, skills, interests *string) (*models.Profile, error) {
	profile, err := r.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if bio != nil {
		profile.Bio = *bio
	}
	if skills != nil {
		profile.Skills = *skills
	}
	if interests != nil {
		profile.Interests = *interests
	}
	return profile, nil
}

type fakeGroupRepo struct {
	groups  map[int64]*models.Group
	members *fakeMembershipRepo
	nextID  int64
}

func newFakeGroupRepo(members *fakeMembershipRepo) *fakeGroupRepo {
	return &fakeGroupRepo{groups: make(map[int64]*models.Group), members: members, nextID: 1}
}

func (r *fakeGroupRepo) CreateWithOwner(ctx context.Context, group *models.Group) error {
	group.ID = r.nextID
	r.nextID++
	r.groups[group.ID] = group
	if r.members != nil {
		if _, err := r.members.Add(ctx, group.ID, group.CreatedByID); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeGroupRepo) GetAll(ctx context.Context) ([]*models.Group, error) {
	groups := make([]*models.Group, 0, len(r.groups))
	for _, group := range r.groups {
		groups = append(groups, group)
	}
	return groups, nil
}

func (r *fakeGroupRepo) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	group, ok := r.groups[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return group, nil
}

func (r *fakeGroupRepo) GetByUserID(ctx context.Context, userID int64) ([]*models.Group, error) {
	groups := make([]*models.Group, 0)
	for _, group := range r.groups {
		if r.members != nil {
			if member, _ := r.members.IsMember(ctx, group.ID, userID); member {
				groups = append(groups, group)
			}
		}
	}
	return groups, nil
}

type membershipKey struct {
	groupID int64
	userID  int64
}

type fakeMembershipRepo struct {
	memberships map[membershipKey]*models.Membership
	nextID      int64
}

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{memberships: make(map[membershipKey]*models.Membership), nextID: 1}
}

func (r *fakeMembershipRepo) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	_, ok := r.memberships[membershipKey{groupID, userID}]
	return ok, nil
}

func (r *fakeMembershipRepo) Add(ctx context.Context, groupID, userID int64) (*models.Membership, error) {
	key := membershipKey{groupID, userID}
	if _, ok := r.memberships[key]; ok {
		return nil, apperrors.ErrConflict
	}
	membership := &models.Membership{ID: r.nextID, GroupID: groupID, UserID: userID}
	r.nextID++
	r.memberships[key] = membership
	return membership, nil
}

func (r *fakeMembershipRepo) Remove(ctx context.Context, groupID, userID int64) error {
	key := membershipKey{groupID, userID}
	if _, ok := r.memberships[key]; !ok {
		return apperrors.ErrConflict
	}
	delete(r.memberships, key)
	return nil
}

type fakeDoubtRepo struct {
	doubts  map[int64]*models.Doubt
	replies map[int64]*models.DoubtReply
	nextID  int64
}

func newFakeDoubtRepo() *fakeDoubtRepo {
	return &fakeDoubtRepo{
		doubts:  make(map[int64]*models.Doubt),
		replies: make(map[int64]*models.DoubtReply),
		nextID:  1,
	}
}

func (r *fakeDoubtRepo) Create(ctx context.Context, doubt *models.Doubt) error {
	doubt.ID = r.nextID
	r.nextID++
	if doubt.AskedBy == nil {
		doubt.AskedBy = &models.User{ID: doubt.AskedByID}
	}
	r.doubts[doubt.ID] = doubt
	return nil
}

func (r *fakeDoubtRepo) GetByID(ctx context.Context, id int64) (*models.Doubt, error) {
	doubt, ok := r.doubts[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return doubt, nil
}

func (r *fakeDoubtRepo) List(ctx context.Context, groupID *int64) ([]*models.Doubt, error) {
	doubts := make([]*models.Doubt, 0)
	for _, doubt := range r.doubts {
		if groupID == nil || doubt.GroupID == *groupID {
			doubts = append(doubts, doubt)
		}
	}
	return doubts, nil
}

func (r *fakeDoubtRepo) ListByDirectedTo(ctx context.Context, userID int64) ([]*models.Doubt, error) {
	doubts := make([]*models.Doubt, 0)
	for _, doubt := range r.doubts {
		if doubt.DirectedToID != nil && *doubt.DirectedToID == userID {
			doubts = append(doubts, doubt)
		}
	}
	return doubts, nil
}

func (r *fakeDoubtRepo) CreateReply(ctx context.Context, reply *models.DoubtReply) error {
	reply.ID = r.nextID
	r.nextID++
	r.replies[reply.ID] = reply
	if doubt, ok := r.doubts[reply.DoubtID]; ok {
		doubt.Replies = append(doubt.Replies, reply)
	}
	return nil
}

func (r *fakeDoubtRepo) GetReplyByID(ctx context.Context, doubtID, replyID int64) (*models.DoubtReply, error) {
	reply, ok := r.replies[replyID]
	if !ok || reply.DoubtID != doubtID {
		return nil, apperrors.ErrResourceNotFound
	}
	return reply, nil
}

func (r *fakeDoubtRepo) MarkSolution(ctx context.Context, doubtID, replyID int64) error {
	target, ok := r.replies[replyID]
	if !ok || target.DoubtID != doubtID {
		return apperrors.ErrResourceNotFound
	}
	for _, reply := range r.replies {
		if reply.DoubtID == doubtID {
			reply.IsSolution = false
		}
	}
	target.IsSolution = true
	if doubt, ok := r.doubts[doubtID]; ok {
		doubt.Status = models.DoubtStatusAnswered
	}
	return nil
}

type fakeFriendRequestRepo struct {
	requests map[int64]*models.FriendRequest
	nextID   int64
}

func newFakeFriendRequestRepo() *fakeFriendRequestRepo {
	return &fakeFriendRequestRepo{requests: make(map[int64]*models.FriendRequest), nextID: 1}
}

func (r *fakeFriendRequestRepo) Create(ctx context.Context, request *models.FriendRequest) error {
	request.ID = r.nextID
	r.nextID++
	request.Status = models.FriendRequestStatusPending
	r.requests[request.ID] = request
	return nil
}

func (r *fakeFriendRequestRepo) HasActiveRequest(ctx context.Context, senderID, receiverID int64) (bool, error) {
	for _, request := range r.requests {
		if request.SenderID == senderID && request.ReceiverID == receiverID &&
			request.Status != models.FriendRequestStatusRejected {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFriendRequestRepo) ListPendingByReceiver(ctx context.Context, receiverID int64) ([]*models.FriendRequest, error) {
	requests := make([]*models.FriendRequest, 0)
	for _, request := range r.requests {
		if request.ReceiverID == receiverID && request.Status == models.FriendRequestStatusPending {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (r *fakeFriendRequestRepo) GetByIDAndReceiver(ctx context.Context, id, receiverID int64) (*models.FriendRequest, error) {
	request, ok := r.requests[id]
	if !ok || request.ReceiverID != receiverID {
		return nil, apperrors.ErrResourceNotFound
	}
	return request, nil
}

func (r *fakeFriendRequestRepo) UpdateStatus(ctx context.Context, id int64, status models.FriendRequestStatus) error {
	request, ok := r.requests[id]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	request.Status = status
	return nil
}

func (r *fakeFriendRequestRepo) ListFriends(ctx context.Context, userID int64) ([]*models.User, error) {
	seen := make(map[int64]*models.User)
	for _, request := range r.requests {
		if request.Status != models.FriendRequestStatusAccepted {
			continue
		}
		if request.SenderID == userID && request.Receiver != nil {
			seen[request.ReceiverID] = request.Receiver
		}
		if request.ReceiverID == userID && request.Sender != nil {
			seen[request.SenderID] = request.Sender
		}
	}
	friends := make([]*models.User, 0, len(seen))
	for _, user := range seen {
		friends = append(friends, user)
	}
	return friends, nil
}

type reactionKey struct {
	postID int64
	userID int64
}

type fakePostRepo struct {
	posts     map[int64]*models.Post
	reactions map[reactionKey]*models.PostInteraction
	nextID    int64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		posts:     make(map[int64]*models.Post),
		reactions: make(map[reactionKey]*models.PostInteraction),
		nextID:    1,
	}
}

func (r *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	post.ID = r.nextID
	r.nextID++
	if post.Author == nil {
		post.Author = &models.User{ID: post.AuthorID}
	}
	r.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return post, nil
}

func (r *fakePostRepo) GetAll(ctx context.Context) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, len(r.posts))
	for _, post := range r.posts {
		posts = append(posts, post)
	}
	return posts, nil
}

func (r *fakePostRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.posts[id]
	return ok, nil
}

func (r *fakePostRepo) CreateComment(ctx context.Context, comment *models.Comment) error {
	post, ok := r.posts[comment.PostID]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	comment.ID = r.nextID
	r.nextID++
	post.Comments = append(post.Comments, comment)
	return nil
}

func (r *fakePostRepo) UpsertReaction(ctx context.Context, interaction *models.PostInteraction) error {
	if _, ok := r.posts[interaction.PostID]; !ok {
		return apperrors.ErrResourceNotFound
	}
	key := reactionKey{interaction.PostID, interaction.UserID}
	if existing, ok := r.reactions[key]; ok {
		existing.Reaction = interaction.Reaction
		interaction.ID = existing.ID
		return nil
	}
	interaction.ID = r.nextID
	r.nextID++
	r.reactions[key] = interaction
	return nil
}
