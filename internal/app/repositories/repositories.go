package repositories

import (
	"github.com/studysphere/studysphere/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	ProfileRepository       *ProfileRepository
	GroupRepository         *GroupRepository
	MembershipRepository    *MembershipRepository
	DoubtRepository         *DoubtRepository
	FriendRequestRepository *FriendRequestRepository
	PostRepository          *PostRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		ProfileRepository:       NewProfileRepository(db),
		GroupRepository:         NewGroupRepository(db),
		MembershipRepository:    NewMembershipRepository(db),
		DoubtRepository:         NewDoubtRepository(db),
		FriendRequestRepository: NewFriendRequestRepository(db),
		PostRepository:          NewPostRepository(db),
	}
}
