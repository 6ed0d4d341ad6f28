package services

import (
	"github.com/studysphere/studysphere/internal/app/models"
	"github.com/studysphere/studysphere/internal/app/models/dto"
)

func toUserResponse(user *models.User) *dto.UserResponse {
	if user == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func toProfileResponse(profile *models.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:        profile.ID,
		Bio:       profile.Bio,
		Skills:    profile.Skills,
		Interests: profile.Interests,
		CreatedAt: profile.CreatedAt,
	}
}

func toGroupResponse(group *models.Group) *dto.GroupResponse {
	return &dto.GroupResponse{
		ID:           group.ID,
		Name:         group.Name,
		Description:  group.Description,
		CreatedBy:    toUserResponse(group.CreatedBy),
		CreatedAt:    group.CreatedAt,
		MembersCount: group.MembersCount,
	}
}

func toDoubtResponse(doubt *models.Doubt) *dto.DoubtResponse {
	resp := &dto.DoubtResponse{
		ID:         doubt.ID,
		Title:      doubt.Title,
		Body:       doubt.Body,
		AskedBy:    toUserResponse(doubt.AskedBy),
		DirectedTo: toUserResponse(doubt.DirectedTo),
		Status:     string(doubt.Status),
		CreatedAt:  doubt.CreatedAt,
		Replies:    make([]dto.DoubtReplyResponse, 0, len(doubt.Replies)),
	}
	if doubt.Group != nil {
		resp.Group = toGroupResponse(doubt.Group)
	}
	for _, reply := range doubt.Replies {
		resp.Replies = append(resp.Replies, toDoubtReplyResponse(reply))
	}
	return resp
}

func toDoubtReplyResponse(reply *models.DoubtReply) dto.DoubtReplyResponse {
	return dto.DoubtReplyResponse{
		ID:         reply.ID,
		User:       toUserResponse(reply.User),
		Text:       reply.Text,
		IsSolution: reply.IsSolution,
		CreatedAt:  reply.CreatedAt,
	}
}

func toFriendRequestResponse(request *models.FriendRequest) dto.FriendRequestResponse {
	return dto.FriendRequestResponse{
		ID:        request.ID,
		Sender:    toUserResponse(request.Sender),
		Receiver:  toUserResponse(request.Receiver),
		Status:    string(request.Status),
		CreatedAt: request.CreatedAt,
	}
}

func toPostResponse(post *models.Post) *dto.PostResponse {
	resp := &dto.PostResponse{
		ID:                post.ID,
		Author:            toUserResponse(post.Author),
		Group:             post.GroupID,
		GroupName:         post.GroupName,
		Content:           post.Content,
		PostType:          post.PostType,
		Image:             post.ImageURL,
		CreatedAt:         post.CreatedAt,
		Comments:          make([]dto.CommentResponse, 0, len(post.Comments)),
		InteractionsCount: post.InteractionsCount,
	}
	for _, comment := range post.Comments {
		resp.Comments = append(resp.Comments, toCommentResponse(comment))
	}
	return resp
}

func toCommentResponse(comment *models.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:        comment.ID,
		User:      toUserResponse(comment.User),
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}
