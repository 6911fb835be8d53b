// Package service contains interface for service business-logic.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cleanup-hub/cleanup/internal/entities"
	"github.com/cleanup-hub/cleanup/internal/storage"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// Service ...
type Service interface {
	CreatePost(ctx context.Context, actor *entities.Actor, p *CreatePostParams) (*entities.Post, error)
	GetPost(ctx context.Context, actor *entities.Actor, id uuid.UUID) (*entities.Post, error)
	ListPosts(ctx context.Context, actor *entities.Actor, p *ListPostsParams) ([]*entities.Post, error)
	UpdatePostStatus(ctx context.Context, actor *entities.Actor, id uuid.UUID, status entities.PostStatus) (*entities.Post, error)
	CompletePost(ctx context.Context, actor *entities.Actor, id uuid.UUID, photos []string) (*entities.Post, error)
	GetStats(ctx context.Context) (*entities.Stats, error)

	FlagPost(ctx context.Context, actor *entities.Actor, postID uuid.UUID, reason entities.FlagReason, comment string) (*entities.Flag, error)
	ListFlags(ctx context.Context, actor *entities.Actor, postID uuid.UUID) ([]*entities.Flag, error)
	ListFlaggedPosts(ctx context.Context, actor *entities.Actor, p *storage.ListFlaggedPostsParams) ([]*storage.FlaggedPost, error)
	ListModerationActions(ctx context.Context, actor *entities.Actor, p *storage.ListModerationActionsParams) ([]*entities.ModerationAction, error)

	Moderate(ctx context.Context, actor *entities.Actor, postID uuid.UUID, r *ModerationRequest) (*ModerationResult, error)
	DismissFlags(ctx context.Context, actor *entities.Actor, postID uuid.UUID, flagIDs []uuid.UUID, reason string) (*ModerationResult, error)
	HidePost(ctx context.Context, actor *entities.Actor, postID uuid.UUID, reason string) (*ModerationResult, error)
	DeletePost(ctx context.Context, actor *entities.Actor, postID uuid.UUID, reason string) (*ModerationResult, error)
	NotifyAuthor(ctx context.Context, actor *entities.Actor, postID uuid.UUID, reason string) (*ModerationResult, error)

	GetUser(ctx context.Context, id uuid.UUID) (*entities.PublicUser, error)
	ApplySanction(ctx context.Context, actor *entities.Actor, targetID uuid.UUID, action entities.SanctionAction, reason string) (*entities.PublicUser, error)

	CreateEvent(ctx context.Context, actor *entities.Actor, postID uuid.UUID, p *CreateEventParams) (*entities.Event, error)
	GetEvent(ctx context.Context, actor *entities.Actor, id uuid.UUID) (*entities.Event, error)
	ListEvents(ctx context.Context, actor *entities.Actor, postID uuid.UUID) ([]*entities.Event, error)
	JoinEvent(ctx context.Context, actor *entities.Actor, eventID uuid.UUID) error
	LeaveEvent(ctx context.Context, actor *entities.Actor, eventID uuid.UUID) error
	UpdateEventStatus(ctx context.Context, actor *entities.Actor, eventID uuid.UUID, status entities.EventStatus) (*entities.Event, error)
	AdvanceEvents(ctx context.Context) (uint64, error)

	ExpressInterest(ctx context.Context, actor *entities.Actor, postID uuid.UUID, shareContactInfo bool) (uint64, error)
	WithdrawInterest(ctx context.Context, actor *entities.Actor, postID uuid.UUID) (uint64, error)
	ListInterestedUsers(ctx context.Context, actor *entities.Actor, postID uuid.UUID) ([]*entities.InterestedUser, error)
}

// CreatePostParams ...
type CreatePostParams struct {
	Title        string
	Description  string
	Photos       []string
	District     string
	Neighborhood string
	Draft        bool
}

// ListPostsParams ...
type ListPostsParams struct {
	Query        *string
	District     *string
	Neighborhood *string
	Author       *uuid.UUID
	Status       *entities.PostStatus
	OrderBy      storage.OrderType
	Limit        uint16
	After        *uuid.UUID
}

// ModerationRequest is a moderator decision on a flagged post.
// Action is one of DISMISS_FLAGS, HIDE_POST, DELETE_POST, NOTIFY_AUTHOR.
type ModerationRequest struct {
	Action       entities.ModerationActionType
	FlagIDs      []uuid.UUID
	Reason       string
	NotifyAuthor bool
}

// ModerationResult ...
type ModerationResult struct {
	// Post is nil when post was deleted.
	Post *entities.Post
	// Flags contains ids of flags changed by the action.
	Flags []uuid.UUID
	// Actions contains written audit records.
	Actions []*entities.ModerationAction
}

// CreateEventParams ...
type CreateEventParams struct {
	Title         string
	Description   string
	StartDate     time.Time
	EndDate       *time.Time
	MaxAttendees  *int
	RequiredTools string
}
