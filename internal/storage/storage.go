// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cleanup-hub/cleanup/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrAlreadyExists is returned when unique constraint is violated.
var ErrAlreadyExists = fmt.Errorf("already exists")

// Storage provides methods for interacting with database.
type Storage interface {
	// InTx runs f in a single transaction. Everything written by f is committed only when f returns nil.
	InTx(ctx context.Context, f func(s Storage) error) error
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, u *entities.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetUserForUpdate(ctx context.Context, id uuid.UUID) (*entities.User, error)
	SetUserStanding(ctx context.Context, id uuid.UUID, role entities.Role, status entities.UserStatus, timestamp time.Time) error

	CreatePost(ctx context.Context, p *entities.Post) error
	GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error)
	GetPostForUpdate(ctx context.Context, id uuid.UUID) (*entities.Post, error)
	ListPosts(ctx context.Context, p *ListPostsParams) ([]*entities.Post, error)
	SetPostStatus(ctx context.Context, id uuid.UUID, status entities.PostStatus, timestamp time.Time) error
	SetPostPhotos(ctx context.Context, id uuid.UUID, photos []string, timestamp time.Time) error
	DeletePost(ctx context.Context, id uuid.UUID) error
	ListFlaggedPosts(ctx context.Context, p *ListFlaggedPostsParams) ([]*FlaggedPost, error)

	CreateFlag(ctx context.Context, f *entities.Flag) error
	ListFlags(ctx context.Context, p *ListFlagsParams) ([]*entities.Flag, error)
	SetFlagsStatus(ctx context.Context, ids []uuid.UUID, status entities.FlagStatus, timestamp time.Time) error

	CreateModerationAction(ctx context.Context, a *entities.ModerationAction) error
	ListModerationActions(ctx context.Context, p *ListModerationActionsParams) ([]*entities.ModerationAction, error)

	CreateEvent(ctx context.Context, e *entities.Event) error
	GetEvent(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	GetEventForUpdate(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	ListEvents(ctx context.Context, postID uuid.UUID) ([]*entities.Event, error)
	SetEventStatus(ctx context.Context, id uuid.UUID, status entities.EventStatus, timestamp time.Time) error
	AdvanceEvents(ctx context.Context, now time.Time) (uint64, error)
	AddAttendee(ctx context.Context, eventID, userID uuid.UUID, timestamp time.Time) error
	RemoveAttendee(ctx context.Context, eventID, userID uuid.UUID) error

	GetInterest(ctx context.Context, userID, postID uuid.UUID) (*entities.PostInterest, error)
	UpsertInterest(ctx context.Context, i *entities.PostInterest) error
	DeleteInterest(ctx context.Context, userID, postID uuid.UUID) error
	CountInterests(ctx context.Context, postID uuid.UUID) (uint64, error)
	ListInterestedUsers(ctx context.Context, postID uuid.UUID) ([]*InterestedUser, error)

	GetStats(ctx context.Context) (*entities.Stats, error)
}

// OrderType ...
type OrderType string

const (
	// AscendingOrder ...
	AscendingOrder OrderType = "asc"
	// DescendingOrder ...
	DescendingOrder OrderType = "desc"
)

// ListPostsParams ...
type ListPostsParams struct {
	Query        *string
	District     *string
	Neighborhood *string
	Author       *uuid.UUID
	Statuses     []entities.PostStatus
	OrderBy      OrderType
	Limit        uint16
	After        *uuid.UUID
}

// ListFlaggedPostsParams ...
type ListFlaggedPostsParams struct {
	FlagStatus entities.FlagStatus
	Limit      uint16
	Offset     uint64
}

// FlaggedPost is a post with flags count in requested status.
type FlaggedPost struct {
	Post       entities.Post
	FlagsCount uint64
	LastFlagAt time.Time
}

// ListFlagsParams ...
type ListFlagsParams struct {
	PostID *uuid.UUID
	Status *entities.FlagStatus
	IDs    []uuid.UUID
}

// ListModerationActionsParams ...
type ListModerationActionsParams struct {
	PostID       *uuid.UUID
	TargetUserID *uuid.UUID
	ModeratorID  *uuid.UUID
	Limit        uint16
	Offset       uint64
}

// InterestedUser ...
type InterestedUser struct {
	User             entities.User
	ShareContactInfo bool
	InterestedAt     time.Time
}
