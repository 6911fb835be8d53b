// Package entities contains main entities of service.
package entities

import (
	"time"

	"github.com/google/uuid"
)

// Role ...
type Role string

const (
	// UserRole ...
	UserRole Role = "USER"
	// ModeratorRole ...
	ModeratorRole Role = "MODERATOR"
	// AdminRole ...
	AdminRole Role = "ADMIN"
)

// IsModerator returns true for roles allowed to moderate content.
func (r Role) IsModerator() bool {
	return r == ModeratorRole || r == AdminRole
}

// UserStatus ...
type UserStatus string

const (
	// ActiveUserStatus ...
	ActiveUserStatus UserStatus = "ACTIVE"
	// WarnedUserStatus ...
	WarnedUserStatus UserStatus = "WARNED"
	// SuspendedUserStatus ...
	SuspendedUserStatus UserStatus = "SUSPENDED"
)

// PostStatus ...
type PostStatus string

const (
	// DraftPostStatus ...
	DraftPostStatus PostStatus = "DRAFT"
	// PublishedPostStatus ...
	PublishedPostStatus PostStatus = "PUBLISHED"
	// UnderReviewPostStatus ...
	UnderReviewPostStatus PostStatus = "UNDER_REVIEW"
	// CompletedPostStatus ...
	CompletedPostStatus PostStatus = "COMPLETED"
	// ArchivedPostStatus is set by moderators only, when the post is hidden.
	ArchivedPostStatus PostStatus = "ARCHIVED"
)

// FlagReason ...
type FlagReason string

const (
	// SpamFlagReason ...
	SpamFlagReason FlagReason = "spam"
	// InappropriateFlagReason ...
	InappropriateFlagReason FlagReason = "inappropriate"
	// MisleadingFlagReason ...
	MisleadingFlagReason FlagReason = "misleading"
	// OtherFlagReason ...
	OtherFlagReason FlagReason = "other"
)

// IsValid ...
func (r FlagReason) IsValid() bool {
	switch r {
	case SpamFlagReason, InappropriateFlagReason, MisleadingFlagReason, OtherFlagReason:
		return true
	default:
		return false
	}
}

// FlagStatus ...
type FlagStatus string

const (
	// PendingFlagStatus ...
	PendingFlagStatus FlagStatus = "PENDING"
	// DismissedFlagStatus is terminal.
	DismissedFlagStatus FlagStatus = "DISMISSED"
	// ResolvedFlagStatus is terminal.
	ResolvedFlagStatus FlagStatus = "RESOLVED"
)

// EventStatus ...
type EventStatus string

const (
	// PlannedEventStatus ...
	PlannedEventStatus EventStatus = "PLANNED"
	// ActiveEventStatus ...
	ActiveEventStatus EventStatus = "ACTIVE"
	// CompletedEventStatus ...
	CompletedEventStatus EventStatus = "COMPLETED"
	// CancelledEventStatus ...
	CancelledEventStatus EventStatus = "CANCELLED"
)

// ModerationActionType is a tag of audit record.
type ModerationActionType string

const (
	// DismissFlagsAction ...
	DismissFlagsAction ModerationActionType = "DISMISS_FLAGS"
	// HidePostAction ...
	HidePostAction ModerationActionType = "HIDE_POST"
	// DeletePostAction ...
	DeletePostAction ModerationActionType = "DELETE_POST"
	// NotifyAuthorAction ...
	NotifyAuthorAction ModerationActionType = "NOTIFY_AUTHOR"
	// WarnUserAction ...
	WarnUserAction ModerationActionType = "WARN_USER"
	// SuspendUserAction ...
	SuspendUserAction ModerationActionType = "SUSPEND_USER"
	// ActivateUserAction ...
	ActivateUserAction ModerationActionType = "ACTIVATE_USER"
	// PromoteUserAction ...
	PromoteUserAction ModerationActionType = "PROMOTE_USER"
)

// SanctionAction ...
type SanctionAction string

const (
	// WarnSanction ...
	WarnSanction SanctionAction = "WARN"
	// SuspendSanction ...
	SuspendSanction SanctionAction = "SUSPEND"
	// ActivateSanction ...
	ActivateSanction SanctionAction = "ACTIVATE"
	// PromoteSanction ...
	PromoteSanction SanctionAction = "PROMOTE"
)

// Actor is an authenticated caller. Nil actor means anonymous request.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// Post ...
type Post struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Photos       []string
	AuthorID     uuid.UUID
	District     string
	Neighborhood string
	Status       PostStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Flag ...
type Flag struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	UserID    uuid.UUID
	Reason    FlagReason
	Comment   string
	Status    FlagStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ModerationAction is an immutable audit record.
// PostID is nil when the post was deleted.
type ModerationAction struct {
	ID           uuid.UUID
	PostID       *uuid.UUID
	TargetUserID *uuid.UUID
	ModeratorID  uuid.UUID
	Action       ModerationActionType
	Reason       string
	CreatedAt    time.Time
}

// User ...
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Phone     string
	Role      Role
	Status    UserStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicUser is a part of user which could be shown to other users.
type PublicUser struct {
	ID     uuid.UUID
	Email  string
	Name   string
	Role   Role
	Status UserStatus
}

// Public ...
func (u User) Public() PublicUser {
	return PublicUser{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
		Status: u.Status,
	}
}

// Event ...
type Event struct {
	ID            uuid.UUID
	Title         string
	Description   string
	StartDate     time.Time
	EndDate       *time.Time
	Status        EventStatus
	MaxAttendees  *int
	OrganizerID   uuid.UUID
	PostID        uuid.UUID
	District      string
	Neighborhood  string
	RequiredTools string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Attendees []EventAttendee
}

// EventAttendee ...
type EventAttendee struct {
	EventID  uuid.UUID
	UserID   uuid.UUID
	JoinedAt time.Time
}

// PostInterest ...
type PostInterest struct {
	UserID           uuid.UUID
	PostID           uuid.UUID
	ShareContactInfo bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// InterestedUser is an entry of interested users list. Contacts are nil unless user agreed to share them.
type InterestedUser struct {
	ID           uuid.UUID
	Name         string
	Email        *string
	Phone        *string
	InterestedAt time.Time
}

// Stats ...
type Stats struct {
	Posts         map[PostStatus]uint64
	PlannedEvents uint64
	Volunteers    uint64
}
