package server

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/cleanup-hub/cleanup/internal/entities"
	"github.com/cleanup-hub/cleanup/internal/service"
	"github.com/cleanup-hub/cleanup/internal/storage"
)

const maxLimit = 100

func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "invalid request"
	}

	out := make([]string, len(errs))
	for i, v := range errs {
		out[i] = fmt.Sprintf("invalid %s: %s", strings.ToLower(v.Field()), v.Tag())
	}

	return strings.Join(out, "; ")
}

// CreatePostRequest ...
// swagger:model
type CreatePostRequest struct {
	Title        string   `json:"title" validate:"notblank,max=256"`
	Description  string   `json:"description" validate:"notblank,max=4096"`
	Photos       []string `json:"photos" validate:"max=10,dive,url"`
	District     string   `json:"district" validate:"max=128"`
	Neighborhood string   `json:"neighborhood" validate:"max=128"`
	Draft        bool     `json:"draft"`
}

// UpdatePostStatusRequest ...
// swagger:model
type UpdatePostStatusRequest struct {
	Status entities.PostStatus `json:"status" validate:"required"`
}

// CompletePostRequest ...
// swagger:model
type CompletePostRequest struct {
	Photos []string `json:"photos" validate:"max=10,dive,url"`
}

// Post ...
// swagger:model
type Post struct {
	ID           uuid.UUID           `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Photos       []string            `json:"photos"`
	AuthorID     uuid.UUID           `json:"author_id"`
	District     string              `json:"district"`
	Neighborhood string              `json:"neighborhood"`
	Status       entities.PostStatus `json:"status"`
	CreatedAt    int64               `json:"created_at"`
	UpdatedAt    int64               `json:"updated_at"`
}

// FlagPostRequest ...
// swagger:model
type FlagPostRequest struct {
	Reason  entities.FlagReason `json:"reason" validate:"required"`
	Comment string              `json:"comment" validate:"max=1024"`
}

// Flag ...
// swagger:model
type Flag struct {
	ID        uuid.UUID           `json:"id"`
	PostID    uuid.UUID           `json:"post_id"`
	UserID    uuid.UUID           `json:"user_id"`
	Reason    entities.FlagReason `json:"reason"`
	Comment   string              `json:"comment,omitempty"`
	Status    entities.FlagStatus `json:"status"`
	CreatedAt int64               `json:"created_at"`
	UpdatedAt int64               `json:"updated_at"`
}

// FlaggedPost ...
// swagger:model
type FlaggedPost struct {
	Post       Post   `json:"post"`
	FlagsCount uint64 `json:"flags_count"`
	LastFlagAt int64  `json:"last_flag_at"`
}

// ModerateRequest ...
// swagger:model
type ModerateRequest struct {
	Action       entities.ModerationActionType `json:"action" validate:"required"`
	FlagIDs      []uuid.UUID                   `json:"flag_ids"`
	Reason       string                        `json:"reason" validate:"max=1024"`
	NotifyAuthor bool                          `json:"notify_author"`
}

// ModerateResponse ...
// swagger:model
type ModerateResponse struct {
	// Post is absent when the post was deleted.
	Post    *Post              `json:"post,omitempty"`
	Flags   []uuid.UUID        `json:"flags"`
	Actions []ModerationAction `json:"actions"`
}

// ModerationAction ...
// swagger:model
type ModerationAction struct {
	ID           uuid.UUID                     `json:"id"`
	PostID       *uuid.UUID                    `json:"post_id"`
	TargetUserID *uuid.UUID                    `json:"target_user_id"`
	ModeratorID  uuid.UUID                     `json:"moderator_id"`
	Action       entities.ModerationActionType `json:"action"`
	Reason       string                        `json:"reason,omitempty"`
	CreatedAt    int64                         `json:"created_at"`
}

// SanctionRequest ...
// swagger:model
type SanctionRequest struct {
	Action entities.SanctionAction `json:"action" validate:"required"`
	Reason string                  `json:"reason" validate:"max=1024"`
}

// User ...
// swagger:model
type User struct {
	ID     uuid.UUID           `json:"id"`
	Email  string              `json:"email"`
	Name   string              `json:"name"`
	Role   entities.Role       `json:"role"`
	Status entities.UserStatus `json:"status"`
}

// CreateEventRequest ...
// Dates are unix timestamps.
// swagger:model
type CreateEventRequest struct {
	Title         string `json:"title" validate:"notblank,max=256"`
	Description   string `json:"description" validate:"notblank,max=4096"`
	StartDate     int64  `json:"start_date" validate:"required,gt=0"`
	EndDate       *int64 `json:"end_date"`
	MaxAttendees  *int   `json:"max_attendees" validate:"omitempty,gt=0"`
	RequiredTools string `json:"required_tools" validate:"max=1024"`
}

// UpdateEventStatusRequest ...
// swagger:model
type UpdateEventStatusRequest struct {
	Status entities.EventStatus `json:"status" validate:"required"`
}

// Event ...
// swagger:model
type Event struct {
	ID            uuid.UUID            `json:"id"`
	PostID        uuid.UUID            `json:"post_id"`
	OrganizerID   uuid.UUID            `json:"organizer_id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	StartDate     int64                `json:"start_date"`
	EndDate       *int64               `json:"end_date,omitempty"`
	Status        entities.EventStatus `json:"status"`
	MaxAttendees  *int                 `json:"max_attendees,omitempty"`
	District      string               `json:"district"`
	Neighborhood  string               `json:"neighborhood"`
	RequiredTools string               `json:"required_tools,omitempty"`
	Attendees     []uuid.UUID          `json:"attendees"`
	CreatedAt     int64                `json:"created_at"`
}

// ExpressInterestRequest ...
// swagger:model
type ExpressInterestRequest struct {
	ShareContactInfo bool `json:"share_contact_info"`
}

// InterestResponse ...
// swagger:model
type InterestResponse struct {
	InterestedCount uint64 `json:"interested_count"`
}

// InterestedUser ...
// swagger:model
type InterestedUser struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        *string   `json:"email,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	InterestedAt int64     `json:"interested_at"`
}

// Stats ...
// swagger:model
type Stats struct {
	Posts         map[entities.PostStatus]uint64 `json:"posts"`
	PlannedEvents uint64                         `json:"planned_events"`
	Volunteers    uint64                         `json:"volunteers"`
}

func toAPIPost(p *entities.Post) *Post {
	if p == nil {
		return nil
	}

	photos := p.Photos
	if photos == nil {
		photos = []string{}
	}

	return &Post{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Photos:       photos,
		AuthorID:     p.AuthorID,
		District:     p.District,
		Neighborhood: p.Neighborhood,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt.Unix(),
		UpdatedAt:    p.UpdatedAt.Unix(),
	}
}

func toAPIFlag(f *entities.Flag) Flag {
	return Flag{
		ID:        f.ID,
		PostID:    f.PostID,
		UserID:    f.UserID,
		Reason:    f.Reason,
		Comment:   f.Comment,
		Status:    f.Status,
		CreatedAt: f.CreatedAt.Unix(),
		UpdatedAt: f.UpdatedAt.Unix(),
	}
}

func toAPIFlaggedPost(p *storage.FlaggedPost) FlaggedPost {
	return FlaggedPost{
		Post:       *toAPIPost(&p.Post),
		FlagsCount: p.FlagsCount,
		LastFlagAt: p.LastFlagAt.Unix(),
	}
}

func toAPIModerationAction(a *entities.ModerationAction) ModerationAction {
	return ModerationAction{
		ID:           a.ID,
		PostID:       a.PostID,
		TargetUserID: a.TargetUserID,
		ModeratorID:  a.ModeratorID,
		Action:       a.Action,
		Reason:       a.Reason,
		CreatedAt:    a.CreatedAt.Unix(),
	}
}

func toAPIModerateResponse(r *service.ModerationResult) ModerateResponse {
	out := ModerateResponse{
		Post:    toAPIPost(r.Post),
		Flags:   r.Flags,
		Actions: make([]ModerationAction, len(r.Actions)),
	}

	if out.Flags == nil {
		out.Flags = []uuid.UUID{}
	}

	for i, v := range r.Actions {
		out.Actions[i] = toAPIModerationAction(v)
	}

	return out
}

func toAPIUser(u *entities.PublicUser) User {
	return User{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
		Status: u.Status,
	}
}

func toAPIEvent(e *entities.Event) Event {
	out := Event{
		ID:            e.ID,
		PostID:        e.PostID,
		OrganizerID:   e.OrganizerID,
		Title:         e.Title,
		Description:   e.Description,
		StartDate:     e.StartDate.Unix(),
		Status:        e.Status,
		MaxAttendees:  e.MaxAttendees,
		District:      e.District,
		Neighborhood:  e.Neighborhood,
		RequiredTools: e.RequiredTools,
		Attendees:     make([]uuid.UUID, len(e.Attendees)),
		CreatedAt:     e.CreatedAt.Unix(),
	}

	if e.EndDate != nil {
		v := e.EndDate.Unix()
		out.EndDate = &v
	}

	for i, v := range e.Attendees {
		out.Attendees[i] = v.UserID
	}

	return out
}

func toAPIInterestedUser(u *entities.InterestedUser) InterestedUser {
	return InterestedUser{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		InterestedAt: u.InterestedAt.Unix(),
	}
}

func toAPIStats(s *entities.Stats) Stats {
	out := Stats{
		Posts:         s.Posts,
		PlannedEvents: s.PlannedEvents,
		Volunteers:    s.Volunteers,
	}

	if out.Posts == nil {
		out.Posts = map[entities.PostStatus]uint64{}
	}

	return out
}
