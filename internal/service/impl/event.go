package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cleanup-hub/cleanup/internal/entities"
	"github.com/cleanup-hub/cleanup/internal/metrics"
	"github.com/cleanup-hub/cleanup/internal/service"
	"github.com/cleanup-hub/cleanup/internal/service/policy"
	"github.com/cleanup-hub/cleanup/internal/storage"
)

func (s *srv) CreateEvent(ctx context.Context, actor *entities.Actor, postID uuid.UUID,
	p *service.CreateEventParams) (*entities.Event, error) {
	if err := policy.RequireActor(actor); err != nil {
		return nil, err
	}

	title, description := strings.TrimSpace(p.Title), strings.TrimSpace(p.Description)
	if title == "" || description == "" || p.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: title, description and start date are required", service.ErrValidation)
	}

	if p.MaxAttendees != nil && *p.MaxAttendees <= 0 {
		return nil, fmt.Errorf("%w: max attendees should be positive", service.ErrValidation)
	}

	post, err := s.s.GetPost(ctx, postID)
	if err != nil {
		return nil, notFoundOr(err, "post", postID)
	}

	if err := policy.CanViewPost(actor, post, false); err != nil {
		return nil, err
	}

	interested := false
	if actor.ID != post.AuthorID {
		switch _, err := s.s.GetInterest(ctx, actor.ID, postID); {
		case err == nil:
			interested = true
		case errors.Is(err, storage.ErrNotFound):
		default:
			return nil, fmt.Errorf("failed to get interest: %w", err)
		}
	}

	if err := policy.CanCreateEvent(actor, post, interested); err != nil {
		return nil, err
	}

	now := s.now()
	if !p.StartDate.After(now) {
		return nil, fmt.Errorf("%w: start date should be in the future", service.ErrInvalidDate)
	}

	if p.EndDate != nil && !p.EndDate.After(p.StartDate) {
		return nil, fmt.Errorf("%w: end date should be after start date", service.ErrInvalidDate)
	}

	e := &entities.Event{
		ID:            uuid.New(),
		Title:         title,
		Description:   description,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		Status:        entities.PlannedEventStatus,
		MaxAttendees:  p.MaxAttendees,
		OrganizerID:   actor.ID,
		PostID:        postID,
		District:      post.District,
		Neighborhood:  post.Neighborhood,
		RequiredTools: strings.TrimSpace(p.RequiredTools),
		CreatedAt:     now,
		UpdatedAt:     now,
		Attendees:     []entities.EventAttendee{},
	}

	if err := s.s.CreateEvent(ctx, e); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: post=%s", service.ErrNotFound, postID)
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	log.WithField("event", e.ID).WithField("post", postID).WithField("organizer", actor.ID).Info("event created")

	return e, nil
}

// GetEvent returns event if its post is visible to actor.
func (s *srv) GetEvent(ctx context.Context, actor *entities.Actor, id uuid.UUID) (*entities.Event, error) {
	e, err := s.s.GetEvent(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "event", id)
	}

	if _, err := visiblePost(ctx, s.s, actor, e.PostID, s.showArchived); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, fmt.Errorf("%w: event=%s", service.ErrNotFound, id)
		}
		return nil, err
	}

	return e, nil
}

func (s *srv) ListEvents(ctx context.Context, actor *entities.Actor, postID uuid.UUID) ([]*entities.Event, error) {
	if _, err := visiblePost(ctx, s.s, actor, postID, s.showArchived); err != nil {
		return nil, err
	}

	events, err := s.s.ListEvents(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}

// visiblePost hides events of drafts and archived posts the same way posts themselves are hidden.
func visiblePost(ctx context.Context, st storage.Storage, actor *entities.Actor, postID uuid.UUID,
	showArchived bool) (*entities.Post, error) {
	p, err := st.GetPost(ctx, postID)
	if err != nil {
		return nil, notFoundOr(err, "post", postID)
	}

	if err := policy.CanViewPost(actor, p, showArchived); err != nil {
		return nil, err
	}

	return p, nil
}

// JoinEvent registers actor as attendee. Event row is locked while capacity is checked, so concurrent joins
// could not exceed the limit.
func (s *srv) JoinEvent(ctx context.Context, actor *entities.Actor, eventID uuid.UUID) error {
	if err := policy.RequireActor(actor); err != nil {
		return err
	}

	return s.s.InTx(ctx, func(tx storage.Storage) error {
		e, err := tx.GetEventForUpdate(ctx, eventID)
		if err != nil {
			return notFoundOr(err, "event", eventID)
		}

		// archived posts are closed for volunteers even when moderators can see them
		p, err := visiblePost(ctx, tx, actor, e.PostID, false)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return fmt.Errorf("%w: event=%s", service.ErrNotFound, eventID)
			}
			return err
		}

		if err := policy.CanJoinEvent(actor, e, p); err != nil {
			return err
		}

		if err := tx.AddAttendee(ctx, eventID, actor.ID, s.now()); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				return fmt.Errorf("%w: user=%s already attends event=%s", service.ErrConflict, actor.ID, eventID)
			}
			return fmt.Errorf("failed to add attendee: %w", err)
		}

		return nil
	})
}

func (s *srv) LeaveEvent(ctx context.Context, actor *entities.Actor, eventID uuid.UUID) error {
	if err := policy.RequireActor(actor); err != nil {
		return err
	}

	return s.s.InTx(ctx, func(tx storage.Storage) error {
		e, err := tx.GetEventForUpdate(ctx, eventID)
		if err != nil {
			return notFoundOr(err, "event", eventID)
		}

		if err := policy.CanLeaveEvent(actor, e); err != nil {
			return err
		}

		if err := tx.RemoveAttendee(ctx, eventID, actor.ID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("%w: user=%s does not attend event=%s", service.ErrNotFound, actor.ID, eventID)
			}
			return fmt.Errorf("failed to remove attendee: %w", err)
		}

		return nil
	})
}

func (s *srv) UpdateEventStatus(ctx context.Context, actor *entities.Actor, eventID uuid.UUID,
	status entities.EventStatus) (*entities.Event, error) {
	if err := policy.RequireActor(actor); err != nil {
		return nil, err
	}

	switch status {
	case entities.PlannedEventStatus, entities.ActiveEventStatus, entities.CompletedEventStatus, entities.CancelledEventStatus:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", service.ErrValidation, status)
	}

	var out *entities.Event
	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		e, err := tx.GetEventForUpdate(ctx, eventID)
		if err != nil {
			return notFoundOr(err, "event", eventID)
		}

		if err := policy.CanManageEvent(actor, e); err != nil {
			return err
		}

		if !eventStateMachine(e.Status).Can(string(status)) {
			return fmt.Errorf("%w: event=%s transition %s->%s is not allowed", service.ErrInvalidState, eventID, e.Status, status)
		}

		now := s.now()
		if err := tx.SetEventStatus(ctx, eventID, status, now); err != nil {
			return fmt.Errorf("failed to set event status: %w", err)
		}

		e.Status, e.UpdatedAt = status, now
		out = e

		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}

// AdvanceEvents moves events by schedule: started ones become active, finished ones become completed.
func (s *srv) AdvanceEvents(ctx context.Context) (uint64, error) {
	c, err := s.s.AdvanceEvents(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to advance events: %w", err)
	}

	metrics.AdvancedEvents.Add(float64(c))

	return c, nil
}
