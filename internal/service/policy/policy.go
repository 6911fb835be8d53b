// Package policy contains authorization rules. All functions are pure: they return nil when the action is
// allowed and a wrapped service error otherwise.
package policy

import (
	"fmt"

	"github.com/cleanup-hub/cleanup/internal/entities"
	"github.com/cleanup-hub/cleanup/internal/service"
)

// RequireActor ...
func RequireActor(a *entities.Actor) error {
	if a == nil {
		return service.ErrUnauthorized
	}
	return nil
}

// CanModerate allows flags and posts moderation to moderators and admins.
func CanModerate(a *entities.Actor) error {
	if err := RequireActor(a); err != nil {
		return err
	}

	if !a.Role.IsModerator() {
		return fmt.Errorf("%w: moderator role required", service.ErrForbidden)
	}

	return nil
}

// CanSanction checks that actor is allowed to apply the action to target.
// Admins could not be sanctioned at all, moderators could be sanctioned only by admins.
func CanSanction(a *entities.Actor, target *entities.User, action entities.SanctionAction) error {
	if err := RequireActor(a); err != nil {
		return err
	}

	if action == entities.PromoteSanction {
		if a.Role != entities.AdminRole {
			return fmt.Errorf("%w: admin role required to promote", service.ErrForbidden)
		}
	} else if !a.Role.IsModerator() {
		return fmt.Errorf("%w: moderator role required", service.ErrForbidden)
	}

	switch target.Role {
	case entities.AdminRole:
		return fmt.Errorf("%w: admin could not be sanctioned", service.ErrForbidden)
	case entities.ModeratorRole:
		if a.Role != entities.AdminRole {
			return fmt.Errorf("%w: only admin could sanction moderator", service.ErrForbidden)
		}
	}

	return nil
}

// CanFlag ...
func CanFlag(a *entities.Actor, p *entities.Post) error {
	if err := RequireActor(a); err != nil {
		return err
	}

	if a.ID == p.AuthorID {
		return fmt.Errorf("%w: author could not flag own post", service.ErrForbidden)
	}

	return nil
}

// CanViewPost hides drafts from everyone except author and archived posts from everyone except author and,
// when showArchived is set, moderators. Hidden posts are reported as not found.
func CanViewPost(a *entities.Actor, p *entities.Post, showArchived bool) error {
	isAuthor := a != nil && a.ID == p.AuthorID

	switch p.Status {
	case entities.DraftPostStatus:
		if !isAuthor {
			return fmt.Errorf("%w: post=%s", service.ErrNotFound, p.ID)
		}
	case entities.ArchivedPostStatus:
		if !isAuthor && !(showArchived && a != nil && a.Role.IsModerator()) {
			return fmt.Errorf("%w: post=%s", service.ErrNotFound, p.ID)
		}
	}

	return nil
}

// CanChangePostStatus allows status changes to author and moderators.
func CanChangePostStatus(a *entities.Actor, p *entities.Post) error {
	if err := RequireActor(a); err != nil {
		return err
	}

	if a.ID != p.AuthorID && !a.Role.IsModerator() {
		return fmt.Errorf("%w: only author or moderator could change post status", service.ErrForbidden)
	}

	return nil
}

// CanCompletePost ...
func CanCompletePost(a *entities.Actor, p *entities.Post) error {
	if err := RequireActor(a); err != nil {
		return err
	}

	if a.ID != p.AuthorID {
		return fmt.Errorf("%w: only author could complete post", service.ErrForbidden)
	}

	return nil
}

// CanCreateEvent allows event creation to post's author and users interested in the post.
func CanCreateEvent(a *entities.Actor, p *entities.Post, interested bool) error {
	if err := RequireActor(a); err != nil {
		return err
	}

	if a.ID != p.AuthorID && !interested {
		return fmt.Errorf("%w: only author or interested user could create event", service.ErrForbidden)
	}

	return nil
}

// CanJoinEvent checks event status, organizer, post's author, capacity and existing attendance in this order.
func CanJoinEvent(a *entities.Actor, e *entities.Event, p *entities.Post) error {
	if err := RequireActor(a); err != nil {
		return err
	}

	if e.Status != entities.PlannedEventStatus {
		return fmt.Errorf("%w: event=%s status=%s", service.ErrInvalidState, e.ID, e.Status)
	}

	if a.ID == e.OrganizerID {
		return fmt.Errorf("%w: organizer could not join own event", service.ErrForbidden)
	}

	if a.ID == p.AuthorID {
		return fmt.Errorf("%w: author could not attend event on own post", service.ErrForbidden)
	}

	if e.MaxAttendees != nil && len(e.Attendees) >= *e.MaxAttendees {
		return fmt.Errorf("%w: event=%s max_attendees=%d", service.ErrFull, e.ID, *e.MaxAttendees)
	}

	for _, v := range e.Attendees {
		if v.UserID == a.ID {
			return fmt.Errorf("%w: user=%s already attends event=%s", service.ErrConflict, a.ID, e.ID)
		}
	}

	return nil
}

// CanLeaveEvent ...
func CanLeaveEvent(a *entities.Actor, e *entities.Event) error {
	if err := RequireActor(a); err != nil {
		return err
	}

	if e.Status != entities.PlannedEventStatus {
		return fmt.Errorf("%w: event=%s status=%s", service.ErrInvalidState, e.ID, e.Status)
	}

	return nil
}

// CanManageEvent allows event status changes to organizer only.
func CanManageEvent(a *entities.Actor, e *entities.Event) error {
	if err := RequireActor(a); err != nil {
		return err
	}

	if a.ID != e.OrganizerID {
		return fmt.Errorf("%w: only organizer could manage event", service.ErrForbidden)
	}

	return nil
}

// CanExpressInterest ...
func CanExpressInterest(a *entities.Actor, p *entities.Post) error {
	if err := RequireActor(a); err != nil {
		return err
	}

	if p.Status != entities.PublishedPostStatus {
		return fmt.Errorf("%w: post=%s status=%s", service.ErrInvalidState, p.ID, p.Status)
	}

	if a.ID == p.AuthorID {
		return fmt.Errorf("%w: author could not be interested in own post", service.ErrForbidden)
	}

	return nil
}

// CanWithdrawInterest ...
func CanWithdrawInterest(a *entities.Actor, p *entities.Post) error {
	if err := RequireActor(a); err != nil {
		return err
	}

	if a.ID == p.AuthorID {
		return fmt.Errorf("%w: author could not be interested in own post", service.ErrForbidden)
	}

	return nil
}

// CanListInterested allows to see interested users to post's author only.
func CanListInterested(a *entities.Actor, p *entities.Post) error {
	if err := RequireActor(a); err != nil {
		return err
	}

	if a.ID != p.AuthorID {
		return fmt.Errorf("%w: only author could list interested users", service.ErrForbidden)
	}

	return nil
}
