package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cleanup-hub/cleanup/internal/entities"
	"github.com/cleanup-hub/cleanup/internal/storage"
)

const eventColumns = `id, title, description, start_date, end_date, status, max_attendees, organizer_id, post_id,
	district, neighborhood, required_tools, created_at, updated_at`

type eventDTO struct {
	ID            uuid.UUID     `db:"id"`
	Title         string        `db:"title"`
	Description   string        `db:"description"`
	StartDate     time.Time     `db:"start_date"`
	EndDate       sql.NullTime  `db:"end_date"`
	Status        string        `db:"status"`
	MaxAttendees  sql.NullInt32 `db:"max_attendees"`
	OrganizerID   uuid.UUID     `db:"organizer_id"`
	PostID        uuid.UUID     `db:"post_id"`
	District      string        `db:"district"`
	Neighborhood  string        `db:"neighborhood"`
	RequiredTools string        `db:"required_tools"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}

type attendeeDTO struct {
	EventID  uuid.UUID `db:"event_id"`
	UserID   uuid.UUID `db:"user_id"`
	JoinedAt time.Time `db:"joined_at"`
}

func (e eventDTO) toEntity() *entities.Event {
	out := &entities.Event{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		StartDate:     e.StartDate,
		Status:        entities.EventStatus(e.Status),
		OrganizerID:   e.OrganizerID,
		PostID:        e.PostID,
		District:      e.District,
		Neighborhood:  e.Neighborhood,
		RequiredTools: e.RequiredTools,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
		Attendees:     []entities.EventAttendee{},
	}

	if e.EndDate.Valid {
		v := e.EndDate.Time
		out.EndDate = &v
	}

	if e.MaxAttendees.Valid {
		v := int(e.MaxAttendees.Int32)
		out.MaxAttendees = &v
	}

	return out
}

func (s pg) CreateEvent(ctx context.Context, e *entities.Event) error {
	event := eventDTO{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		StartDate:     e.StartDate.UTC(),
		Status:        string(e.Status),
		OrganizerID:   e.OrganizerID,
		PostID:        e.PostID,
		District:      e.District,
		Neighborhood:  e.Neighborhood,
		RequiredTools: e.RequiredTools,
		CreatedAt:     e.CreatedAt.UTC(),
		UpdatedAt:     e.UpdatedAt.UTC(),
	}

	if e.EndDate != nil {
		event.EndDate = sql.NullTime{Time: e.EndDate.UTC(), Valid: true}
	}

	if e.MaxAttendees != nil {
		event.MaxAttendees = sql.NullInt32{Int32: int32(*e.MaxAttendees), Valid: true}
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO event(id, title, description, start_date, end_date, status, max_attendees, organizer_id, post_id,
				district, neighborhood, required_tools, created_at, updated_at)
			VALUES(:id, :title, :description, :start_date, :end_date, :status, :max_attendees, :organizer_id, :post_id,
				:district, :neighborhood, :required_tools, :created_at, :updated_at)
		`, event,
	); err != nil {
		return translateError(err)
	}

	return nil
}

func (s pg) GetEvent(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	return s.getEvent(ctx, `SELECT `+eventColumns+` FROM event WHERE id = $1`, id)
}

// GetEventForUpdate locks event row until the end of transaction, so attendees could be changed safely.
func (s pg) GetEventForUpdate(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	return s.getEvent(ctx, `SELECT `+eventColumns+` FROM event WHERE id = $1 FOR UPDATE`, id)
}

func (s pg) getEvent(ctx context.Context, query string, id uuid.UUID) (*entities.Event, error) {
	var e eventDTO

	if err := sqlx.GetContext(ctx, s.ext, &e, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	var a []attendeeDTO
	if err := sqlx.SelectContext(ctx, s.ext, &a,
		`SELECT event_id, user_id, joined_at FROM event_attendee WHERE event_id = $1 ORDER BY joined_at, user_id`, id,
	); err != nil {
		return nil, fmt.Errorf("failed to query attendees: %w", err)
	}

	out := e.toEntity()
	for _, v := range a {
		out.Attendees = append(out.Attendees, entities.EventAttendee{
			EventID:  v.EventID,
			UserID:   v.UserID,
			JoinedAt: v.JoinedAt,
		})
	}

	return out, nil
}

func (s pg) ListEvents(ctx context.Context, postID uuid.UUID) ([]*entities.Event, error) {
	var dto []eventDTO

	if err := sqlx.SelectContext(ctx, s.ext, &dto,
		`SELECT `+eventColumns+` FROM event WHERE post_id = $1 ORDER BY start_date, id`, postID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	if len(dto) == 0 {
		return []*entities.Event{}, nil
	}

	out := make([]*entities.Event, len(dto))
	idx := make(map[uuid.UUID]*entities.Event, len(dto))
	ids := make([]uuid.UUID, len(dto))
	for i, v := range dto {
		out[i] = v.toEntity()
		idx[v.ID] = out[i]
		ids[i] = v.ID
	}

	query, args, err := sqlx.In(
		`SELECT event_id, user_id, joined_at FROM event_attendee WHERE event_id IN (?) ORDER BY joined_at, user_id`, ids,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var a []attendeeDTO
	if err := sqlx.SelectContext(ctx, s.ext, &a, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query attendees: %w", err)
	}

	for _, v := range a {
		e := idx[v.EventID]
		e.Attendees = append(e.Attendees, entities.EventAttendee{
			EventID:  v.EventID,
			UserID:   v.UserID,
			JoinedAt: v.JoinedAt,
		})
	}

	return out, nil
}

func (s pg) SetEventStatus(ctx context.Context, id uuid.UUID, status entities.EventStatus, timestamp time.Time) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE event SET status=$2, updated_at=$3 WHERE id=$1`,
		id, status, timestamp.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return checkAffected(res)
}

// AdvanceEvents moves started planned events to active and finished ones to completed in a single statement.
// Overdue planned events go straight to completed, so each event is counted once.
// Events without end date stay active until organizer completes them.
func (s pg) AdvanceEvents(ctx context.Context, now time.Time) (uint64, error) {
	var c uint64

	if err := sqlx.GetContext(ctx, s.ext, &c, `
		WITH started AS (
			UPDATE event SET status=$1, updated_at=$4
			WHERE status=$3 AND start_date <= $4 AND (end_date IS NULL OR end_date > $4)
			RETURNING id
		), finished AS (
			UPDATE event SET status=$2, updated_at=$4
			WHERE status IN ($1, $3) AND start_date <= $4 AND end_date IS NOT NULL AND end_date <= $4
			RETURNING id
		)
		SELECT (SELECT COUNT(*) FROM started) + (SELECT COUNT(*) FROM finished)
	`, entities.ActiveEventStatus, entities.CompletedEventStatus, entities.PlannedEventStatus, now.UTC()); err != nil {
		return 0, fmt.Errorf("failed to advance events: %w", err)
	}

	return c, nil
}

func (s pg) AddAttendee(ctx context.Context, eventID, userID uuid.UUID, timestamp time.Time) error {
	if _, err := s.ext.ExecContext(ctx,
		`INSERT INTO event_attendee(event_id, user_id, joined_at) VALUES($1, $2, $3)`,
		eventID, userID, timestamp.UTC(),
	); err != nil {
		return translateError(err)
	}

	return nil
}

func (s pg) RemoveAttendee(ctx context.Context, eventID, userID uuid.UUID) error {
	res, err := s.ext.ExecContext(ctx,
		`DELETE FROM event_attendee WHERE event_id=$1 AND user_id=$2`,
		eventID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return checkAffected(res)
}
