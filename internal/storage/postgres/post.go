package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"github.com/cleanup-hub/cleanup/internal/entities"
	"github.com/cleanup-hub/cleanup/internal/storage"
)

const postColumns = `id, title, description, photos, author_id, district, neighborhood, status, created_at, updated_at`

type postDTO struct {
	ID           uuid.UUID      `db:"id"`
	Title        string         `db:"title"`
	Description  string         `db:"description"`
	Photos       types.JSONText `db:"photos"`
	AuthorID     uuid.UUID      `db:"author_id"`
	District     string         `db:"district"`
	Neighborhood string         `db:"neighborhood"`
	Status       string         `db:"status"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type flaggedPostDTO struct {
	postDTO
	FlagsCount uint64    `db:"flags_count"`
	LastFlagAt time.Time `db:"last_flag_at"`
}

func (p postDTO) toEntity() (*entities.Post, error) {
	photos := []string{}
	if len(p.Photos) > 0 {
		if err := p.Photos.Unmarshal(&photos); err != nil {
			return nil, fmt.Errorf("failed to decode photos of post %s: %w", p.ID, err)
		}
	}

	return &entities.Post{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Photos:       photos,
		AuthorID:     p.AuthorID,
		District:     p.District,
		Neighborhood: p.Neighborhood,
		Status:       entities.PostStatus(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}, nil
}

func encodePhotos(photos []string) (types.JSONText, error) {
	if photos == nil {
		photos = []string{}
	}

	b, err := json.Marshal(photos)
	if err != nil {
		return nil, fmt.Errorf("failed to encode photos: %w", err)
	}

	return b, nil
}

func (s pg) CreatePost(ctx context.Context, p *entities.Post) error {
	photos, err := encodePhotos(p.Photos)
	if err != nil {
		return err
	}

	post := postDTO{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Photos:       photos,
		AuthorID:     p.AuthorID,
		District:     p.District,
		Neighborhood: p.Neighborhood,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt.UTC(),
		UpdatedAt:    p.UpdatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO post(id, title, description, photos, author_id, district, neighborhood, status, created_at, updated_at)
			VALUES(:id, :title, :description, :photos, :author_id, :district, :neighborhood, :status, :created_at, :updated_at)
		`, post,
	); err != nil {
		return translateError(err)
	}

	return nil
}

func (s pg) GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	return s.getPost(ctx, `SELECT `+postColumns+` FROM post WHERE id = $1`, id)
}

func (s pg) GetPostForUpdate(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	return s.getPost(ctx, `SELECT `+postColumns+` FROM post WHERE id = $1 FOR UPDATE`, id)
}

func (s pg) getPost(ctx context.Context, query string, id uuid.UUID) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return p.toEntity()
}

// nolint: gocyclo
func (s pg) ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.Post, error) {
	var (
		where []string
		args  []interface{}
	)

	if p.Query != nil && *p.Query != "" {
		q := "%" + likeEscaper.Replace(*p.Query) + "%"
		where = append(where, `(title ILIKE ? OR description ILIKE ?)`)
		args = append(args, q, q)
	}

	if p.District != nil {
		where = append(where, `district = ?`)
		args = append(args, *p.District)
	}

	if p.Neighborhood != nil {
		where = append(where, `neighborhood = ?`)
		args = append(args, *p.Neighborhood)
	}

	if p.Author != nil {
		where = append(where, `author_id = ?`)
		args = append(args, *p.Author)
	}

	if len(p.Statuses) > 0 {
		where = append(where, `status IN (?)`)
		args = append(args, p.Statuses)
	}

	order := orderOf(p.OrderBy)

	if p.After != nil {
		cmp := "<"
		if order == "ASC" {
			cmp = ">"
		}
		where = append(where, fmt.Sprintf(`(created_at, id) %s (SELECT created_at, id FROM post WHERE id = ?)`, cmp))
		args = append(args, *p.After)
	}

	query := `SELECT ` + postColumns + ` FROM post`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(` ORDER BY created_at %s, id %s LIMIT %d`, order, order, p.Limit)

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var dto []postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &dto, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(dto))
	for i, v := range dto {
		post, err := v.toEntity()
		if err != nil {
			return nil, err
		}
		out[i] = post
	}

	return out, nil
}

func (s pg) SetPostStatus(ctx context.Context, id uuid.UUID, status entities.PostStatus, timestamp time.Time) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE post SET status=$2, updated_at=$3 WHERE id=$1`,
		id, status, timestamp.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return checkAffected(res)
}

func (s pg) SetPostPhotos(ctx context.Context, id uuid.UUID, photos []string, timestamp time.Time) error {
	b, err := encodePhotos(photos)
	if err != nil {
		return err
	}

	res, err := s.ext.ExecContext(ctx,
		`UPDATE post SET photos=$2, updated_at=$3 WHERE id=$1`,
		id, b, timestamp.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return checkAffected(res)
}

// DeletePost removes post. Flags, events, attendees and interests are removed by cascade,
// moderation actions lose the post reference.
func (s pg) DeletePost(ctx context.Context, id uuid.UUID) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM post WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return checkAffected(res)
}

func (s pg) ListFlaggedPosts(ctx context.Context, p *storage.ListFlaggedPostsParams) ([]*storage.FlaggedPost, error) {
	var dto []flaggedPostDTO

	if err := sqlx.SelectContext(ctx, s.ext, &dto, `
			SELECT p.id, p.title, p.description, p.photos, p.author_id, p.district, p.neighborhood, p.status,
				p.created_at, p.updated_at, COUNT(f.id) AS flags_count, MAX(f.created_at) AS last_flag_at
			FROM post p
			JOIN flag f ON f.post_id = p.id
			WHERE f.status = $1
			GROUP BY p.id
			ORDER BY flags_count DESC, last_flag_at DESC
			LIMIT $2 OFFSET $3
		`, p.FlagStatus, p.Limit, p.Offset,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*storage.FlaggedPost, len(dto))
	for i, v := range dto {
		post, err := v.toEntity()
		if err != nil {
			return nil, err
		}

		out[i] = &storage.FlaggedPost{
			Post:       *post,
			FlagsCount: v.FlagsCount,
			LastFlagAt: v.LastFlagAt,
		}
	}

	return out, nil
}

func (s pg) GetStats(ctx context.Context) (*entities.Stats, error) {
	var rows []struct {
		Status string `db:"status"`
		Count  uint64 `db:"count"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &rows, `SELECT status, COUNT(*) AS count FROM post GROUP BY status`); err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	out := entities.Stats{
		Posts: make(map[entities.PostStatus]uint64, len(rows)),
	}

	for _, v := range rows {
		out.Posts[entities.PostStatus(v.Status)] = v.Count
	}

	if err := sqlx.GetContext(ctx, s.ext, &out.PlannedEvents,
		`SELECT COUNT(*) FROM event WHERE status = $1`, entities.PlannedEventStatus,
	); err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}

	if err := sqlx.GetContext(ctx, s.ext, &out.Volunteers, `SELECT COUNT(DISTINCT user_id) FROM event_attendee`); err != nil {
		return nil, fmt.Errorf("failed to query volunteers: %w", err)
	}

	return &out, nil
}
