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

const selectUser = `SELECT id, email, name, phone, role, status, created_at, updated_at FROM "user"`

type userDTO struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	Phone     string    `db:"phone"`
	Role      string    `db:"role"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (u userDTO) toEntity() *entities.User {
	return &entities.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      entities.Role(u.Role),
		Status:    entities.UserStatus(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (s pg) CreateUser(ctx context.Context, u *entities.User) error {
	user := userDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO "user"(id, email, name, phone, role, status, created_at, updated_at)
			VALUES(:id, :email, :name, :phone, :role, :status, :created_at, :updated_at)
		`, user,
	); err != nil {
		return translateError(err)
	}

	return nil
}

func (s pg) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return s.getUser(ctx, selectUser+` WHERE id = $1`, id)
}

func (s pg) GetUserForUpdate(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return s.getUser(ctx, selectUser+` WHERE id = $1 FOR UPDATE`, id)
}

func (s pg) getUser(ctx context.Context, query string, id uuid.UUID) (*entities.User, error) {
	var u userDTO

	if err := sqlx.GetContext(ctx, s.ext, &u, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return u.toEntity(), nil
}

func (s pg) SetUserStanding(ctx context.Context, id uuid.UUID, role entities.Role, status entities.UserStatus,
	timestamp time.Time) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE "user" SET role=$2, status=$3, updated_at=$4 WHERE id=$1`,
		id, role, status, timestamp.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return checkAffected(res)
}
