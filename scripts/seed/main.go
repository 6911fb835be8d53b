package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/cleanup-hub/cleanup/internal/entities"
	"github.com/cleanup-hub/cleanup/internal/storage"
	"github.com/cleanup-hub/cleanup/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Fixture            string `long:"fixture" env:"FIXTURE" default:"scripts/seed/fixture.json" description:"path to fixture"`
	Postgres           string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMigrations string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`
}{}

type fixture struct {
	Users []user `json:"users" validate:"dive"`
	Posts []post `json:"posts" validate:"dive"`
}

type user struct {
	ID    uuid.UUID     `json:"id" validate:"required"`
	Email string        `json:"email" validate:"required,email"`
	Name  string        `json:"name" validate:"required"`
	Phone string        `json:"phone"`
	Role  entities.Role `json:"role" validate:"required,oneof=USER MODERATOR ADMIN"`
}

type post struct {
	ID           uuid.UUID           `json:"id" validate:"required"`
	Title        string              `json:"title" validate:"required"`
	Description  string              `json:"description" validate:"required"`
	Photos       []string            `json:"photos" validate:"dive,url"`
	AuthorID     uuid.UUID           `json:"author_id" validate:"required"`
	District     string              `json:"district"`
	Neighborhood string              `json:"neighborhood"`
	Status       entities.PostStatus `json:"status" validate:"required,oneof=DRAFT PUBLISHED UNDER_REVIEW COMPLETED ARCHIVED"`
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "seed"
	parser.LongDescription = "Fixture to database importer"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	logrus.Info("seed started")
	logrus.Infof("%+v", opts)

	b, err := os.ReadFile(opts.Fixture)
	if err != nil {
		logrus.WithError(err).Fatal("failed to read fixture")
	}

	var f fixture

	if err := json.Unmarshal(b, &f); err != nil {
		logrus.WithError(err).Fatal("failed to unmarshal fixture")
	}

	if err := validator.New().Struct(f); err != nil {
		logrus.WithError(err).Fatal("invalid fixture")
	}

	db := mustGetDB()
	s := postgres.New(db)

	t := time.Now().UTC()

	// rows are inserted one by one so a rerun skips already imported ones
	if err := importFixture(context.Background(), s, &f, t); err != nil {
		logrus.WithError(err).Fatal("failed to import fixture")
	}

	logrus.Info("done")
}

func importFixture(ctx context.Context, s storage.Storage, f *fixture, t time.Time) error {
	logrus.Info("import users")
	for i, v := range f.Users {
		if err := s.CreateUser(ctx, &entities.User{
			ID:        v.ID,
			Email:     v.Email,
			Name:      v.Name,
			Phone:     v.Phone,
			Role:      v.Role,
			Status:    entities.ActiveUserStatus,
			CreatedAt: t,
			UpdatedAt: t,
		}); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				logrus.WithField("id", v.ID).Warn("user already exists")
				continue
			}
			return fmt.Errorf("failed to put user into db: %w", err)
		}

		if i%20 == 0 {
			logrus.Infof("%d of %d users imported", i+1, len(f.Users))
		}
	}

	logrus.Info("import posts")
	for i, v := range f.Posts {
		photos := v.Photos
		if photos == nil {
			photos = []string{}
		}

		if err := s.CreatePost(ctx, &entities.Post{
			ID:           v.ID,
			Title:        v.Title,
			Description:  v.Description,
			Photos:       photos,
			AuthorID:     v.AuthorID,
			District:     v.District,
			Neighborhood: v.Neighborhood,
			Status:       v.Status,
			CreatedAt:    t,
			UpdatedAt:    t,
		}); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				logrus.WithField("id", v.ID).Warn("post already exists")
				continue
			}
			return fmt.Errorf("failed to put post into db: %w", err)
		}

		if i%20 == 0 {
			logrus.Infof("%d of %d posts imported", i+1, len(f.Posts))
		}
	}

	return nil
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch err := migrator.Up(); {
	case err == nil:
		logrus.Info("database was migrated")
	case errors.Is(err, migrate.ErrNoChange):
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
