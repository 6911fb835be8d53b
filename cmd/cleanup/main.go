package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Decentr-net/logrus/sentry"
	"github.com/davecgh/go-spew/spew"
	"github.com/go-chi/chi"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cleanup-hub/cleanup/internal/health"
	mm "github.com/cleanup-hub/cleanup/internal/middleware"
	"github.com/cleanup-hub/cleanup/internal/notifier"
	rn "github.com/cleanup-hub/cleanup/internal/notifier/redis"
	"github.com/cleanup-hub/cleanup/internal/server"
	"github.com/cleanup-hub/cleanup/internal/service/impl"
	"github.com/cleanup-hub/cleanup/internal/storage/postgres"
	"github.com/cleanup-hub/cleanup/internal/worker/lifecycle"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections"`
	RequestTimeout time.Duration `long:"http.request-timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"request processing timeout"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	Redis        string `long:"redis" env:"REDIS" description:"redis url, e.g. redis://localhost:6379/0; notifications are logged and responses aren't cached when empty"`
	RedisChannel string `long:"redis.channel" env:"REDIS_CHANNEL" default:"moderation.author-notified" description:"channel for author notifications"`

	JWTSecret string `long:"jwt.secret" env:"JWT_SECRET" required:"true" description:"HMAC secret of access tokens"`

	// go-flags bool options could not default to true, so it's a string choice.
	ModerationShowArchived string `long:"moderation.show-archived" env:"MODERATION_SHOW_ARCHIVED" default:"true" choice:"true" choice:"false" description:"show hidden posts to moderators"`

	WorkerInterval time.Duration `long:"worker.interval" env:"WORKER_INTERVAL" default:"1m" description:"interval of events lifecycle worker"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Cleanup"
	parser.LongDescription = "Community cleanup reports, events and moderation"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	if lvl >= logrus.DebugLevel {
		cfg := opts
		cfg.JWTSecret = "***"
		logrus.Debug(spew.Sdump(cfg))
	}

	if opts.SentryDSN != "" {
		hook, err := sentry.NewHook(sentry.Options{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          health.GetVersion(),
			ServerName:       "cleanup",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	db := mustGetDB()
	s := postgres.New(db)

	pingers := []health.Pinger{health.SubjectPinger("postgres", s.Ping)}

	var (
		n     notifier.Notifier
		cache mm.Storage
	)

	if opts.Redis != "" {
		rc := mustGetRedis()
		defer rc.Close() // nolint:errcheck

		n = rn.New(rc, opts.RedisChannel)
		cache = mm.NewRedisStorage(rc)
		pingers = append(pingers, health.SubjectPinger("redis", func(ctx context.Context) error {
			return rc.Ping(ctx).Err()
		}))
	} else {
		logrus.Warn("empty redis url, notifications will be logged only")
		n = notifier.NewLogNotifier()
	}

	svc := impl.New(s, n, impl.WithArchivedVisibleToModerators(opts.ModerationShowArchived == "true"))
	w := lifecycle.New(svc, opts.WorkerInterval)

	r := chi.NewMux()
	server.SetupRouter(svc, r, server.Config{
		Timeout: opts.RequestTimeout,
		Secret:  []byte(opts.JWTSecret),
		Cache:   cache,
		Pingers: append(pingers, w),
	})

	srv := http.Server{
		Addr:              fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gr, _ := errgroup.WithContext(ctx)
	gr.Go(func() error {
		return w.Run(ctx)
	})
	gr.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		s := <-sigs

		logrus.Infof("terminating by %s signal", s)

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), opts.RequestTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown server gracefully")
		}

		return errTerminated
	})

	logrus.Info("service started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

func mustGetRedis() redis.UniversalClient {
	o, err := redis.ParseURL(opts.Redis)
	if err != nil {
		logrus.WithError(err).Fatal("failed to parse redis url")
	}

	c := redis.NewClient(o)
	if err := c.Ping(context.Background()).Err(); err != nil {
		logrus.WithError(err).Fatal("failed to ping redis")
	}

	return c
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

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

	switch v, d, err := migrator.Version(); {
	case err == nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case errors.Is(err, migrate.ErrNilVersion):
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
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
