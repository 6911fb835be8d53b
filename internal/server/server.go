// Package server Cleanup
//
// The Cleanup is a community service where residents report places which need cleanup,
// organize cleanup events and moderate reported content.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
//     SecurityDefinitions:
//       bearer:
//         type: apiKey
//         name: Authorization
//         in: header
//
// swagger:meta
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cleanup-hub/cleanup/internal/api"
	"github.com/cleanup-hub/cleanup/internal/health"
	mm "github.com/cleanup-hub/cleanup/internal/middleware"
	"github.com/cleanup-hub/cleanup/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const (
	maxBodySize   = 16 * 1024
	statsCacheTTL = time.Minute
	healthTimeout = 5 * time.Second
)

type server struct {
	s service.Service
	v *validator.Validate
}

// Config ...
type Config struct {
	Timeout time.Duration
	// Secret is HMAC key of access tokens.
	Secret []byte
	// Cache is used for cached endpoints, nil disables caching.
	Cache   mm.Storage
	Pingers []health.Pinger
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, c Config) {
	r.Use(
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.RequestID,
		mm.Logger,
		mm.Metrics,
		middleware.Recoverer,
		middleware.Timeout(c.Timeout),
		mm.BodyLimiter(maxBodySize),
	)

	srv := server{
		s: s,
		v: newValidator(),
	}

	r.Get("/health", health.Handler(healthTimeout, c.Pingers...))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(mm.Authenticator(c.Secret))

		r.Get("/stats", mm.Cached(c.Cache, statsCacheTTL, srv.getStats))

		r.Route("/posts", func(r chi.Router) {
			r.Post("/", srv.createPost)
			r.Get("/", srv.listPosts)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", srv.getPost)
				r.Put("/status", srv.updatePostStatus)
				r.Post("/complete", srv.completePost)

				r.Post("/flags", srv.flagPost)
				r.Get("/flags", srv.listFlags)

				r.Put("/interest", srv.expressInterest)
				r.Delete("/interest", srv.withdrawInterest)
				r.Get("/interested", srv.listInterestedUsers)

				r.Post("/events", srv.createEvent)
				r.Get("/events", srv.listEvents)
			})
		})

		r.Route("/events/{id}", func(r chi.Router) {
			r.Get("/", srv.getEvent)
			r.Post("/attendees", srv.joinEvent)
			r.Delete("/attendees", srv.leaveEvent)
			r.Put("/status", srv.updateEventStatus)
		})

		r.Route("/moderation", func(r chi.Router) {
			r.Get("/posts", srv.listFlaggedPosts)
			r.Post("/posts/{id}", srv.moderate)
			r.Get("/actions", srv.listModerationActions)
		})

		r.Route("/users/{id}", func(r chi.Router) {
			r.Get("/", srv.getUser)
			r.Post("/sanctions", srv.applySanction)
		})
	})
}

// decode reads and validates request body.
func (s server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := s.v.Struct(v); err != nil {
		api.WriteError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}

	return true
}

// writeServiceError maps service error kinds to status codes. Unknown errors are internal.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		api.WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		api.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		api.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidDate):
		api.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrFull):
		api.WriteError(w, http.StatusConflict, "event is full")
	case errors.Is(err, service.ErrInvalidState), errors.Is(err, service.ErrConflict):
		api.WriteError(w, http.StatusConflict, err.Error())
	default:
		api.WriteInternalErrorf(r.Context(), w, "%s", err.Error())
	}
}
