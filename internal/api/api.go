// Package api contains helpers for writing JSON responses.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("layer", "api").WithField("package", "api")

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// WriteOK writes v as JSON with the status code.
func WriteOK(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// WriteError writes Error with the message.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteOK(w, status, Error{Error: message})
}

// WriteInternalErrorf logs the error with request id and responds 500 without details.
func WriteInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	log.WithField("request_id", middleware.GetReqID(ctx)).Errorf(format, args...)

	WriteError(w, http.StatusInternalServerError, "internal error")
}

// Errorf is a shortcut for WriteError with formatted message.
func Errorf(w http.ResponseWriter, status int, format string, args ...interface{}) {
	WriteError(w, status, fmt.Sprintf(format, args...))
}
