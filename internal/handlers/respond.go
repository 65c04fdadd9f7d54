// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/renewcart/buyback-be/internal/pkg/apperror"
)

// envelope is the uniform response body: data carries the payload on
// success and is null on failure, message is human-readable, status echoes
// the HTTP status code.
type envelope struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
}

func respondJSON(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{
		Data:    data,
		Message: message,
		Status:  status,
	})
}

// respondError maps an error through the application taxonomy. Internal
// causes are logged but never sent to the client.
func respondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	appErr := apperror.FromError(err)

	if appErr.Kind == apperror.KindInternal {
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", appErr.Error()),
		)
	}

	respondJSON(w, appErr.Status(), appErr.Message, nil)
}

func parseUUIDField(value, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, apperror.BadRequest("invalid %s", field)
	}
	return id, nil
}

func decodeJSON(r *http.Request, dest interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return apperror.BadRequest("invalid request body")
	}
	return nil
}
