package response

import (
	"errors"
	"log/slog"
	"net/http"

	"quote-calc/internal/storage"
)

// Error writes the status matching err. Internal error text never reaches the
// client; server side failures are logged with op.
func Error(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		log.Warn("not found", slog.String("op", op), slog.String("error", err.Error()))
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrExists):
		log.Warn("already exists", slog.String("op", op), slog.String("error", err.Error()))
		http.Error(w, "Already exists", http.StatusConflict)
	default:
		log.Error("request failed", slog.String("op", op), slog.String("error", err.Error()))
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}
