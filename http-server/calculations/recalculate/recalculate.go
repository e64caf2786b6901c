package recalculate

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"quote-calc/http-server/response"
	"quote-calc/internal/storage"
)

type Recalculator interface {
	Recalculate(ctx context.Context, id string) (*storage.Calculation, error)
}

func RecalculateCalculation(log *slog.Logger, calc Recalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculations.RecalculateCalculation"

		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		updated, err := calc.Recalculate(ctx, id)
		if err != nil {
			response.Error(w, log, op, err)
			return
		}

		log.Info("calculation recalculated", slog.String("id", id))

		render.JSON(w, r, updated)
	}
}
