package calculate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"quote-calc/http-server/response"
	"quote-calc/internal/service/calculation"
)

type ItemCalculator interface {
	CalculateItem(ctx context.Context, tab *calculation.Tab, item *calculation.Item) (*calculation.Results, error)
}

type Request struct {
	Tab  calculation.Tab  `json:"tab"`
	Item calculation.Item `json:"item"`
}

// CalculateItem prices one item without saving it. Items lacking the input of
// their mode answer 204.
func CalculateItem(log *slog.Logger, calc ItemCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculate.CalculateItem"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		results, err := calc.CalculateItem(ctx, &req.Tab, &req.Item)
		if err != nil {
			if errors.Is(err, calculation.ErrTriangleUnderdetermined) {
				http.Error(w, "At least two of thickness, density and surface weight must be locked", http.StatusUnprocessableEntity)
				return
			}
			response.Error(w, log, op, err)
			return
		}

		if results == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		render.JSON(w, r, results)
	}
}
