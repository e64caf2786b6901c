package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"quote-calc/http-server/response"
	"quote-calc/internal/service/calculation"
	"quote-calc/internal/storage"
)

type CalculationCreator interface {
	CreateCalculation(ctx context.Context, c *storage.Calculation) error
}

type Request struct {
	Name     string            `json:"name"`
	ClientID *string           `json:"clientId"`
	Tabs     []calculation.Tab `json:"tabs"`
}

// SaveCalculation stores a new calculation. The calculation, its tabs, items,
// custom processes and curves get fresh ids where the client sent none.
func SaveCalculation(log *slog.Logger, creator CalculationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculations.SaveCalculation"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			http.Error(w, "Missing required field 'name'", http.StatusBadRequest)
			return
		}

		if req.Tabs == nil {
			req.Tabs = []calculation.Tab{}
		}

		now := time.Now().UTC()
		calc := &storage.Calculation{
			Name:      req.Name,
			ClientID:  storage.NormalizeClientID(req.ClientID),
			Tabs:      req.Tabs,
			CreatedAt: now,
			UpdatedAt: now,
		}
		calc.AssignIDs(uuid.NewString)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := creator.CreateCalculation(ctx, calc); err != nil {
			response.Error(w, log, op, err)
			return
		}

		log.Info("calculation created", slog.String("id", calc.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, calc)
	}
}
