package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"quote-calc/http-server/response"
	"quote-calc/internal/service/calculation"
	"quote-calc/internal/storage"
)

type CalculationUpdater interface {
	GetCalculation(ctx context.Context, id string) (*storage.Calculation, error)
	UpdateCalculation(ctx context.Context, c *storage.Calculation) error
	DeleteCalculation(ctx context.Context, id string) error
}

type Request struct {
	Name     string            `json:"name"`
	ClientID *string           `json:"clientId"`
	Tabs     []calculation.Tab `json:"tabs"`
}

type ModeRequest struct {
	Mode calculation.Mode `json:"calculationType"`
}

const modeConflict = "Tab items hold data of the current calculation type, repeat with confirm=true to reset them"

func UpdateCalculation(log *slog.Logger, calcs CalculationUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculations.UpdateCalculation"

		id := chi.URLParam(r, "id")

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

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		calc, err := calcs.GetCalculation(ctx, id)
		if err != nil {
			response.Error(w, log, op, err)
			return
		}

		calc.Name = req.Name
		calc.ClientID = storage.NormalizeClientID(req.ClientID)
		if req.Tabs != nil {
			calc.Tabs = req.Tabs
		}
		calc.AssignIDs(uuid.NewString)
		calc.UpdatedAt = time.Now().UTC()

		if err := calcs.UpdateCalculation(ctx, calc); err != nil {
			response.Error(w, log, op, err)
			return
		}

		log.Info("calculation updated", slog.String("id", id))

		render.JSON(w, r, calc)
	}
}

// UpdateTab replaces one tab. Changing its calculation type while the stored
// items hold data needs ?confirm=true, and the submitted items are then reset
// for the new type.
func UpdateTab(log *slog.Logger, calcs CalculationUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculations.UpdateTab"

		id := chi.URLParam(r, "id")
		tabID := chi.URLParam(r, "tabId")
		confirm, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

		var next calculation.Tab
		if err := json.NewDecoder(r.Body).Decode(&next); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		calc, err := calcs.GetCalculation(ctx, id)
		if err != nil {
			response.Error(w, log, op, err)
			return
		}

		cur, ok := calc.Tab(tabID)
		if !ok {
			http.Error(w, "Tab not found", http.StatusNotFound)
			return
		}

		next.ID = tabID
		next.Mode = next.Mode.Normalize()
		if next.Mode != cur.Mode.Normalize() && cur.HasModeData() {
			if !confirm {
				http.Error(w, modeConflict, http.StatusConflict)
				return
			}
			for i := range next.Items {
				next.Items[i].ResetForMode(next.Mode)
			}
			log.Info("tab calculation type changed",
				slog.String("id", id),
				slog.String("tab_id", tabID),
				slog.String("from", string(cur.Mode)),
				slog.String("to", string(next.Mode)),
			)
		}

		*cur = next
		storage.AssignTabIDs(cur, uuid.NewString)
		calc.UpdatedAt = time.Now().UTC()

		if err := calcs.UpdateCalculation(ctx, calc); err != nil {
			response.Error(w, log, op, err)
			return
		}

		render.JSON(w, r, cur)
	}
}

// SwitchTabMode changes the calculation type of a stored tab, resetting its
// items when confirmed.
func SwitchTabMode(log *slog.Logger, calcs CalculationUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculations.SwitchTabMode"

		id := chi.URLParam(r, "id")
		tabID := chi.URLParam(r, "tabId")
		confirm, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

		var req ModeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if !req.Mode.Valid() {
			http.Error(w, "Unknown calculation type", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		calc, err := calcs.GetCalculation(ctx, id)
		if err != nil {
			response.Error(w, log, op, err)
			return
		}

		tab, ok := calc.Tab(tabID)
		if !ok {
			http.Error(w, "Tab not found", http.StatusNotFound)
			return
		}

		if !tab.SwitchMode(req.Mode, confirm) {
			http.Error(w, modeConflict, http.StatusConflict)
			return
		}
		calc.UpdatedAt = time.Now().UTC()

		if err := calcs.UpdateCalculation(ctx, calc); err != nil {
			response.Error(w, log, op, err)
			return
		}

		render.JSON(w, r, tab)
	}
}

func DeleteCalculation(log *slog.Logger, calcs CalculationUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculations.DeleteCalculation"

		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := calcs.DeleteCalculation(ctx, id); err != nil {
			response.Error(w, log, op, err)
			return
		}

		log.Info("calculation deleted", slog.String("id", id))

		w.WriteHeader(http.StatusNoContent)
	}
}
