package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"quote-calc/http-server/response"
	"quote-calc/internal/service/quote"
	"quote-calc/internal/storage"
)

type CalculationsGetter interface {
	GetCalculations(ctx context.Context) ([]storage.CalculationHeader, error)
	GetCalculation(ctx context.Context, id string) (*storage.Calculation, error)
}

type SummaryProvider interface {
	Summary(ctx context.Context, id string) (*quote.Summary, error)
}

func GetCalculations(log *slog.Logger, calcs CalculationsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculations.GetCalculations"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		headers, err := calcs.GetCalculations(ctx)
		if err != nil {
			response.Error(w, log, op, err)
			return
		}

		render.JSON(w, r, headers)
	}
}

func GetCalculation(log *slog.Logger, calcs CalculationsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculations.GetCalculation"

		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		calc, err := calcs.GetCalculation(ctx, id)
		if err != nil {
			response.Error(w, log, op, err)
			return
		}

		render.JSON(w, r, calc)
	}
}

// GetSummary answers revenue and profit per tab and for the whole calculation.
func GetSummary(log *slog.Logger, summaries SummaryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculations.GetSummary"

		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		sum, err := summaries.Summary(ctx, id)
		if err != nil {
			response.Error(w, log, op, err)
			return
		}

		render.JSON(w, r, sum)
	}
}
