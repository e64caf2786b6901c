package export

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"quote-calc/http-server/response"
)

type ExcelGenerator interface {
	GenerateExcel(ctx context.Context, id string) ([]byte, string, error)
}

func ExportExcel(log *slog.Logger, gen ExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculations.ExportExcel"

		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		data, fileName, err := gen.GenerateExcel(ctx, id)
		if err != nil {
			response.Error(w, log, op, err)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
		w.Write(data)
	}
}
