package get

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

type ClientsGetter interface {
	GetClients(ctx context.Context) ([]storage.Client, error)
	GetClient(ctx context.Context, id string) (*storage.Client, error)
}

func GetClients(log *slog.Logger, clients ClientsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.clients.GetClients"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		all, err := clients.GetClients(ctx)
		if err != nil {
			response.Error(w, log, op, err)
			return
		}

		render.JSON(w, r, all)
	}
}

func GetClient(log *slog.Logger, clients ClientsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.clients.GetClient"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		client, err := clients.GetClient(ctx, chi.URLParam(r, "id"))
		if err != nil {
			response.Error(w, log, op, err)
			return
		}

		render.JSON(w, r, client)
	}
}
