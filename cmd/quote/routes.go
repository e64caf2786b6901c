package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"quote-calc/http-server/calculate"
	"quote-calc/http-server/calculations/export"
	getcalc "quote-calc/http-server/calculations/get"
	"quote-calc/http-server/calculations/recalculate"
	savecalc "quote-calc/http-server/calculations/save"
	upcalc "quote-calc/http-server/calculations/update"
	getcatalog "quote-calc/http-server/catalog/get"
	savecatalog "quote-calc/http-server/catalog/save"
	upcatalog "quote-calc/http-server/catalog/update"
	getclients "quote-calc/http-server/clients/get"
	saveclients "quote-calc/http-server/clients/save"
	upclients "quote-calc/http-server/clients/update"
	getsettings "quote-calc/http-server/settings/get"
	upsettings "quote-calc/http-server/settings/update"
	"quote-calc/internal/config"
	"quote-calc/internal/middleware/auth"
	"quote-calc/internal/service/quote"
	"quote-calc/internal/service/report"
	"quote-calc/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, quoteService *quote.QuoteService, reportService *report.ReportService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	// stateless pricing of one item
	router.Post("/api/calculate", calculate.CalculateItem(log, quoteService))

	router.Route("/api/calculations", func(r chi.Router) {
		r.Get("/", getcalc.GetCalculations(log, storage))
		r.Post("/", savecalc.SaveCalculation(log, storage))

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", getcalc.GetCalculation(log, storage))
			r.Put("/", upcalc.UpdateCalculation(log, storage))
			r.Delete("/", upcalc.DeleteCalculation(log, storage))

			r.Put("/tabs/{tabId}", upcalc.UpdateTab(log, storage))
			r.Post("/tabs/{tabId}/mode", upcalc.SwitchTabMode(log, storage))

			r.Post("/recalculate", recalculate.RecalculateCalculation(log, quoteService))
			r.Get("/summary", getcalc.GetSummary(log, quoteService))
			r.Get("/export.xlsx", export.ExportExcel(log, reportService))
		})
	})

	router.Route("/api/clients", func(r chi.Router) {
		r.Get("/", getclients.GetClients(log, storage))
		r.Post("/", saveclients.SaveClient(log, storage))
		r.Get("/{id}", getclients.GetClient(log, storage))
		r.Put("/{id}", upclients.UpdateClient(log, storage))
		r.Delete("/{id}", upclients.DeleteClient(log, storage))
	})

	// the calculator reads the catalog, the admin panel edits it
	router.Get("/api/materials", getcatalog.GetMaterials(log, storage))
	router.Get("/api/packaging", getcatalog.GetPackagingCompositions(log, storage))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(log, cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Post("/materials", savecatalog.SaveMaterial(log, storage))
	adminRouter.Put("/materials/{id}", upcatalog.UpdateMaterial(log, storage))
	adminRouter.Delete("/materials/{id}", upcatalog.DeleteMaterial(log, storage))
	adminRouter.Post("/packaging", savecatalog.SavePackagingComposition(log, storage))
	adminRouter.Put("/packaging/{id}", upcatalog.UpdatePackagingComposition(log, storage))
	adminRouter.Delete("/packaging/{id}", upcatalog.DeletePackagingComposition(log, storage))
	adminRouter.Get("/settings", getsettings.GetSettings(log, storage))
	adminRouter.Put("/settings", upsettings.UpdateSettings(log, storage))

	router.Mount("/api/admin", adminRouter)

	return router
}
