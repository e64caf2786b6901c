package quote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"quote-calc/internal/service/calculation"
	"quote-calc/internal/storage"
)

type QuoteStorage interface {
	GetCalculation(ctx context.Context, id string) (*storage.Calculation, error)
	UpdateCalculation(ctx context.Context, c *storage.Calculation) error
	GetPackagingCompositions(ctx context.Context) ([]calculation.PackagingComposition, error)
	GetMaterials(ctx context.Context) ([]calculation.Material, error)
	GetSettings(ctx context.Context) (*storage.Settings, error)
}

type QuoteService struct {
	log        *slog.Logger
	storage    QuoteStorage
	defaultSGA float64
	now        func() time.Time
}

func NewQuoteService(log *slog.Logger, storage QuoteStorage, defaultSGA float64) *QuoteService {
	return &QuoteService{
		log:        log,
		storage:    storage,
		defaultSGA: defaultSGA,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// pricing is everything a tab is priced against besides its own config.
type pricing struct {
	catalog calculation.Catalog
	sga     float64
}

// loadPricing schedules the catalog and settings fetches on g.
func (s *QuoteService) loadPricing(ctx context.Context, g *errgroup.Group, p *pricing) {
	g.Go(func() error {
		packaging, err := s.storage.GetPackagingCompositions(ctx)
		if err != nil {
			return fmt.Errorf("packaging: %w", err)
		}
		p.catalog.Packaging = packaging
		return nil
	})
	g.Go(func() error {
		materials, err := s.storage.GetMaterials(ctx)
		if err != nil {
			return fmt.Errorf("materials: %w", err)
		}
		p.catalog.Materials = materials
		return nil
	})
	g.Go(func() error {
		settings, err := s.storage.GetSettings(ctx)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			p.sga = s.defaultSGA
		case err != nil:
			return fmt.Errorf("settings: %w", err)
		default:
			p.sga = settings.SGA
		}
		return nil
	})
}

// Recalculate prices every item of every tab of the saved calculation id,
// stores the results on the items and persists the document.
func (s *QuoteService) Recalculate(ctx context.Context, id string) (*storage.Calculation, error) {
	const op = "service.quote.Recalculate"
	log := s.log.With(slog.String("op", op), slog.String("calculation_id", id))

	var (
		calc *storage.Calculation
		p    pricing
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		calc, err = s.storage.GetCalculation(gCtx, id)
		if err != nil {
			return fmt.Errorf("load calculation: %w", err)
		}
		return nil
	})
	s.loadPricing(gCtx, g, &p)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range calc.Tabs {
		tab := &calc.Tabs[i]
		out := calculation.RecalculateTab(tab, p.catalog, p.sga)

		log.Debug("tab recalculated",
			slog.String("tab_id", tab.ID),
			slog.String("mode", string(tab.Mode)),
			slog.Int("computed", out.Computed),
			slog.Int("pending", out.Pending),
		)
		if len(out.Invalid) > 0 {
			log.Warn("items with underdetermined surface triangle",
				slog.String("tab_id", tab.ID),
				slog.Any("parts", out.Invalid),
			)
		}
	}

	calc.UpdatedAt = s.now()
	if err := s.storage.UpdateCalculation(ctx, calc); err != nil {
		return nil, fmt.Errorf("save calculation: %w", err)
	}

	return calc, nil
}

// CalculateItem prices a single item of tab against the stored catalog without
// persisting anything.
func (s *QuoteService) CalculateItem(ctx context.Context, tab *calculation.Tab, item *calculation.Item) (*calculation.Results, error) {
	var p pricing

	g, gCtx := errgroup.WithContext(ctx)
	s.loadPricing(gCtx, g, &p)
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return calculation.Calculate(tab, item, p.catalog, tab.EffectiveSGA(p.sga))
}

// Summary loads the calculation id and aggregates its cached results.
func (s *QuoteService) Summary(ctx context.Context, id string) (*Summary, error) {
	calc, err := s.storage.GetCalculation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load calculation: %w", err)
	}

	sum := Summarize(calc)
	return &sum, nil
}
