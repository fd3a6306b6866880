// Package report implements the campaign metrics pipeline: resolve the
// requested window, list the campaigns inside it, fetch per-campaign
// statistics and normalize everything into canonical records.
package report

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pulseworks/campaignpulse/internal/config"
	"github.com/pulseworks/campaignpulse/internal/metrics"
	"github.com/pulseworks/campaignpulse/internal/models"
	"github.com/pulseworks/campaignpulse/internal/timerange"
)

// CampaignLister lists the campaigns whose last update falls inside a window.
type CampaignLister interface {
	ListCampaigns(ctx context.Context, r timerange.Range) ([]models.RawCampaign, error)
}

// StatsProvider fetches aggregate statistics for one campaign over the
// resolved window. Implementations are pluggable; the pipeline never assumes
// a particular upstream endpoint, only that absence and failure both degrade
// to zeros. The range carries the explicit bounds a Custom selector cannot
// express as a timeframe key.
type StatsProvider interface {
	CampaignValues(ctx context.Context, campaignID string, sel timerange.Selector, r timerange.Range) (*models.CampaignStats, error)
}

// NoStats reports statistics as absent for every campaign; each record then
// carries identity fields with zero-valued metrics.
type NoStats struct{}

func (NoStats) CampaignValues(context.Context, string, timerange.Selector, timerange.Range) (*models.CampaignStats, error) {
	return nil, nil
}

// ErrMissingAPIKey means the upstream credential is not configured. Checked
// before any network call.
var ErrMissingAPIKey = errors.New("upstream API key not configured")

// ListError wraps a failed campaign-listing call. The whole batch fails:
// with no listing there is nothing to normalize.
type ListError struct {
	Err error
}

func (e *ListError) Error() string { return "campaign listing failed: " + e.Err.Error() }
func (e *ListError) Unwrap() error { return e.Err }

type Fetcher struct {
	lister CampaignLister
	stats  StatsProvider
	apiKey string
	limit  int
	log    *slog.Logger
	now    func() time.Time
}

func NewFetcher(lister CampaignLister, stats StatsProvider, cfg config.Config, log *slog.Logger) *Fetcher {
	limit := cfg.StatsConcurrency
	if limit < 1 {
		limit = 1
	}
	return &Fetcher{
		lister: lister,
		stats:  stats,
		apiKey: cfg.APIKey,
		limit:  limit,
		log:    log,
		now:    time.Now,
	}
}

// FetchCampaignMetrics runs the whole pipeline for a relative selector.
func (f *Fetcher) FetchCampaignMetrics(ctx context.Context, sel timerange.Selector) ([]models.CampaignMetrics, error) {
	r, err := timerange.Resolve(sel, f.now().UTC())
	if err != nil {
		return nil, err
	}
	return f.fetch(ctx, sel, r)
}

// FetchCampaignMetricsRange serves the custom selector with explicit bounds.
func (f *Fetcher) FetchCampaignMetricsRange(ctx context.Context, start, end time.Time) ([]models.CampaignMetrics, error) {
	r, err := timerange.ResolveCustom(start, end)
	if err != nil {
		return nil, err
	}
	return f.fetch(ctx, timerange.Custom, r)
}

func (f *Fetcher) fetch(ctx context.Context, sel timerange.Selector, r timerange.Range) ([]models.CampaignMetrics, error) {
	if f.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	campaigns, err := f.lister.ListCampaigns(ctx, r)
	if err != nil {
		return nil, &ListError{Err: err}
	}

	// Bounded fan-out. Each goroutine owns one slot, so the output keeps the
	// listing order regardless of completion order.
	out := make([]models.CampaignMetrics, len(campaigns))
	var g errgroup.Group
	g.SetLimit(f.limit)
	for i, c := range campaigns {
		i, c := i, c
		g.Go(func() error {
			stats, err := f.stats.CampaignValues(ctx, c.ID, sel, r)
			if err != nil {
				// Partial-failure policy: a visible zero-valued row beats a
				// silently dropped one. Never fails the batch.
				metrics.StatsFetchFailures.Inc()
				f.log.Warn("statistics fetch failed",
					slog.String("campaign_id", c.ID),
					slog.String("err", err.Error()))
				stats = nil
			}
			out[i] = Normalize(c, stats)
			return nil
		})
	}
	_ = g.Wait()

	metrics.ReportsServed.WithLabelValues(string(sel)).Inc()
	f.log.Info("report complete",
		slog.String("selector", string(sel)),
		slog.Int("campaigns", len(out)))
	return out, nil
}
