package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseworks/campaignpulse/internal/config"
	"github.com/pulseworks/campaignpulse/internal/models"
	"github.com/pulseworks/campaignpulse/internal/report"
	"github.com/pulseworks/campaignpulse/internal/timerange"
)

type stubLister struct {
	campaigns []models.RawCampaign
	err       error
}

func (s *stubLister) ListCampaigns(context.Context, timerange.Range) ([]models.RawCampaign, error) {
	return s.campaigns, s.err
}

type stubStats struct {
	byID map[string]*models.CampaignStats
}

func (s *stubStats) CampaignValues(_ context.Context, id string, _ timerange.Selector, _ timerange.Range) (*models.CampaignStats, error) {
	return s.byID[id], nil
}

func fp(v float64) *float64 { return &v }

func testRouter(lister *stubLister, stats *stubStats) http.Handler {
	cfg := config.Config{APIKey: "pk_test", StatsConcurrency: 2, CORSOrigins: []string{"*"}}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := report.NewFetcher(lister, stats, cfg, log)
	return NewRouter(log, f, cfg)
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	h := testRouter(&stubLister{}, &stubStats{})
	assert.Equal(t, 200, get(t, h, "/healthz").Code)
	assert.Equal(t, 200, get(t, h, "/readyz").Code)
}

func TestCampaignsEndpoint(t *testing.T) {
	lister := &stubLister{campaigns: []models.RawCampaign{
		{ID: "cmp_01", Name: "A", UpdatedAt: time.Date(2025, 8, 10, 14, 0, 0, 0, time.UTC)},
		{ID: "cmp_02", Name: "B", UpdatedAt: time.Date(2025, 8, 11, 9, 0, 0, 0, time.UTC)},
	}}
	stats := &stubStats{byID: map[string]*models.CampaignStats{
		"cmp_01": {Recipients: fp(100), Revenue: fp(250)},
	}}
	h := testRouter(lister, stats)

	rec := get(t, h, "/api/campaigns?range=last_7_days")
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var rows []models.CampaignMetrics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "cmp_01", rows[0].ID)
	assert.Equal(t, 2.5, rows[0].RPR)
	assert.Zero(t, rows[1].Revenue)
}

func TestCampaignsEndpointDefaultsToLast30Days(t *testing.T) {
	h := testRouter(&stubLister{}, &stubStats{})
	rec := get(t, h, "/api/campaigns")
	assert.Equal(t, 200, rec.Code)
}

func TestCampaignsEndpointBadSelector(t *testing.T) {
	h := testRouter(&stubLister{}, &stubStats{})
	assert.Equal(t, 400, get(t, h, "/api/campaigns?range=yesterday").Code)
}

func TestCampaignsEndpointCustomRange(t *testing.T) {
	h := testRouter(&stubLister{}, &stubStats{})

	rec := get(t, h, "/api/campaigns?range=custom&start=2025-07-01T00:00:00Z&end=2025-08-01T00:00:00Z")
	assert.Equal(t, 200, rec.Code)

	// missing bounds
	assert.Equal(t, 400, get(t, h, "/api/campaigns?range=custom").Code)

	// inverted bounds
	rec = get(t, h, "/api/campaigns?range=custom&start=2025-08-01T00:00:00Z&end=2025-07-01T00:00:00Z")
	assert.Equal(t, 400, rec.Code)
}

func TestCampaignsEndpointUpstreamListFailure(t *testing.T) {
	h := testRouter(&stubLister{err: errors.New("upstream down")}, &stubStats{})
	assert.Equal(t, 502, get(t, h, "/api/campaigns?range=today").Code)
}

func TestSummaryEndpoint(t *testing.T) {
	lister := &stubLister{campaigns: []models.RawCampaign{
		{ID: "cmp_01", Name: "A", UpdatedAt: time.Now()},
	}}
	stats := &stubStats{byID: map[string]*models.CampaignStats{
		"cmp_01": {Recipients: fp(100), Revenue: fp(250), PlacedOrders: fp(5)},
	}}
	h := testRouter(lister, stats)

	rec := get(t, h, "/api/campaigns/summary?range=mtd")
	require.Equal(t, 200, rec.Code)

	var s report.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, 1, s.Campaigns)
	assert.Equal(t, 100, s.Recipients)
	assert.Equal(t, 250.0, s.Revenue)
	assert.Equal(t, 2.5, s.RPR)
	assert.Equal(t, 50.0, s.AOV)
}

func TestInsightsEndpoints(t *testing.T) {
	h := testRouter(&stubLister{}, &stubStats{})

	rec := get(t, h, "/api/insights/sections")
	require.Equal(t, 200, rec.Code)
	var names []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
	assert.Contains(t, names, "Core Revenue Metrics")

	assert.Equal(t, 200, get(t, h, "/api/insights/sections/Core%20Revenue%20Metrics").Code)
	assert.Equal(t, 404, get(t, h, "/api/insights/sections/Nope").Code)

	assert.Equal(t, 200, get(t, h, "/api/insights/metrics/Open%20Rate").Code)
	assert.Equal(t, 404, get(t, h, "/api/insights/metrics/Nope").Code)

	assert.Equal(t, 200, get(t, h, "/api/education/Total%20Revenue").Code)
	assert.Equal(t, 404, get(t, h, "/api/education/Nope").Code)
}
