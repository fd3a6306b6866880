package klaviyo

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseworks/campaignpulse/internal/config"
	"github.com/pulseworks/campaignpulse/internal/timerange"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.Config{
		APIKey:             "pk_test_123",
		BaseURL:            srv.URL,
		Revision:           "2025-07-15",
		ConversionMetricID: "YsNXnq",
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(cfg, NewHTTPClient(2*time.Second), log)
}

func TestListCampaignsRequestShape(t *testing.T) {
	var gotAuth, gotRevision, gotFilter string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRevision = r.Header.Get("revision")
		gotFilter = r.URL.Query().Get("filter")
		assert.Equal(t, "/api/campaigns", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":[
			{"id":"cmp_01","attributes":{"name":"Summer Sale","updated_at":"2025-08-10T14:00:00Z"}},
			{"id":"cmp_02","attributes":{"name":"Flash Deal","updated_at":"2025-08-11T09:30:00Z","recipients":1200,"archived":false}}
		]}`)
	}))

	r := timerange.Range{
		Start: time.Date(2025, 7, 16, 23, 59, 59, 0, time.UTC),
		End:   time.Date(2025, 8, 15, 23, 59, 59, 0, time.UTC),
	}
	campaigns, err := c.ListCampaigns(context.Background(), r)
	require.NoError(t, err)

	assert.Equal(t, "Klaviyo-API-Key pk_test_123", gotAuth)
	assert.Equal(t, "2025-07-15", gotRevision)
	assert.Equal(t,
		"equals(messages.channel,'email'),greater-than(updated_at,2025-07-16T23:59:59Z),less-than(updated_at,2025-08-15T23:59:59Z)",
		gotFilter)

	require.Len(t, campaigns, 2)
	assert.Equal(t, "cmp_01", campaigns[0].ID)
	assert.Equal(t, "Summer Sale", campaigns[0].Name)
	assert.Nil(t, campaigns[0].Recipients)
	require.NotNil(t, campaigns[1].Recipients)
	assert.Equal(t, 1200.0, *campaigns[1].Recipients)
	assert.True(t, campaigns[1].UpdatedAt.Equal(time.Date(2025, 8, 11, 9, 30, 0, 0, time.UTC)))
}

func TestListCampaignsNon2xx(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))

	_, err := c.ListCampaigns(context.Background(), timerange.Range{End: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-2xx")
	assert.Contains(t, err.Error(), "403")
}

func TestCampaignValuesPayload(t *testing.T) {
	var got valuesReportRequest
	var gotContentType string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/campaign-values-reports", r.URL.Path)
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{"data":{"attributes":{"recipients":500,"open_rate":0.31,"revenue":980.5}}}`)
	}))

	stats, err := c.CampaignValues(context.Background(), "cmp_01", timerange.WeekToDate, timerange.Range{})
	require.NoError(t, err)

	assert.Equal(t, "application/vnd.api+json", gotContentType)
	assert.Equal(t, "campaign-values-report", got.Data.Type)
	assert.Equal(t, reportStatistics, got.Data.Attributes.Statistics)
	assert.Equal(t, "this_week", got.Data.Attributes.Timeframe.Key)
	assert.Empty(t, got.Data.Attributes.Timeframe.Start)
	assert.Empty(t, got.Data.Attributes.Timeframe.End)
	assert.Equal(t, "YsNXnq", got.Data.Attributes.ConversionMetricID)
	assert.Equal(t, "equals(campaign_id,'cmp_01')", got.Data.Attributes.Filter)

	require.NotNil(t, stats.Recipients)
	assert.Equal(t, 500.0, *stats.Recipients)
	require.NotNil(t, stats.OpenRate)
	assert.Equal(t, 0.31, *stats.OpenRate)
	require.NotNil(t, stats.Revenue)
	assert.Equal(t, 980.5, *stats.Revenue)
}

func TestCampaignValuesCustomSendsExplicitBounds(t *testing.T) {
	var got valuesReportRequest
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{"data":{"attributes":{}}}`)
	}))

	r := timerange.Range{
		Start: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	_, err := c.CampaignValues(context.Background(), "cmp_01", timerange.Custom, r)
	require.NoError(t, err)

	// no timeframe key for custom windows; the bounds travel instead, so the
	// statistics cover the same window as the campaign listing
	assert.Empty(t, got.Data.Attributes.Timeframe.Key)
	assert.Equal(t, "2025-07-01T00:00:00Z", got.Data.Attributes.Timeframe.Start)
	assert.Equal(t, "2025-08-01T00:00:00Z", got.Data.Attributes.Timeframe.End)
}

func TestCampaignValuesResultsShape(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":{"attributes":{"results":[{"statistics":{"revenue":42.5,"placed_orders":3}}]}}}`)
	}))

	stats, err := c.CampaignValues(context.Background(), "cmp_01", timerange.Last7Days, timerange.Range{})
	require.NoError(t, err)
	require.NotNil(t, stats.Revenue)
	assert.Equal(t, 42.5, *stats.Revenue)
	require.NotNil(t, stats.PlacedOrders)
	assert.Equal(t, 3.0, *stats.PlacedOrders)
}

func TestCampaignMessageStatistics(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/campaigns/cmp_01/campaign-messages/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":[{"id":"msg_01"},{"id":"msg_02"}]}`)
	})
	mux.HandleFunc("/api/campaign-messages/msg_01/campaign-message-statistics/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":[{"attributes":{"delivered":1000,"opens":280,"clicks":32}}]}`)
	})
	c := testClient(t, mux)

	stats, err := c.CampaignMessageStatistics(context.Background(), "cmp_01")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 1000.0, *stats.Delivered)
	assert.Equal(t, 280.0, *stats.Opens)
}

func TestCampaignMessageStatisticsNoMessages(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":[]}`)
	}))

	stats, err := c.CampaignMessageStatistics(context.Background(), "cmp_01")
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestMessageStatsAdapterIgnoresSelector(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/campaigns/cmp_09/campaign-messages/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":[{"id":"msg_09"}]}`)
	})
	mux.HandleFunc("/api/campaign-messages/msg_09/campaign-message-statistics/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":[{"attributes":{"recipients":10}}]}`)
	})
	c := testClient(t, mux)

	stats, err := MessageStats{Client: c}.CampaignValues(context.Background(), "cmp_09", timerange.Today, timerange.Range{})
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 10.0, *stats.Recipients)
}
