// Package klaviyo is a small client for the Klaviyo campaign reporting API:
// the campaign listing endpoint and the two statistics endpoints the
// dashboard can be wired to.
package klaviyo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/pulseworks/campaignpulse/internal/config"
	"github.com/pulseworks/campaignpulse/internal/metrics"
	"github.com/pulseworks/campaignpulse/internal/models"
	"github.com/pulseworks/campaignpulse/internal/timerange"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &http.Client{Timeout: timeout}
}

type Client struct {
	httpc              HTTPClient
	baseURL            string
	apiKey             string
	revision           string
	conversionMetricID string
	log                *slog.Logger
}

func NewClient(cfg config.Config, httpc HTTPClient, log *slog.Logger) *Client {
	return &Client{
		httpc:              httpc,
		baseURL:            cfg.BaseURL,
		apiKey:             cfg.APIKey,
		revision:           cfg.Revision,
		conversionMetricID: cfg.ConversionMetricID,
		log:                log,
	}
}

// statistics requested from the values report; the set the dashboard renders.
var reportStatistics = []string{
	"recipients",
	"open_rate",
	"click_rate",
	"revenue_per_recipient",
	"average_order_value",
}

// ListCampaigns returns email campaigns whose updated_at falls strictly
// inside the window. greater-than/less-than are exclusive on both ends, so a
// campaign updated exactly at a boundary instant is excluded; that is the
// upstream filter convention, kept as-is.
func (c *Client) ListCampaigns(ctx context.Context, r timerange.Range) ([]models.RawCampaign, error) {
	filter := fmt.Sprintf(
		"equals(messages.channel,'email'),greater-than(updated_at,%s),less-than(updated_at,%s)",
		r.Start.UTC().Format(time.RFC3339),
		r.End.UTC().Format(time.RFC3339),
	)
	q := url.Values{}
	q.Set("filter", filter)

	var resp campaignListResponse
	if err := c.do(ctx, http.MethodGet, "campaigns", "/api/campaigns", q, nil, &resp); err != nil {
		return nil, err
	}
	out := make([]models.RawCampaign, 0, len(resp.Data))
	for _, d := range resp.Data {
		out = append(out, models.RawCampaign{
			ID:         d.ID,
			Name:       d.Attributes.Name,
			UpdatedAt:  d.Attributes.UpdatedAt,
			Recipients: d.Attributes.Recipients,
		})
	}
	return out, nil
}

// CampaignValues fetches aggregate statistics for one campaign from the
// campaign-values-report endpoint. Relative selectors map to an upstream
// timeframe key; custom windows have no key and send their explicit bounds
// instead, so statistics always cover the same window as the listing.
func (c *Client) CampaignValues(ctx context.Context, campaignID string, sel timerange.Selector, r timerange.Range) (*models.CampaignStats, error) {
	var body valuesReportRequest
	body.Data.Type = "campaign-values-report"
	body.Data.Attributes.Statistics = reportStatistics
	if key, ok := timerange.TimeframeKey(sel); ok {
		body.Data.Attributes.Timeframe.Key = key
	} else {
		body.Data.Attributes.Timeframe.Start = r.Start.UTC().Format(time.RFC3339)
		body.Data.Attributes.Timeframe.End = r.End.UTC().Format(time.RFC3339)
	}
	body.Data.Attributes.ConversionMetricID = c.conversionMetricID
	body.Data.Attributes.Filter = fmt.Sprintf("equals(campaign_id,'%s')", campaignID)

	var resp valuesReportResponse
	if err := c.do(ctx, http.MethodPost, "campaign-values-reports", "/api/campaign-values-reports", nil, body, &resp); err != nil {
		return nil, err
	}
	// Some revisions nest statistics under results, others flatten them into
	// the attributes object.
	if len(resp.Data.Attributes.Results) > 0 {
		return &resp.Data.Attributes.Results[0].Statistics, nil
	}
	return &resp.Data.Attributes.CampaignStats, nil
}

// CampaignMessageStatistics fetches statistics via the campaign's first
// message. Returns (nil, nil) when the campaign has no messages or the
// message carries no statistics record.
func (c *Client) CampaignMessageStatistics(ctx context.Context, campaignID string) (*models.CampaignStats, error) {
	var msgs campaignMessagesResponse
	path := "/api/campaigns/" + url.PathEscape(campaignID) + "/campaign-messages/"
	if err := c.do(ctx, http.MethodGet, "campaign-messages", path, nil, nil, &msgs); err != nil {
		return nil, err
	}
	if len(msgs.Data) == 0 {
		return nil, nil
	}
	var stats messageStatisticsResponse
	path = "/api/campaign-messages/" + url.PathEscape(msgs.Data[0].ID) + "/campaign-message-statistics/"
	if err := c.do(ctx, http.MethodGet, "campaign-message-statistics", path, nil, nil, &stats); err != nil {
		return nil, err
	}
	if len(stats.Data) == 0 {
		return nil, nil
	}
	return &stats.Data[0].Attributes, nil
}

// do issues one authenticated request and decodes the JSON response into dst.
// endpoint is the low-cardinality label used for metrics.
func (c *Client) do(ctx context.Context, method, endpoint, path string, query url.Values, body, dst any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", endpoint, err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Klaviyo-API-Key "+c.apiKey)
	req.Header.Set("revision", c.revision)
	if body != nil {
		req.Header.Set("Accept", "application/vnd.api+json")
		req.Header.Set("Content-Type", "application/vnd.api+json")
	} else {
		req.Header.Set("Accept", "application/json")
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	metrics.UpstreamLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return err
	}
	defer resp.Body.Close()
	metrics.UpstreamRequests.WithLabelValues(endpoint, metrics.StatusClass(resp.StatusCode)).Inc()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.log.Debug("upstream non-2xx",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode))
		return fmt.Errorf("%s %s: non-2xx: %d body=%s", method, endpoint, resp.StatusCode, string(b))
	}
	if dst == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}
