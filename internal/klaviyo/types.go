package klaviyo

import (
	"context"
	"time"

	"github.com/pulseworks/campaignpulse/internal/models"
	"github.com/pulseworks/campaignpulse/internal/timerange"
)

// Wire shapes for the JSON:API responses. Only the fields the pipeline
// consumes are declared; everything else decodes into the void.

type campaignListResponse struct {
	Data []struct {
		ID         string `json:"id"`
		Attributes struct {
			Name       string    `json:"name"`
			UpdatedAt  time.Time `json:"updated_at"`
			Recipients *float64  `json:"recipients"`
		} `json:"attributes"`
	} `json:"data"`
}

type valuesReportRequest struct {
	Data struct {
		Type       string `json:"type"`
		Attributes struct {
			Statistics []string `json:"statistics"`
			Timeframe  struct {
				Key   string `json:"key,omitempty"`
				Start string `json:"start,omitempty"`
				End   string `json:"end,omitempty"`
			} `json:"timeframe"`
			ConversionMetricID string `json:"conversion_metric_id"`
			Filter             string `json:"filter"`
		} `json:"attributes"`
	} `json:"data"`
}

type valuesReportResponse struct {
	Data struct {
		Attributes valuesReportAttributes `json:"attributes"`
	} `json:"data"`
}

// valuesReportAttributes accepts both shapes the endpoint has shipped:
// statistics flattened into attributes, or nested under results.
type valuesReportAttributes struct {
	models.CampaignStats
	Results []struct {
		Statistics models.CampaignStats `json:"statistics"`
	} `json:"results"`
}

type campaignMessagesResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

type messageStatisticsResponse struct {
	Data []struct {
		Attributes models.CampaignStats `json:"attributes"`
	} `json:"data"`
}

// MessageStats adapts the campaign-message statistics path to the report
// pipeline's stats provider contract. The endpoint has no timeframe
// parameter; statistics are lifetime aggregates for the message.
type MessageStats struct {
	Client *Client
}

func (m MessageStats) CampaignValues(ctx context.Context, campaignID string, _ timerange.Selector, _ timerange.Range) (*models.CampaignStats, error) {
	return m.Client.CampaignMessageStatistics(ctx, campaignID)
}
