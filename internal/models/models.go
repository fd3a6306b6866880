package models

import "time"

// RawCampaign is one entry from the campaign listing endpoint. Upstream
// attaches many more attributes to each campaign; everything beyond these
// fields is ignored.
type RawCampaign struct {
	ID        string
	Name      string
	UpdatedAt time.Time
	// Some API revisions expose a recipient count directly on the campaign.
	// nil when the listing payload omits it.
	Recipients *float64
}

// CampaignStats is the loosely-typed statistics payload. Key names vary
// across upstream API revisions and endpoints, so every field the
// normalizer may consult is optional: nil means the key was absent.
type CampaignStats struct {
	Recipients          *float64 `json:"recipients,omitempty"`
	Sends               *float64 `json:"sends,omitempty"`
	Delivered           *float64 `json:"delivered,omitempty"`
	Opens               *float64 `json:"opens,omitempty"`
	Clicks              *float64 `json:"clicks,omitempty"`
	OpenRate            *float64 `json:"open_rate,omitempty"`
	OpensRate           *float64 `json:"opens_rate,omitempty"`
	ClickRate           *float64 `json:"click_rate,omitempty"`
	ClicksRate          *float64 `json:"clicks_rate,omitempty"`
	PlacedOrders        *float64 `json:"placed_orders,omitempty"`
	Orders              *float64 `json:"orders,omitempty"`
	Conversions         *float64 `json:"conversions,omitempty"`
	Revenue             *float64 `json:"revenue,omitempty"`
	TotalRevenue        *float64 `json:"total_revenue,omitempty"`
	AttributedRevenue   *float64 `json:"attributed_revenue,omitempty"`
	RevenuePerRecipient *float64 `json:"revenue_per_recipient,omitempty"`
	AverageOrderValue   *float64 `json:"average_order_value,omitempty"`
}

// CampaignMetrics is the canonical per-campaign record handed to the
// dashboard. Every metric field always has a value; absence upstream
// resolves to zero so downstream sorting and formatting stay total.
type CampaignMetrics struct {
	ID           string    `json:"id"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `json:"name"`
	Recipients   int       `json:"recipients"`
	OpenRate     float64   `json:"open_rate"`
	ClickRate    float64   `json:"click_rate"`
	PlacedOrders int       `json:"placed_orders"`
	Revenue      float64   `json:"revenue"`
	RPR          float64   `json:"rpr"`
	AOV          float64   `json:"aov"`
}
