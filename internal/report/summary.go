package report

import "github.com/pulseworks/campaignpulse/internal/models"

// Summary is the topline aggregate behind the dashboard KPI cards, computed
// over one batch of normalized records.
type Summary struct {
	Campaigns    int     `json:"campaigns"`
	Recipients   int     `json:"recipients"`
	PlacedOrders int     `json:"placed_orders"`
	Revenue      float64 `json:"revenue"`
	OpenRate     float64 `json:"open_rate"`
	ClickRate    float64 `json:"click_rate"`
	RPR          float64 `json:"rpr"`
	AOV          float64 `json:"aov"`
}

// Summarize aggregates a batch. Rates are recipient-weighted so a tiny
// campaign cannot skew the topline.
func Summarize(rows []models.CampaignMetrics) Summary {
	var sum Summary
	var weightedOpens, weightedClicks float64
	for _, m := range rows {
		sum.Recipients += m.Recipients
		sum.PlacedOrders += m.PlacedOrders
		sum.Revenue += m.Revenue
		weightedOpens += m.OpenRate * float64(m.Recipients)
		weightedClicks += m.ClickRate * float64(m.Recipients)
	}
	sum.Campaigns = len(rows)
	rec := float64(sum.Recipients)
	sum.OpenRate = round3(safeDivF(weightedOpens, rec))
	sum.ClickRate = round3(safeDivF(weightedClicks, rec))
	sum.RPR = round2(safeDivF(sum.Revenue, rec))
	sum.AOV = round2(safeDivF(sum.Revenue, float64(sum.PlacedOrders)))
	sum.Revenue = round2(sum.Revenue)
	return sum
}

func safeDivF(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
func round2(f float64) float64 { return float64(int64(f*100+0.5)) / 100 }
func round3(f float64) float64 { return float64(int64(f*1000+0.5)) / 1000 }
