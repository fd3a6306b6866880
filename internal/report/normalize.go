package report

import (
	"math"

	"github.com/pulseworks/campaignpulse/internal/models"
)

// statSource reads one candidate value from a statistics payload. nil means
// the source is absent; a present zero is a real value and wins.
type statSource func(*models.CampaignStats) *float64

func srcRecipients(s *models.CampaignStats) *float64  { return s.Recipients }
func srcSends(s *models.CampaignStats) *float64       { return s.Sends }
func srcDelivered(s *models.CampaignStats) *float64   { return s.Delivered }
func srcOpens(s *models.CampaignStats) *float64       { return s.Opens }
func srcClicks(s *models.CampaignStats) *float64      { return s.Clicks }
func srcOpenRate(s *models.CampaignStats) *float64    { return s.OpenRate }
func srcOpensRate(s *models.CampaignStats) *float64   { return s.OpensRate }
func srcClickRate(s *models.CampaignStats) *float64   { return s.ClickRate }
func srcClicksRate(s *models.CampaignStats) *float64  { return s.ClicksRate }
func srcPlaced(s *models.CampaignStats) *float64      { return s.PlacedOrders }
func srcOrders(s *models.CampaignStats) *float64      { return s.Orders }
func srcConversions(s *models.CampaignStats) *float64 { return s.Conversions }
func srcRevenue(s *models.CampaignStats) *float64     { return s.Revenue }
func srcTotalRev(s *models.CampaignStats) *float64    { return s.TotalRevenue }
func srcAttribRev(s *models.CampaignStats) *float64   { return s.AttributedRevenue }
func srcRPR(s *models.CampaignStats) *float64         { return s.RevenuePerRecipient }
func srcAOV(s *models.CampaignStats) *float64         { return s.AverageOrderValue }

// firstPresent walks an ordered resolution list and returns the first
// present value. The order is a contract with the dashboard: the most
// specific upstream field always beats a derived approximation, so upstream
// schema drift is tolerated without branching on a version flag.
func firstPresent(s *models.CampaignStats, sources ...statSource) (float64, bool) {
	if s == nil {
		return 0, false
	}
	for _, src := range sources {
		if v := src(s); v != nil {
			return *v, true
		}
	}
	return 0, false
}

// ratio derives a rate from a numerator and denominator source; absent when
// either side is missing or the denominator is not positive.
func ratio(num, den statSource) statSource {
	return func(s *models.CampaignStats) *float64 {
		n, d := num(s), den(s)
		if n == nil || d == nil || *d <= 0 {
			return nil
		}
		v := *n / *d
		return &v
	}
}

// Normalize merges a campaign record with its statistics payload (possibly
// absent) into the canonical metrics record. Pure function: identical inputs
// yield identical output. Absence resolves to zero, never to a missing
// field, so downstream arithmetic stays total.
func Normalize(raw models.RawCampaign, stats *models.CampaignStats) models.CampaignMetrics {
	recipients, haveRec := firstPresent(stats, srcRecipients, srcSends, srcDelivered)
	if !haveRec && raw.Recipients != nil {
		recipients = *raw.Recipients
	}

	openRate, _ := firstPresent(stats, srcOpenRate, srcOpensRate, ratio(srcOpens, srcDelivered))
	clickRate, _ := firstPresent(stats, srcClickRate, srcClicksRate, ratio(srcClicks, srcDelivered))
	placedOrders, _ := firstPresent(stats, srcPlaced, srcOrders, srcConversions)
	revenue, _ := firstPresent(stats, srcRevenue, srcTotalRev, srcAttribRev)

	rpr, haveRPR := firstPresent(stats, srcRPR)
	if !haveRPR && recipients > 0 {
		rpr = revenue / recipients
	}
	aov, haveAOV := firstPresent(stats, srcAOV)
	if !haveAOV && placedOrders > 0 {
		aov = revenue / placedOrders
	}

	return models.CampaignMetrics{
		ID:           raw.ID,
		UpdatedAt:    raw.UpdatedAt,
		Name:         raw.Name,
		Recipients:   roundCount(recipients),
		OpenRate:     maxf(openRate),
		ClickRate:    maxf(clickRate),
		PlacedOrders: roundCount(placedOrders),
		Revenue:      maxf(revenue),
		RPR:          maxf(rpr),
		AOV:          maxf(aov),
	}
}

func maxf(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}

// roundCount converts an upstream count to an integer. Rounds to nearest so
// a fractional payload value like 99.9 does not lose a unit to truncation.
func roundCount(f float64) int {
	return int(math.Round(maxf(f)))
}
