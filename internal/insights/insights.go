// Package insights holds the canned dashboard content: section-level and
// metric-level insight text plus metric education copy. Pure lookup tables
// keyed by section or metric name; nothing here is computed.
package insights

import "sort"

type SectionInsight struct {
	SectionName              string   `json:"section_name"`
	PerformanceSummary       string   `json:"performance_summary"`
	KeyTrends                []string `json:"key_trends"`
	Recommendations          []string `json:"recommendations"`
	RiskAlerts               []string `json:"risk_alerts"`
	CrossMetricRelationships []string `json:"cross_metric_relationships"`
}

type MetricInsight struct {
	MetricName                string   `json:"metric_name"`
	PerformanceContext        string   `json:"performance_context"`
	ContributingFactors       []string `json:"contributing_factors"`
	OptimizationOpportunities []string `json:"optimization_opportunities"`
	RelatedMetricsImpact      []string `json:"related_metrics_impact"`
	TrendPrediction           string   `json:"trend_prediction"`
}

type MetricEducation struct {
	Definition  string `json:"definition"`
	Calculation string `json:"calculation,omitempty"`
	Importance  string `json:"importance"`
	Benchmark   string `json:"benchmark,omitempty"`
}

// Section returns the insight block for a dashboard section.
func Section(name string) (SectionInsight, bool) {
	s, ok := sectionInsights[name]
	return s, ok
}

// Metric returns the insight block for an individual metric.
func Metric(name string) (MetricInsight, bool) {
	m, ok := metricInsights[name]
	return m, ok
}

// Education returns the education copy for a metric.
func Education(name string) (MetricEducation, bool) {
	e, ok := metricEducation[name]
	return e, ok
}

// SectionNames lists the known sections in stable order.
func SectionNames() []string {
	out := make([]string, 0, len(sectionInsights))
	for k := range sectionInsights {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var sectionInsights = map[string]SectionInsight{
	"Core Revenue Metrics": {
		SectionName:        "Core Revenue Metrics",
		PerformanceSummary: "Strong revenue performance with total revenue up 18.5% versus last period. Email channel driving 34% of total revenue, exceeding industry benchmarks.",
		KeyTrends: []string{
			"Email revenue share increasing steadily (+2.1% this period)",
			"Campaign revenue outpacing flow revenue growth (24% vs 15%)",
			"Average order value trending upward (+$12 average)",
			"Revenue per recipient improving across all segments",
		},
		Recommendations: []string{
			"Increase campaign frequency during high-performance windows",
			"Test premium product positioning to boost AOV further",
			"Expand high-performing segments to similar audiences",
			"Optimize flow sequences for better revenue capture",
		},
		RiskAlerts: []string{
			"Revenue concentration risk: 68% from top 3 campaigns",
			"Seasonal dependency showing in trend analysis",
		},
		CrossMetricRelationships: []string{
			"Higher email sends correlating with increased revenue (+15% send volume = +8% revenue)",
			"Open rate improvements directly impact RPR (1% open rate = $0.12 RPR increase)",
			"AOV increases when campaign frequency optimized (sweet spot: 3.2 campaigns/week)",
		},
	},
	"Performance Metrics": {
		SectionName:        "Performance Metrics",
		PerformanceSummary: "Email engagement showing mixed signals. Strong open rates (28.4%) but click rates declining slightly (-0.8%). Deliverability remains excellent with low spam/bounce rates.",
		KeyTrends: []string{
			"Open rates maintaining above-industry performance",
			"Click rates showing gradual decline over 8 weeks",
			"Mobile engagement outperforming desktop (+12%)",
			"Weekend sends showing higher engagement rates",
		},
		Recommendations: []string{
			"A/B test email content format and CTA placement",
			"Segment by device type for optimized experiences",
			"Increase weekend campaign allocation",
			"Review content strategy for click-through optimization",
		},
		RiskAlerts: []string{
			"Click rate decline may impact future revenue if not addressed",
			"Engagement concentration in specific segments may indicate list fatigue",
		},
		CrossMetricRelationships: []string{
			"Open rate improvements correlate with 3x revenue impact versus click rate improvements",
			"Placed order rate heavily influenced by landing page experience (not just email)",
			"Unsubscribe spikes follow high-frequency campaign periods",
		},
	},
	"Send Volume Metrics": {
		SectionName:        "Send Volume Metrics",
		PerformanceSummary: "Healthy send volume growth with 2.4M emails sent this period. Campaign sends up 22% while maintaining deliverability standards.",
		KeyTrends: []string{
			"Total send volume growing faster than list size (indicates higher frequency)",
			"Campaign sends increasing, flow sends steady",
			"Send frequency optimization showing positive ROI",
			"Deliverability maintaining 98.2% despite volume increases",
		},
		Recommendations: []string{
			"Continue gradual frequency increases for engaged segments",
			"Expand flow automation to capture more lifecycle moments",
			"Test send time optimization for different segments",
			"Monitor list health metrics closely with volume growth",
		},
		RiskAlerts: []string{
			"Rapid send volume growth may impact long-term deliverability",
			"Campaign-heavy strategy may lead to subscriber fatigue",
		},
		CrossMetricRelationships: []string{
			"Send volume increases correlate with revenue but with diminishing returns after 3.5 sends/week",
			"Higher campaign sends impact flow performance negatively if not properly spaced",
			"List growth rate needs to match send volume growth to maintain engagement",
		},
	},
	"Subscription Metrics": {
		SectionName:        "Subscription Metrics",
		PerformanceSummary: "Subscription business showing strong fundamentals with 4.2% monthly churn and $47K MRR. New subscription starts up 31% with improving retention metrics.",
		KeyTrends: []string{
			"Monthly recurring revenue growing consistently",
			"Churn rate trending downward (-0.8% vs last quarter)",
			"Average subscription cycles increasing (6.8 cycles)",
			"Dunning success rate improving with new recovery flows",
		},
		Recommendations: []string{
			"Invest in onboarding experience to extend lifecycle",
			"Expand dunning recovery automation",
			"Test subscription frequency options",
			"Develop retention campaigns for at-risk subscribers",
		},
		RiskAlerts: []string{
			"Seasonal subscription patterns may impact Q1 performance",
			"Payment method diversity needed to reduce dunning failures",
		},
		CrossMetricRelationships: []string{
			"Email engagement strongly predicts subscription retention (3x impact)",
			"Subscription customers show 2.4x higher email revenue per recipient",
			"Churn prevention campaigns reduce overall list unsubscribe rates",
		},
	},
}

var metricInsights = map[string]MetricInsight{
	"Total Revenue": {
		MetricName:         "Total Revenue",
		PerformanceContext: "Exceptional performance with $1.24M total revenue, representing 18.5% growth versus the previous period. This puts you in the top 15% of similar e-commerce brands and significantly above the 8-12% industry average.",
		ContributingFactors: []string{
			"Email marketing driving 34% of total revenue (above 25-30% benchmark)",
			"Strong campaign performance during promotional periods",
			"Improved average order value (+8.2% vs last period)",
			"Higher conversion rates from optimized product pages",
		},
		OptimizationOpportunities: []string{
			"Increase email frequency during peak performance windows to capture more revenue",
			"Test upselling sequences for recent purchasers to boost AOV further",
			"Expand successful campaign strategies to similar audience segments",
			"Implement dynamic product recommendations in email content",
		},
		RelatedMetricsImpact: []string{
			"Email Rev Share: 34% of total revenue shows strong email program health",
			"AOV: $127 average indicates healthy customer spending patterns",
			"Campaign Revenue: Strong performance suggests good product-market fit",
		},
		TrendPrediction: "Revenue trajectory suggests potential to reach $1.45M next period if current growth patterns continue. Key risk factors: seasonal dependency and email deliverability maintenance.",
	},
	"Email Rev Share": {
		MetricName:         "Email Rev Share",
		PerformanceContext: "Outstanding 34.2% email revenue share, well above the 20-30% industry benchmark. This indicates a highly effective email marketing program and strong customer engagement with your email content.",
		ContributingFactors: []string{
			"High-quality email content driving strong engagement",
			"Effective segmentation strategies targeting the right audiences",
			"Optimized send timing and frequency",
			"Strong brand relationship encouraging email engagement",
		},
		OptimizationOpportunities: []string{
			"Push email share toward 40% with more aggressive automation",
			"Test personalized product recommendations to increase click-through",
			"Expand email-exclusive offers to drive more attribution",
			"Optimize flow sequences for better revenue capture",
		},
		RelatedMetricsImpact: []string{
			"Total Revenue: Email's strong performance is a key driver of overall revenue growth",
			"Open Rate: 28.4% open rate directly supports high revenue attribution",
			"RPR: Higher email share typically correlates with better RPR performance",
		},
		TrendPrediction: "Email revenue share trending upward (+2.1% vs last period) suggests continued growth potential. Monitor for plateau around 40% where additional gains become harder to achieve.",
	},
	"Campaigns Sent": {
		MetricName:         "Campaigns Sent",
		PerformanceContext: "Strong campaign activity with 47 campaigns sent this period, representing a 22% increase in campaign frequency. This higher frequency appears to be driving revenue without significantly impacting engagement metrics.",
		ContributingFactors: []string{
			"Expanded promotional calendar with more frequent offers",
			"Improved campaign planning and execution efficiency",
			"Testing of higher frequency on engaged segments",
			"Seasonal promotional opportunities being maximized",
		},
		OptimizationOpportunities: []string{
			"Continue testing frequency increases on high-engagement segments",
			"Implement dynamic content to reduce campaign creation time",
			"Test automated campaign triggers based on user behavior",
			"Optimize campaign scheduling for maximum engagement windows",
		},
		RelatedMetricsImpact: []string{
			"Campaign Revenue: 22% increase in sends driving proportional revenue growth",
			"Open Rate: Maintaining 28.4% despite frequency increase is excellent",
			"Unsubscribe Rate: Monitor closely as frequency increases",
		},
		TrendPrediction: "Campaign frequency optimization appears sustainable at current levels. Test gradual increases to find optimal frequency ceiling before engagement degradation.",
	},
	"Open Rate": {
		MetricName:         "Open Rate",
		PerformanceContext: "Excellent 28.4% open rate, significantly above the 20-25% e-commerce industry average. This indicates strong subject line performance, good sender reputation, and engaged subscriber base.",
		ContributingFactors: []string{
			"Strong brand recognition and trust with subscribers",
			"Effective subject line testing and optimization",
			"Good list hygiene maintaining engagement quality",
			"Optimal send timing for your audience",
		},
		OptimizationOpportunities: []string{
			"Test advanced personalization in subject lines (beyond first name)",
			"Implement send time optimization for individual subscribers",
			"A/B test emoji usage and subject line length variations",
			"Experiment with preview text optimization for better inbox display",
		},
		RelatedMetricsImpact: []string{
			"Click Rate: Strong opens provide foundation for click optimization",
			"Revenue: High open rates directly correlate with revenue performance",
			"Deliverability: Excellent opens support strong sender reputation",
		},
		TrendPrediction: "Open rates showing stability with slight upward trend. Continued optimization could push rates toward 30%+ for this audience quality.",
	},
	"Click Rate": {
		MetricName:         "Click Rate",
		PerformanceContext: "Click rate at 3.2% is within industry range but showing slight decline (-0.8% vs last period). While not concerning yet, this trend bears monitoring as it directly impacts revenue conversion.",
		ContributingFactors: []string{
			"Increased campaign frequency may be impacting individual campaign performance",
			"Content fatigue possible with certain subscriber segments",
			"Mobile vs desktop experience differences",
			"Landing page experience may not be optimized for email traffic",
		},
		OptimizationOpportunities: []string{
			"A/B test email content format and layout variations",
			"Implement dynamic content based on past purchase behavior",
			"Optimize CTA placement and design for better visibility",
			"Test mobile-first email design approach",
		},
		RelatedMetricsImpact: []string{
			"Revenue: Click rate decline directly threatens conversion volume",
			"Open Rate: Strong opens give room to recover clicks with better content",
			"Placed Orders: Fewer clicks compress the order funnel",
		},
		TrendPrediction: "Click rate trend suggests stabilization near 3% if content optimization lands; continued decline would warrant frequency review.",
	},
}

var metricEducation = map[string]MetricEducation{
	"Total Revenue": {
		Definition:  "The total amount of revenue generated across all channels and campaigns within the selected time period.",
		Calculation: "Sum of all completed orders and transactions, including email campaigns, flows, and other marketing initiatives.",
		Importance:  "This is your primary growth indicator, showing the direct financial impact of your marketing efforts and overall business performance.",
		Benchmark:   "Growth of 15-25% month-over-month is typical for healthy e-commerce businesses.",
	},
	"Email Revenue": {
		Definition:  "Revenue directly attributed to email marketing campaigns and automated flows.",
		Calculation: "Total revenue from orders where the customer's last click was from an email campaign or flow.",
		Importance:  "Email marketing typically generates 25-30% of total e-commerce revenue and has the highest ROI of all digital marketing channels.",
		Benchmark:   "Email should contribute 20-40% of total revenue for most e-commerce brands.",
	},
	"Campaign Revenue": {
		Definition:  "Revenue generated specifically from one-time email campaigns (not including automated flows).",
		Calculation: "Revenue from orders attributed to campaign emails within the attribution window.",
		Importance:  "Campaigns drive immediate revenue and are essential for product launches, promotions, and seasonal sales.",
		Benchmark:   "Campaign revenue should make up 40-60% of total email revenue.",
	},
	"Revenue Per Recipient": {
		Definition:  "Average revenue generated per email recipient for a campaign.",
		Calculation: "Campaign revenue divided by the number of recipients.",
		Importance:  "RPR normalizes revenue for audience size, making campaigns of different scale directly comparable.",
		Benchmark:   "Top-performing campaigns typically exceed $1.50 revenue per recipient.",
	},
	"Average Order Value": {
		Definition:  "Average value of an order placed as a result of a campaign.",
		Calculation: "Campaign revenue divided by the number of placed orders.",
		Importance:  "AOV shows how much customers spend per purchase and is a key lever for revenue growth without additional traffic.",
		Benchmark:   "AOV between $60 and $120 is typical for mid-market e-commerce brands.",
	},
}
