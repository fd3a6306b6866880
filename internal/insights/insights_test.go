package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionLookup(t *testing.T) {
	s, ok := Section("Core Revenue Metrics")
	require.True(t, ok)
	assert.Equal(t, "Core Revenue Metrics", s.SectionName)
	assert.NotEmpty(t, s.PerformanceSummary)
	assert.NotEmpty(t, s.KeyTrends)

	_, ok = Section("No Such Section")
	assert.False(t, ok)
}

func TestMetricLookup(t *testing.T) {
	m, ok := Metric("Open Rate")
	require.True(t, ok)
	assert.Equal(t, "Open Rate", m.MetricName)
	assert.NotEmpty(t, m.OptimizationOpportunities)

	_, ok = Metric("No Such Metric")
	assert.False(t, ok)
}

func TestEducationLookup(t *testing.T) {
	e, ok := Education("Revenue Per Recipient")
	require.True(t, ok)
	assert.NotEmpty(t, e.Definition)
	assert.NotEmpty(t, e.Calculation)

	_, ok = Education("No Such Metric")
	assert.False(t, ok)
}

func TestSectionNamesStableAndComplete(t *testing.T) {
	names := SectionNames()
	assert.Equal(t, names, SectionNames())
	for _, n := range names {
		_, ok := Section(n)
		assert.True(t, ok, n)
	}
}
