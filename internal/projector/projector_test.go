package projector

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitaldeck/internal/patient"
)

func TestRiskSummaryAlwaysFiveLinesFixedOrder(t *testing.T) {
	cases := []patient.Assessment{
		{},
		{Diabetes: true},
		{Diabetes: true, Heart: true, Kidney: true, Liver: true, Thyroid: true},
		{Thyroid: true},
	}

	for _, a := range cases {
		lines := strings.Split(RiskSummary(a), "\n")
		require.Len(t, lines, 5)
		assert.True(t, strings.HasPrefix(lines[0], "Diabetes: "))
		assert.True(t, strings.HasPrefix(lines[1], "Heart: "))
		assert.True(t, strings.HasPrefix(lines[2], "Kidney: "))
		assert.True(t, strings.HasPrefix(lines[3], "Liver: "))
		assert.True(t, strings.HasPrefix(lines[4], "Thyroid: "))
	}
}

func TestRiskSummaryExample(t *testing.T) {
	a := patient.Assessment{Diabetes: true, Explanation: []string{"High glucose level"}}
	want := "Diabetes: High Risk\nHeart: Low Risk\nKidney: Low Risk\nLiver: Low Risk\nThyroid: Low Risk"
	assert.Equal(t, want, RiskSummary(a))
}

func TestAdvisoryVariant(t *testing.T) {
	assert.Equal(t, AdvisoryStable, Advisory(patient.Assessment{}))
	assert.Equal(t, AdvisoryRisk, Advisory(patient.Assessment{Kidney: true}))
	assert.Equal(t, AdvisoryRisk, Advisory(patient.Assessment{
		Diabetes: true, Heart: true, Kidney: true, Liver: true, Thyroid: true,
	}))
}

func TestPrecautionsAndTests(t *testing.T) {
	assert.Equal(t, PrecautionsStable, Precautions(patient.Assessment{}))
	assert.Equal(t, PrecautionsRisk, Precautions(patient.Assessment{Liver: true}))
	assert.Equal(t, TestsStable, RecommendedTests(patient.Assessment{}))
	assert.Equal(t, TestsRisk, RecommendedTests(patient.Assessment{Heart: true}))
}

func TestChartSeriesBands(t *testing.T) {
	a := patient.Assessment{Diabetes: true, Liver: true}
	rng := rand.New(rand.NewSource(1))

	// The values are random placeholders; run a few rounds to cover the bands.
	for i := 0; i < 50; i++ {
		bars := ChartSeries(a, rng)
		require.Len(t, bars, 5)

		for j, c := range patient.Conditions {
			bar := bars[j]
			assert.Equal(t, c.Title(), bar.Label)
			if a.Flag(c) {
				assert.GreaterOrEqual(t, bar.Value, 70)
				assert.LessOrEqual(t, bar.Value, 90)
				assert.Equal(t, DangerColor, bar.Color)
			} else {
				assert.GreaterOrEqual(t, bar.Value, 20)
				assert.LessOrEqual(t, bar.Value, 40)
				assert.Equal(t, SafeColor, bar.Color)
			}
		}
	}
}

func TestGaugeValuesTable(t *testing.T) {
	all := patient.Assessment{Diabetes: true, Heart: true, Kidney: true, Liver: true, Thyroid: true}
	high := GaugeValues(all)
	assert.Equal(t, Gauge{Percent: 80, Danger: true}, high[patient.Diabetes])
	assert.Equal(t, Gauge{Percent: 75, Danger: true}, high[patient.Heart])
	assert.Equal(t, Gauge{Percent: 70, Danger: true}, high[patient.Kidney])
	assert.Equal(t, Gauge{Percent: 65, Danger: true}, high[patient.Liver])
	assert.Equal(t, Gauge{Percent: 60, Danger: true}, high[patient.Thyroid])

	low := GaugeValues(patient.Assessment{})
	assert.Equal(t, Gauge{Percent: 20, Danger: false}, low[patient.Diabetes])
	assert.Equal(t, Gauge{Percent: 25, Danger: false}, low[patient.Heart])
	assert.Equal(t, Gauge{Percent: 30, Danger: false}, low[patient.Kidney])
	assert.Equal(t, Gauge{Percent: 25, Danger: false}, low[patient.Liver])
	assert.Equal(t, Gauge{Percent: 20, Danger: false}, low[patient.Thyroid])
}
