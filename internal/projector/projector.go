// Package projector turns an assessment into the view data the dashboard and
// the report render: summary text, advisory variants, chart bars and gauge
// targets. Everything here is a pure transformation; rendering is someone
// else's job.
package projector

import (
	"fmt"
	"math/rand"
	"strings"

	"vitaldeck/internal/patient"
)

// Display hues shared by the chart and the gauges.
const (
	DangerColor = "#ff3d3d"
	SafeColor   = "#00bfa6"
)

// RiskSummary renders one line per condition in the fixed order, regardless of
// which flags are set.
func RiskSummary(a patient.Assessment) string {
	var sb strings.Builder
	for i, c := range patient.Conditions {
		if i > 0 {
			sb.WriteByte('\n')
		}
		label := "Low Risk"
		if a.Flag(c) {
			label = "High Risk"
		}
		fmt.Fprintf(&sb, "%s: %s", c.Title(), label)
	}
	return sb.String()
}

// Advisory variants. The risk variant applies as soon as any single condition
// is flagged.
const (
	AdvisoryRisk   = "Medical supervision and lifestyle changes are strongly advised."
	AdvisoryStable = "Patient condition stable. Preventive care advised."
)

// Advisory returns the doctor recommendation line for the assessment.
func Advisory(a patient.Assessment) string {
	if a.AnyRisk() {
		return AdvisoryRisk
	}
	return AdvisoryStable
}

// Precaution lists per advisory variant.
var (
	PrecautionsRisk = []string{
		"Avoid sugar & processed food",
		"Exercise daily",
		"Avoid smoking & alcohol",
		"Monitor vitals",
	}
	PrecautionsStable = []string{
		"Balanced diet",
		"Regular exercise",
		"Annual checkups",
	}
)

// Precautions returns the precaution list for the assessment.
func Precautions(a patient.Assessment) []string {
	if a.AnyRisk() {
		return PrecautionsRisk
	}
	return PrecautionsStable
}

// Recommended test panels per advisory variant.
const (
	TestsRisk   = "HbA1c, Lipid Profile, BP Monitoring, Kidney Function Test, Thyroid Panel"
	TestsStable = "Annual Blood Sugar Screening"
)

// RecommendedTests returns the recommended test panel for the assessment.
func RecommendedTests(a patient.Assessment) string {
	if a.AnyRisk() {
		return TestsRisk
	}
	return TestsStable
}

// Bar is one entry of the risk chart dataset.
type Bar struct {
	Label string
	Value int // cosmetic confidence percent, not a real probability
	Color string
}

// Confidence bands for the chart. The value is a randomized placeholder inside
// the band matching the flag; it is not derived from the predictor.
const (
	riskBandLow  = 70
	riskBandHigh = 90
	safeBandLow  = 20
	safeBandHigh = 40
)

// ChartSeries builds the bar chart dataset in the fixed condition order. The
// rng is injected so tests can pin the sequence.
func ChartSeries(a patient.Assessment, rng *rand.Rand) []Bar {
	bars := make([]Bar, 0, len(patient.Conditions))
	for _, c := range patient.Conditions {
		var bar Bar
		bar.Label = c.Title()
		if a.Flag(c) {
			bar.Value = randBetween(rng, riskBandLow, riskBandHigh)
			bar.Color = DangerColor
		} else {
			bar.Value = randBetween(rng, safeBandLow, safeBandHigh)
			bar.Color = SafeColor
		}
		bars = append(bars, bar)
	}
	return bars
}

func randBetween(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

// Gauge is the animation target for one condition meter.
type Gauge struct {
	Percent int
	Danger  bool
}

// gaugeTable is the fixed per-condition target table: high-risk percent and
// low-risk percent. Purely a cosmetic lookup, not computed from the
// assessment.
var gaugeTable = map[patient.Condition][2]int{
	patient.Diabetes: {80, 20},
	patient.Heart:    {75, 25},
	patient.Kidney:   {70, 30},
	patient.Liver:    {65, 25},
	patient.Thyroid:  {60, 20},
}

// GaugeValues returns the animation target for every condition.
func GaugeValues(a patient.Assessment) map[patient.Condition]Gauge {
	out := make(map[patient.Condition]Gauge, len(patient.Conditions))
	for _, c := range patient.Conditions {
		targets := gaugeTable[c]
		if a.Flag(c) {
			out[c] = Gauge{Percent: targets[0], Danger: true}
		} else {
			out[c] = Gauge{Percent: targets[1], Danger: false}
		}
	}
	return out
}
