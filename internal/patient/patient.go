// Package patient defines the data model shared by the predictor client, the
// history ledger, the presentation projector and the report exporter: the vitals
// collected from the user, the risk assessment returned by the prediction
// service, and the session record that ties one round-trip together.
package patient

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Condition identifies one of the predicted conditions.
type Condition string

const (
	Diabetes Condition = "diabetes"
	Heart    Condition = "heart"
	Kidney   Condition = "kidney"
	Liver    Condition = "liver"
	Thyroid  Condition = "thyroid"
)

// Conditions is the fixed display order used everywhere a per-condition
// view is rendered. Do not reorder.
var Conditions = []Condition{Diabetes, Heart, Kidney, Liver, Thyroid}

// Title returns the capitalized display form of the condition name.
func (c Condition) Title() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// AnonymousName is substituted when the patient name field is left blank.
const AnonymousName = "Anonymous"

// Vital is a single numeric input field. Fields the user left blank or filled
// with something non-numeric carry NaN; the value is forwarded to the predictor
// unchanged (as JSON null) rather than rejected client-side.
type Vital float64

// NaN reports whether the vital holds the not-a-number sentinel.
func (v Vital) NaN() bool { return math.IsNaN(float64(v)) }

// ParseVital coerces a raw form value into a Vital. Empty or unparseable
// input yields NaN.
func ParseVital(raw string) Vital {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return Vital(math.NaN())
	}
	return Vital(f)
}

// MarshalJSON renders NaN as null so the payload stays valid JSON.
func (v Vital) MarshalJSON() ([]byte, error) {
	if v.NaN() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(v))
}

// UnmarshalJSON tolerates null, numbers and numeric strings; anything else
// collapses to NaN.
func (v *Vital) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*v = Vital(math.NaN())
		return nil
	}
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*v = Vital(math.NaN())
		return nil
	}
	*v = Vital(f)
	return nil
}

// Input is the full set of patient vitals for one prediction. Values are not
// range-validated on this side; the prediction service owns interpretation.
// An Input is never mutated after construction.
type Input struct {
	Name          string `json:"name"`
	Pregnancies   Vital  `json:"pregnancies"`
	Glucose       Vital  `json:"glucose"`
	BloodPressure Vital  `json:"bloodPressure"`
	SkinThickness Vital  `json:"skinThickness"`
	Insulin       Vital  `json:"insulin"`
	BMI           Vital  `json:"bmi"`
	DPF           Vital  `json:"dpf"`
	Age           Vital  `json:"age"`
}

// NewInput builds an Input, substituting the anonymous name for a blank one.
func NewInput(name string, pregnancies, glucose, bloodPressure, skinThickness, insulin, bmi, dpf, age Vital) Input {
	if strings.TrimSpace(name) == "" {
		name = AnonymousName
	}
	return Input{
		Name:          name,
		Pregnancies:   pregnancies,
		Glucose:       glucose,
		BloodPressure: bloodPressure,
		SkinThickness: skinThickness,
		Insulin:       insulin,
		BMI:           bmi,
		DPF:           dpf,
		Age:           age,
	}
}

// ParseVitals builds an Input from raw form strings in the fixed field order
// pregnancies, glucose, bloodPressure, skinThickness, insulin, bmi, dpf, age.
func ParseVitals(name string, raw ...string) Input {
	vals := make([]Vital, 8)
	for i := range vals {
		if i < len(raw) {
			vals[i] = ParseVital(raw[i])
		} else {
			vals[i] = Vital(math.NaN())
		}
	}
	return NewInput(name, vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], vals[6], vals[7])
}

// Assessment is the prediction service's verdict: one boolean high-risk flag
// per condition plus an ordered explanation list. The flags pass through this
// client untouched; an empty explanation list is valid.
type Assessment struct {
	Diabetes    bool     `json:"diabetes"`
	Heart       bool     `json:"heart"`
	Kidney      bool     `json:"kidney"`
	Liver       bool     `json:"liver"`
	Thyroid     bool     `json:"thyroid"`
	Explanation []string `json:"explanation"`
}

// Flag returns the high-risk flag for a condition.
func (a Assessment) Flag(c Condition) bool {
	switch c {
	case Diabetes:
		return a.Diabetes
	case Heart:
		return a.Heart
	case Kidney:
		return a.Kidney
	case Liver:
		return a.Liver
	case Thyroid:
		return a.Thyroid
	}
	return false
}

// AnyRisk reports whether at least one condition is flagged high risk.
func (a Assessment) AnyRisk() bool {
	for _, c := range Conditions {
		if a.Flag(c) {
			return true
		}
	}
	return false
}

// HighRisks returns the flagged conditions in the fixed display order.
func (a Assessment) HighRisks() []Condition {
	var out []Condition
	for _, c := range Conditions {
		if a.Flag(c) {
			out = append(out, c)
		}
	}
	return out
}

// TimestampLayout is the display format stamped on sessions. It mirrors what
// the history list and the PDF report show; it is not meant for sorting.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// Session records one complete prediction round-trip. Created exactly once per
// successful prediction and never mutated afterwards.
type Session struct {
	ID         string     `json:"id"`
	Timestamp  string     `json:"time"`
	Input      Input      `json:"data"`
	Assessment Assessment `json:"result"`
}

// NewSession stamps the current local time onto a completed round-trip.
func NewSession(in Input, a Assessment) Session {
	return NewSessionAt(time.Now(), in, a)
}

// NewSessionAt is NewSession with an explicit clock, for tests.
func NewSessionAt(now time.Time, in Input, a Assessment) Session {
	return Session{
		ID:         uuid.NewString(),
		Timestamp:  now.Format(TimestampLayout),
		Input:      in,
		Assessment: a,
	}
}
