package patient

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVital(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
		nan  bool
	}{
		{"plain number", "120", 120, false},
		{"decimal", "26.4", 26.4, false},
		{"padded", "  98 ", 98, false},
		{"empty", "", 0, true},
		{"garbage", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ParseVital(tt.raw)
			if tt.nan {
				assert.True(t, v.NaN())
				return
			}
			assert.False(t, v.NaN())
			assert.Equal(t, tt.want, float64(v))
		})
	}
}

func TestNewInputAnonymous(t *testing.T) {
	in := ParseVitals("", "1", "180", "80", "20", "85", "26.4", "0.5", "45")
	assert.Equal(t, AnonymousName, in.Name)

	in = ParseVitals("   ", "1")
	assert.Equal(t, AnonymousName, in.Name)

	in = ParseVitals("Alice", "1")
	assert.Equal(t, "Alice", in.Name)
}

func TestParseVitalsMissingFieldsAreNaN(t *testing.T) {
	in := ParseVitals("Bob", "2", "140")
	assert.False(t, in.Pregnancies.NaN())
	assert.False(t, in.Glucose.NaN())
	assert.True(t, in.BloodPressure.NaN())
	assert.True(t, in.Age.NaN())
}

func TestVitalJSON(t *testing.T) {
	in := ParseVitals("Alice", "1", "", "80")
	data, err := json.Marshal(in)
	require.NoError(t, err)

	// NaN must serialize as null, never as a bare NaN token.
	assert.Contains(t, string(data), `"glucose":null`)
	assert.Contains(t, string(data), `"pregnancies":1`)

	var back Input
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Glucose.NaN())
	assert.Equal(t, float64(80), float64(back.BloodPressure))
}

func TestVitalUnmarshalTolerant(t *testing.T) {
	var v Vital
	require.NoError(t, json.Unmarshal([]byte(`"42"`), &v))
	assert.Equal(t, float64(42), float64(v))

	require.NoError(t, json.Unmarshal([]byte(`true`), &v))
	assert.True(t, v.NaN())
}

func TestConditionTitle(t *testing.T) {
	assert.Equal(t, "Diabetes", Diabetes.Title())
	assert.Equal(t, "Thyroid", Thyroid.Title())
}

func TestAssessmentFlags(t *testing.T) {
	a := Assessment{Diabetes: true, Liver: true}

	assert.True(t, a.Flag(Diabetes))
	assert.False(t, a.Flag(Heart))
	assert.True(t, a.AnyRisk())
	assert.Equal(t, []Condition{Diabetes, Liver}, a.HighRisks())

	var clean Assessment
	assert.False(t, clean.AnyRisk())
	assert.Empty(t, clean.HighRisks())
}

func TestNewSessionAt(t *testing.T) {
	now := time.Date(2026, 3, 9, 14, 5, 7, 0, time.Local)
	in := ParseVitals("Alice", "1", "180")
	s := NewSessionAt(now, in, Assessment{Diabetes: true, Explanation: []string{"High glucose level"}})

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "3/9/2026, 2:05:07 PM", s.Timestamp)
	assert.Equal(t, "Alice", s.Input.Name)
	assert.True(t, s.Assessment.Diabetes)
}
