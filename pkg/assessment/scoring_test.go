package assessment

import (
	"testing"

	"github.com/ksense-health/assessment/pkg/common/models"
)

func TestScoreBloodPressure(t *testing.T) {
	rules := DefaultRuleset()

	tests := []struct {
		name   string
		raw    interface{}
		points int
		valid  bool
	}{
		{"stage 2 systolic", "150/95", 4, true},
		{"stage 2 systolic alone", "140/70", 4, true},
		{"stage 2 diastolic alone", "110/90", 4, true},
		{"stage 1 systolic", "135/75", 3, true},
		{"stage 1 diastolic", "110/85", 3, true},
		{"stage 1 boundary", "130/70", 3, true},
		{"elevated", "125/75", 2, true},
		{"elevated lower bound", "120/79", 2, true},
		{"elevated upper bound", "129/79", 2, true},
		{"normal", "119/79", 1, true},
		{"padded parts parse", " 125 / 75 ", 2, true},
		{"fractional fallthrough", "129.5/70", 0, true},
		{"empty string", "", 0, false},
		{"missing slash", "120", 0, false},
		{"non-numeric systolic", "abc/80", 0, false},
		{"blank systolic", "/80", 0, false},
		{"blank diastolic", "120/", 0, false},
		{"three parts", "120/80/90", 0, false},
		{"null", nil, 0, false},
		{"number not string", 120.0, 0, false},
	}

	for _, tt := range tests {
		score := rules.ScoreBloodPressure(models.ValueOf(tt.raw))
		if score.Points != tt.points || score.Valid != tt.valid {
			t.Errorf("%s: ScoreBloodPressure(%v) = %+v, want {Points:%d Valid:%v}",
				tt.name, tt.raw, score, tt.points, tt.valid)
		}
	}

	var missing models.ExternalValue
	if score := rules.ScoreBloodPressure(missing); score.Valid {
		t.Error("missing blood pressure must be invalid")
	}
}

func TestScoreTemperature(t *testing.T) {
	rules := DefaultRuleset()

	tests := []struct {
		name   string
		raw    interface{}
		points int
		valid  bool
	}{
		{"normal", 98.6, 0, true},
		{"normal upper bound", 99.5, 0, true},
		{"low grade lower bound", 99.6, 1, true},
		{"low grade upper bound", 100.9, 1, true},
		{"high", 101.0, 2, true},
		{"very high", 103.2, 2, true},
		{"between bands grades high", 100.95, 2, true},
		{"numeric string", "98.6", 0, true},
		{"non-numeric string", "high", 0, false},
		{"null", nil, 0, false},
	}

	for _, tt := range tests {
		score := rules.ScoreTemperature(models.ValueOf(tt.raw))
		if score.Points != tt.points || score.Valid != tt.valid {
			t.Errorf("%s: ScoreTemperature(%v) = %+v, want {Points:%d Valid:%v}",
				tt.name, tt.raw, score, tt.points, tt.valid)
		}
	}
}

func TestHasFever(t *testing.T) {
	rules := DefaultRuleset()

	tests := []struct {
		name string
		raw  interface{}
		want bool
	}{
		{"at the line", 99.6, true},
		{"above the line", 102.0, true},
		{"numeric string above", "101", true},
		{"below the line", 99.5, false},
		{"unparseable is not fever", "high", false},
		{"null is not fever", nil, false},
	}

	for _, tt := range tests {
		if got := rules.HasFever(models.ValueOf(tt.raw)); got != tt.want {
			t.Errorf("%s: HasFever(%v) = %v, want %v", tt.name, tt.raw, got, tt.want)
		}
	}
}

func TestScoreAge(t *testing.T) {
	rules := DefaultRuleset()

	tests := []struct {
		name   string
		raw    interface{}
		points int
		valid  bool
	}{
		{"senior", 66.0, 2, true},
		{"boundary is not senior", 65.0, 1, true},
		{"adult", 30.0, 1, true},
		{"zero", 0.0, 1, true},
		{"negative still scores", -1.0, 1, true},
		{"numeric string", "70", 2, true},
		{"non-numeric string", "N/A", 0, false},
		{"null", nil, 0, false},
	}

	for _, tt := range tests {
		score := rules.ScoreAge(models.ValueOf(tt.raw))
		if score.Points != tt.points || score.Valid != tt.valid {
			t.Errorf("%s: ScoreAge(%v) = %+v, want {Points:%d Valid:%v}",
				tt.name, tt.raw, score, tt.points, tt.valid)
		}
	}
}
