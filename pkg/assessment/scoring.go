package assessment

import (
	"strconv"
	"strings"

	"github.com/ksense-health/assessment/pkg/common/models"
)

// FieldScore is the outcome of scoring one vital-sign field. Points is the
// risk contribution; Valid reports whether the raw value was usable. An
// invalid field always contributes 0, but 0 points does not imply an invalid
// field: a normal blood pressure reading validly scores 1 and a normal
// temperature validly scores 0.
type FieldScore struct {
	Points int
	Valid  bool
}

// ScoreBloodPressure classifies a "systolic/diastolic" reading. Stages are
// mutually exclusive and evaluated highest first. Readings that parse but
// match no stage (for example a fractional systolic between the elevated
// ceiling and stage 1 floor) are valid and contribute nothing.
func (r Ruleset) ScoreBloodPressure(v models.ExternalValue) FieldScore {
	raw, ok := v.AsString()
	if !ok {
		return FieldScore{}
	}

	parts := strings.Split(raw, "/")
	if len(parts) != 2 {
		return FieldScore{}
	}
	if strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return FieldScore{}
	}

	systolic, sysErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	diastolic, diaErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if sysErr != nil || diaErr != nil {
		return FieldScore{}
	}

	bp := r.BloodPressure
	switch {
	case systolic >= bp.Stage2Systolic || diastolic >= bp.Stage2Diastolic:
		return FieldScore{Points: 4, Valid: true}
	case systolic >= bp.Stage1Systolic || diastolic >= bp.Stage1Diastolic:
		return FieldScore{Points: 3, Valid: true}
	case systolic >= bp.ElevatedMin && systolic <= bp.ElevatedMax && diastolic < bp.Stage1Diastolic:
		return FieldScore{Points: 2, Valid: true}
	case systolic < bp.ElevatedMin && diastolic < bp.Stage1Diastolic:
		return FieldScore{Points: 1, Valid: true}
	default:
		return FieldScore{Points: 0, Valid: true}
	}
}

// ScoreTemperature grades a temperature reading in degrees Fahrenheit.
func (r Ruleset) ScoreTemperature(v models.ExternalValue) FieldScore {
	temp, ok := v.AsNumber()
	if !ok {
		return FieldScore{}
	}

	t := r.Temperature
	switch {
	case temp <= t.NormalMax:
		return FieldScore{Points: 0, Valid: true}
	case temp >= t.LowGradeMin && temp <= t.LowGradeMax:
		return FieldScore{Points: 1, Valid: true}
	default:
		return FieldScore{Points: 2, Valid: true}
	}
}

// HasFever reports whether the reading sits at or above the fever line. A
// reading that cannot be coerced is never a fever; it shows up only as a
// data quality issue.
func (r Ruleset) HasFever(v models.ExternalValue) bool {
	temp, ok := v.AsNumber()
	if !ok {
		return false
	}
	return temp >= r.Temperature.FeverLine
}

// ScoreAge grades a patient age in years. Anything coercible scores, zero
// and negative ages included.
func (r Ruleset) ScoreAge(v models.ExternalValue) FieldScore {
	age, ok := v.AsNumber()
	if !ok {
		return FieldScore{}
	}
	if age > r.Age.Senior {
		return FieldScore{Points: 2, Valid: true}
	}
	return FieldScore{Points: 1, Valid: true}
}
