package assessment

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Ruleset holds the clinical thresholds the scorers evaluate against. The
// compiled-in defaults are the operative values; a YAML file can override
// individual thresholds for operational tuning.
type Ruleset struct {
	BloodPressure BloodPressureThresholds `yaml:"blood_pressure"`
	Temperature   TemperatureThresholds   `yaml:"temperature"`
	Age           AgeThresholds           `yaml:"age"`

	// HighRiskTotal is the minimum summed contribution that places a
	// patient in the high-risk set.
	HighRiskTotal int `yaml:"high_risk_total"`
}

type BloodPressureThresholds struct {
	Stage2Systolic  float64 `yaml:"stage2_systolic"`
	Stage2Diastolic float64 `yaml:"stage2_diastolic"`
	Stage1Systolic  float64 `yaml:"stage1_systolic"`
	Stage1Diastolic float64 `yaml:"stage1_diastolic"`
	ElevatedMin     float64 `yaml:"elevated_min"`
	ElevatedMax     float64 `yaml:"elevated_max"`
}

type TemperatureThresholds struct {
	NormalMax   float64 `yaml:"normal_max"`
	LowGradeMin float64 `yaml:"low_grade_min"`
	LowGradeMax float64 `yaml:"low_grade_max"`
	FeverLine   float64 `yaml:"fever_line"`
}

type AgeThresholds struct {
	// Senior is exclusive: ages strictly above it score higher.
	Senior float64 `yaml:"senior"`
}

func DefaultRuleset() Ruleset {
	return Ruleset{
		BloodPressure: BloodPressureThresholds{
			Stage2Systolic:  140,
			Stage2Diastolic: 90,
			Stage1Systolic:  130,
			Stage1Diastolic: 80,
			ElevatedMin:     120,
			ElevatedMax:     129,
		},
		Temperature: TemperatureThresholds{
			NormalMax:   99.5,
			LowGradeMin: 99.6,
			LowGradeMax: 100.9,
			FeverLine:   99.6,
		},
		Age: AgeThresholds{
			Senior: 65,
		},
		HighRiskTotal: 4,
	}
}

// LoadRuleset reads threshold overrides from path, layered over the defaults.
// An empty path yields the defaults unchanged.
func LoadRuleset(path string) (Ruleset, error) {
	rules := DefaultRuleset()
	if path == "" {
		return rules, nil
	}
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return rules, fmt.Errorf("read risk ruleset: %w", err)
	}
	if err := yaml.Unmarshal(content, &rules); err != nil {
		return Ruleset{}, fmt.Errorf("parse risk ruleset: %w", err)
	}
	return rules, nil
}
