package assessment

import (
	"github.com/ksense-health/assessment/pkg/common/models"
)

// Processor scores patient records against a ruleset and accumulates the
// three membership sets. It carries no state between records, so scoring
// order never changes the outcome.
type Processor struct {
	rules Ruleset
}

func NewProcessor(rules Ruleset) *Processor {
	return &Processor{rules: rules}
}

// Assess scores every record with a usable identifier. Records without one
// are skipped; they could never be reported. The three classifications are
// independent: a patient may land in any combination of sets.
func (p *Processor) Assess(records []models.PatientRecord) models.AssessmentResults {
	results := models.NewAssessmentResults()

	for _, record := range records {
		id := record.ID()
		if id == "" {
			continue
		}

		bp := p.rules.ScoreBloodPressure(record.BloodPressure)
		temp := p.rules.ScoreTemperature(record.Temperature)
		age := p.rules.ScoreAge(record.Age)

		if !bp.Valid || !temp.Valid || !age.Valid {
			results.DataQualityIssues.Add(id)
		}

		if p.rules.HasFever(record.Temperature) {
			results.Fever.Add(id)
		}

		if bp.Points+temp.Points+age.Points >= p.rules.HighRiskTotal {
			results.HighRisk.Add(id)
		}
	}

	return results
}
