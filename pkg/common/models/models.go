package models

import (
	"encoding/json"
	"sort"
)

// PatientRecord is one patient object as delivered by the registry listing.
// Every field is semi-structured by design: the upstream feed routinely ships
// absent, null, or wrongly typed vitals and those records must still flow
// through scoring.
type PatientRecord struct {
	PatientID     ExternalValue `json:"patient_id"`
	BloodPressure ExternalValue `json:"blood_pressure"`
	Temperature   ExternalValue `json:"temperature"`
	Age           ExternalValue `json:"age"`
}

// ID returns the usable patient identifier, or "" when the record has none.
// Only a non-empty JSON string counts as an identifier.
func (p PatientRecord) ID() string {
	id, ok := p.PatientID.AsString()
	if !ok {
		return ""
	}
	return id
}

// StringSet is a set of patient identifiers.
type StringSet map[string]struct{}

func NewStringSet() StringSet {
	return make(StringSet)
}

func (s StringSet) Add(id string) {
	s[id] = struct{}{}
}

func (s StringSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Values returns the members sorted, so serialized output is deterministic.
func (s StringSet) Values() []string {
	values := make([]string, 0, len(s))
	for id := range s {
		values = append(values, id)
	}
	sort.Strings(values)
	return values
}

// AssessmentResults holds the three membership sets computed for one run.
// A patient may appear in any combination of them.
type AssessmentResults struct {
	HighRisk          StringSet
	Fever             StringSet
	DataQualityIssues StringSet
}

func NewAssessmentResults() AssessmentResults {
	return AssessmentResults{
		HighRisk:          NewStringSet(),
		Fever:             NewStringSet(),
		DataQualityIssues: NewStringSet(),
	}
}

type submissionPayload struct {
	HighRiskPatients  []string `json:"high_risk_patients"`
	FeverPatients     []string `json:"fever_patients"`
	DataQualityIssues []string `json:"data_quality_issues"`
}

// MarshalJSON serializes the sets under the fixed submission keys. Empty sets
// become empty arrays, never null.
func (r AssessmentResults) MarshalJSON() ([]byte, error) {
	return json.Marshal(submissionPayload{
		HighRiskPatients:  r.HighRisk.Values(),
		FeverPatients:     r.Fever.Values(),
		DataQualityIssues: r.DataQualityIssues.Values(),
	})
}
