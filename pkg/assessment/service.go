package assessment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ksense-health/assessment/pkg/common/models"
)

// PatientSource supplies the complete patient listing.
type PatientSource interface {
	FetchAllPatients(ctx context.Context) ([]models.PatientRecord, error)
}

// ResultSink receives the computed membership lists and returns the
// submission outcome document as delivered by the server.
type ResultSink interface {
	SubmitAssessment(ctx context.Context, results models.AssessmentResults) (json.RawMessage, error)
}

// Service runs one complete assessment pass: retrieve, score, submit.
type Service struct {
	source    PatientSource
	sink      ResultSink
	processor *Processor
	log       *logrus.Entry
}

func NewService(source PatientSource, sink ResultSink, rules Ruleset, log *logrus.Logger) *Service {
	return &Service{
		source:    source,
		sink:      sink,
		processor: NewProcessor(rules),
		log:       log.WithField("component", "assessment"),
	}
}

// Run executes the pipeline. Submission is all-or-nothing: a failure at any
// stage aborts the run and nothing partial is reported upstream.
func (s *Service) Run(ctx context.Context) (json.RawMessage, error) {
	runLog := s.log.WithField("run_id", uuid.New().String())

	runLog.Info("fetching patients")
	patients, err := s.source.FetchAllPatients(ctx)
	if err != nil {
		return nil, fmt.Errorf("retrieve patients: %w", err)
	}

	runLog.WithField("patients", len(patients)).Info("scoring patients")
	results := s.processor.Assess(patients)

	runLog.WithFields(logrus.Fields{
		"high_risk":           len(results.HighRisk),
		"fever":               len(results.Fever),
		"data_quality_issues": len(results.DataQualityIssues),
	}).Info("assessment computed")

	runLog.Info("submitting results")
	outcome, err := s.sink.SubmitAssessment(ctx, results)
	if err != nil {
		return nil, fmt.Errorf("submit results: %w", err)
	}

	runLog.Info("assessment submitted")
	return outcome, nil
}
