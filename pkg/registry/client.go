package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/ksense-health/assessment/pkg/common/models"
)

// pageLimit is fixed by the listing contract.
const pageLimit = 20

// Client talks to the patient registry API. Every request carries the static
// API key header; no retries are configured because a failed call aborts the
// whole run.
type Client struct {
	http *resty.Client
	log  *logrus.Entry
}

func NewClient(baseURL, apiKey string, timeout time.Duration, log *logrus.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("x-api-key", apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http: httpClient,
		log:  log.WithField("component", "registry"),
	}
}

type listPatientsResponse struct {
	Data       []models.PatientRecord `json:"data"`
	Pagination pagination             `json:"pagination"`
}

type pagination struct {
	HasNext bool `json:"hasNext"`
}

// FetchAllPatients walks the paged listing from page 1 until the server
// reports no further pages, concatenating records in response order. The
// only stop condition besides an error is the server's own hasNext signal.
func (c *Client) FetchAllPatients(ctx context.Context) ([]models.PatientRecord, error) {
	var all []models.PatientRecord

	for page := 1; ; page++ {
		var payload listPatientsResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"page":  strconv.Itoa(page),
				"limit": strconv.Itoa(pageLimit),
			}).
			SetResult(&payload).
			Get("/patients")
		if err != nil {
			return nil, fmt.Errorf("fetch patients page %d: %w", page, err)
		}
		if resp.IsError() {
			return nil, &APIError{
				Endpoint:   "/patients",
				StatusCode: resp.StatusCode(),
				Body:       string(resp.Body()),
			}
		}

		all = append(all, payload.Data...)
		c.log.WithFields(logrus.Fields{
			"page":    page,
			"records": len(payload.Data),
			"total":   len(all),
		}).Info("fetched patient page")

		if !payload.Pagination.HasNext {
			break
		}
	}

	c.log.WithField("total", len(all)).Info("patient retrieval complete")
	return all, nil
}

// SubmitAssessment posts the three membership lists and returns the server's
// result document untouched.
func (c *Client) SubmitAssessment(ctx context.Context, results models.AssessmentResults) (json.RawMessage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(results).
		Post("/submit-assessment")
	if err != nil {
		return nil, fmt.Errorf("submit assessment: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{
			Endpoint:   "/submit-assessment",
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
		}
	}

	return json.RawMessage(resp.Body()), nil
}
