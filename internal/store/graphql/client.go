// Package graphql implements the bridge to the external application data
// store, a Hasura-style GraphQL endpoint reached with an admin secret.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"jobdesk/internal/config"
	"jobdesk/internal/domain"
	"jobdesk/internal/port"
)

const updateApplicationMutation = `mutation UpdateApplication(
  $id: uuid!
  $name: String
  $email: String
  $linkedin: String
  $website: String
  $years_of_experience: Int
  $skills: jsonb
  $relevant_skills: jsonb
  $match_score: Int
) {
  update_applications_by_pk(
    pk_columns: { id: $id }
    _set: {
      name: $name
      email: $email
      linkedin: $linkedin
      website: $website
      years_of_experience: $years_of_experience
      skills: $skills
      relevant_skills: $relevant_skills
      match_score: $match_score
    }
  ) {
    id
  }
}`

const applicationJobQuery = `query GetApplicationJobInfo($id: uuid!) {
  applications_by_pk(id: $id) {
    job {
      title
      location
      description
    }
  }
}`

// Client is an ApplicationStore backed by the job board's GraphQL API.
type Client struct {
	endpoint    string
	adminSecret string
	client      *http.Client
}

// NewClient creates a GraphQL-backed ApplicationStore.
func NewClient(cfg *config.GraphQLConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		endpoint:    cfg.Endpoint,
		adminSecret: cfg.AdminSecret,
		client:      &http.Client{Timeout: timeout},
	}
}

// UpdateApplication writes the extracted fields to the application row.
// Absent profile fields are written as JSON null, matching the
// write-through-cache semantics of the extraction pipeline.
func (c *Client) UpdateApplication(ctx context.Context, applicationID string, profile *domain.CandidateProfile) error {
	variables := map[string]interface{}{
		"id":                  applicationID,
		"name":                profile.Name,
		"email":               profile.Email,
		"linkedin":            profile.Linkedin,
		"website":             profile.Website,
		"years_of_experience": profile.YearsOfExperience,
		"skills":              profile.Skills,
		"relevant_skills":     profile.RelevantSkills,
		"match_score":         profile.MatchScore,
	}

	var result struct {
		UpdateApplicationsByPk *struct {
			ID string `json:"id"`
		} `json:"update_applications_by_pk"`
	}
	if err := c.do(ctx, updateApplicationMutation, variables, &result); err != nil {
		return err
	}
	if result.UpdateApplicationsByPk == nil {
		return fmt.Errorf("application %s not found", applicationID)
	}
	return nil
}

// GetApplicationJob reads the job posting an application belongs to, for
// relevance scoring. Returns nil when the application has no job.
func (c *Client) GetApplicationJob(ctx context.Context, applicationID string) (*domain.JobContext, error) {
	variables := map[string]interface{}{"id": applicationID}

	var result struct {
		ApplicationsByPk *struct {
			Job *domain.JobContext `json:"job"`
		} `json:"applications_by_pk"`
	}
	if err := c.do(ctx, applicationJobQuery, variables, &result); err != nil {
		return nil, err
	}
	if result.ApplicationsByPk == nil {
		return nil, fmt.Errorf("application %s not found", applicationID)
	}
	return result.ApplicationsByPk.Job, nil
}

// do posts one GraphQL operation and decodes data into out. GraphQL-level
// errors arriving in a 200 body are returned as errors.
func (c *Client) do(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	reqBody, err := json.Marshal(map[string]interface{}{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-hasura-admin-secret", c.adminSecret)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling graphql API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("graphql API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("graphql error: %s", envelope.Errors[0].Message)
	}
	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("unmarshaling data: %w", err)
		}
	}
	return nil
}

var _ port.ApplicationStore = (*Client)(nil)
