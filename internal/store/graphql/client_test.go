package graphql_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/config"
	"jobdesk/internal/domain"
	"jobdesk/internal/store/graphql"
)

func newTestClient(serverURL string) *graphql.Client {
	return graphql.NewClient(&config.GraphQLConfig{
		Endpoint:    serverURL,
		AdminSecret: "test-admin-secret",
		TimeoutSecs: 5,
	})
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestUpdateApplication_Success(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-admin-secret", r.Header.Get("x-hasura-admin-secret"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_, _ = w.Write([]byte(`{"data":{"update_applications_by_pk":{"id":"app-1"}}}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	profile := &domain.CandidateProfile{
		Name:              strPtr("Jane Doe"),
		Email:             strPtr("jane@doe.dev"),
		YearsOfExperience: intPtr(7),
		Skills:            []string{"Go", "Kubernetes"},
		MatchScore:        intPtr(84),
	}

	err := c.UpdateApplication(context.Background(), "app-1", profile)

	require.NoError(t, err)
	assert.Contains(t, captured["query"], "update_applications_by_pk")

	vars := captured["variables"].(map[string]interface{})
	assert.Equal(t, "app-1", vars["id"])
	assert.Equal(t, "Jane Doe", vars["name"])
	assert.Equal(t, float64(7), vars["years_of_experience"])
	assert.Equal(t, []interface{}{"Go", "Kubernetes"}, vars["skills"])
	assert.Equal(t, float64(84), vars["match_score"])

	// Absent fields are sent as explicit nulls, overwriting stale values.
	assert.Contains(t, vars, "linkedin")
	assert.Nil(t, vars["linkedin"])
	assert.Contains(t, vars, "website")
	assert.Nil(t, vars["website"])
}

func TestUpdateApplication_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"update_applications_by_pk":null}}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	err := c.UpdateApplication(context.Background(), "missing-id", &domain.CandidateProfile{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "application missing-id not found")
}

func TestUpdateApplication_GraphQLError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"field 'match_score' not found"}]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	err := c.UpdateApplication(context.Background(), "app-1", &domain.CandidateProfile{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "graphql error: field 'match_score' not found")
}

func TestUpdateApplication_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"invalid admin secret"}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	err := c.UpdateApplication(context.Background(), "app-1", &domain.CandidateProfile{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestGetApplicationJob_Success(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"data":{"applications_by_pk":{"job":{"title":"SRE","location":"NYC","description":"Keep it up"}}}}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	job, err := c.GetApplicationJob(context.Background(), "app-1")

	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, "SRE", job.Title)
	assert.Equal(t, "NYC", job.Location)
	assert.Equal(t, "Keep it up", job.Description)

	assert.Contains(t, captured["query"], "applications_by_pk")
	vars := captured["variables"].(map[string]interface{})
	assert.Equal(t, "app-1", vars["id"])
}

func TestGetApplicationJob_NoJob(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"applications_by_pk":{"job":null}}}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	job, err := c.GetApplicationJob(context.Background(), "app-1")

	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestGetApplicationJob_ApplicationNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"applications_by_pk":null}}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	job, err := c.GetApplicationJob(context.Background(), "ghost")

	assert.Nil(t, job)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "application ghost not found")
}
