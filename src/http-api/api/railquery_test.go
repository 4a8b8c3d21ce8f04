package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jack-barr3tt/railchat/src/assistant"
	"github.com/jack-barr3tt/railchat/src/common/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPipeline struct {
	answer *assistant.Answer
	err    error

	gotQuery string
}

func (s *stubPipeline) HandleRailQuery(_ context.Context, query string) (*assistant.Answer, error) {
	s.gotQuery = query
	return s.answer, s.err
}

func newTestApp(pipeline Pipeline) *fiber.App {
	server := &APIServer{
		Assistant: pipeline,
		Logger:    zap.NewNop().Sugar(),
	}

	app := fiber.New()
	app.Get("/health", server.GetHealth)
	app.Post("/api/rail-query", server.PostRailQuery)
	return app
}

func postQuery(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/rail-query", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestPostRailQuerySuccess(t *testing.T) {
	pipeline := &stubPipeline{
		answer: &assistant.Answer{
			Response: "The next train departs at 2:32pm.",
			RawData: &types.TimetableResult{
				QueryInfo: types.QueryInfo{Origin: "London", Destination: "Manchester"},
			},
		},
	}
	app := newTestApp(pipeline)

	resp := postQuery(t, app, `{"query": "next train from London to Manchester"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "next train from London to Manchester", pipeline.gotQuery)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body, "response")
	assert.Contains(t, body, "raw_data")
}

func TestPostRailQueryOmitsRawDataWhenAbsent(t *testing.T) {
	app := newTestApp(&stubPipeline{
		answer: &assistant.Answer{Response: "Sorry, I couldn't find a station matching \"Lundun\"."},
	})

	resp := postQuery(t, app, `{"query": "next train from Lundun to Manchester"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body, "response")
	assert.NotContains(t, body, "raw_data")
}

func TestPostRailQueryRejectsBadBody(t *testing.T) {
	app := newTestApp(&stubPipeline{})

	for _, body := range []string{"not json", `{"query": ""}`, `{"query": "   "}`} {
		resp := postQuery(t, app, body)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
}

func TestPostRailQueryPipelineError(t *testing.T) {
	app := newTestApp(&stubPipeline{err: errors.New("completion service error: status 500")})

	resp := postQuery(t, app, `{"query": "next train from London to Manchester"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Pipeline error", body.Error)
	require.NotNil(t, body.Stack)
	assert.Contains(t, *body.Stack, "completion service error")
}

func TestGetHealth(t *testing.T) {
	app := newTestApp(&stubPipeline{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body.Status)
}
