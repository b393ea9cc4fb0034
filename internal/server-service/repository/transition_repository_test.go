package repository

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"GSLM_Microservice/internal/server-service/model"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRoundTripper struct {
	Response *http.Response
	Err      error
}

func (m *mockRoundTripper) RoundTrip(_ *http.Request) (*http.Response, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

func newMockEsClient(statusCode int, body string, err error) (*elasticsearch.Client, error) {
	if err != nil {
		return elasticsearch.NewClient(elasticsearch.Config{
			Transport: &mockRoundTripper{Err: err},
		})
	}
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("X-Elastic-Product", "Elasticsearch")

	return elasticsearch.NewClient(elasticsearch.Config{
		Transport: &mockRoundTripper{
			Response: &http.Response{
				StatusCode: statusCode,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     header,
			},
		},
	})
}

func TestTransitionRepository_GetServerTransitions(t *testing.T) {
	successBody := `{
		"hits": {
			"hits": [
				{
					"_source": {
						"server_id": 7,
						"from_state": "SERVER_STARTING",
						"to_state": "SERVER_STARTED",
						"actor": "bootstrap",
						"timestamp": "2025-03-14T12:05:00Z"
					}
				},
				{
					"_source": {
						"server_id": 7,
						"from_state": "SERVER_OFFLINE",
						"to_state": "SERVER_START_REQUESTED",
						"actor": "scheduler",
						"timestamp": "2025-03-14T12:00:00Z"
					}
				}
			]
		}
	}`

	esErrorBody := `{
		"error": {
			"type": "search_phase_exception",
			"reason": "bad query"
		}
	}`

	testCases := []struct {
		name           string
		mockStatusCode int
		mockBody       string
		mockErr        error
		output         []model.Transition
		expectErr      bool
	}{
		{
			name:           "Success Should return transitions newest first",
			mockStatusCode: http.StatusOK,
			mockBody:       successBody,
			output: []model.Transition{
				{
					ServerID:  7,
					FromState: "SERVER_STARTING",
					ToState:   "SERVER_STARTED",
					Actor:     "bootstrap",
					Timestamp: time.Date(2025, time.March, 14, 12, 5, 0, 0, time.UTC),
				},
				{
					ServerID:  7,
					FromState: "SERVER_OFFLINE",
					ToState:   "SERVER_START_REQUESTED",
					Actor:     "scheduler",
					Timestamp: time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC),
				},
			},
			expectErr: false,
		},
		{
			name:           "Success Should return empty slice when the index has no hits",
			mockStatusCode: http.StatusOK,
			mockBody:       `{"hits": {"hits": []}}`,
			output:         []model.Transition{},
			expectErr:      false,
		},
		{
			name:      "Error Elasticsearch client transport error",
			mockErr:   errors.New("network connection failed"),
			output:    nil,
			expectErr: true,
		},
		{
			name:           "Error Elasticsearch API returns an error",
			mockStatusCode: http.StatusBadRequest,
			mockBody:       esErrorBody,
			output:         nil,
			expectErr:      true,
		},
		{
			name:           "Error Failed to decode Elasticsearch error response",
			mockStatusCode: http.StatusBadRequest,
			mockBody:       `{"error": "invalid json"`,
			output:         nil,
			expectErr:      true,
		},
		{
			name:           "Error Failed to decode success response",
			mockStatusCode: http.StatusOK,
			mockBody:       `{"hits": "invalid json"`,
			output:         nil,
			expectErr:      true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockEsClient, err := newMockEsClient(tc.mockStatusCode, tc.mockBody, tc.mockErr)
			require.NoError(t, err)

			repo := NewTransitionRepository(mockEsClient)

			got, err := repo.GetServerTransitions(context.Background(), 7, 50)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.output, got)
		})
	}
}

func TestTransitionRepository_GetTransitionActivity(t *testing.T) {
	startTime := time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC)
	endTime := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

	// The SERVER_STOP_REQUESTED bucket maps to no report counter and must be
	// ignored rather than miscounted.
	successBody := `{
		"hits": {
			"total": { "value": 12 }
		},
		"aggregations": {
			"to_states": {
				"buckets": [
					{ "key": "SERVER_STARTING", "doc_count": 4 },
					{ "key": "SERVER_STARTED", "doc_count": 3 },
					{ "key": "SERVER_OFFLINE", "doc_count": 5 },
					{ "key": "SERVER_STOP_REQUESTED", "doc_count": 6 }
				]
			},
			"active_servers": { "value": 2 }
		}
	}`

	esErrorBody := `{
		"error": {
			"type": "search_phase_exception",
			"reason": "bad query"
		}
	}`

	testCases := []struct {
		name           string
		mockStatusCode int
		mockBody       string
		mockErr        error
		output         TransitionActivity
		expectErr      bool
	}{
		{
			name:           "Success Should return aggregated transition activity",
			mockStatusCode: http.StatusOK,
			mockBody:       successBody,
			output: TransitionActivity{
				TotalTransitions: 12,
				StartedCnt:       4,
				OnlineCnt:        3,
				StoppedCnt:       5,
				ActiveServersCnt: 2,
			},
			expectErr: false,
		},
		{
			name:           "Success Should return zero counts for an empty range",
			mockStatusCode: http.StatusOK,
			mockBody:       `{"hits": {"total": {"value": 0}}, "aggregations": {"to_states": {"buckets": []}, "active_servers": {"value": 0}}}`,
			output:         TransitionActivity{},
			expectErr:      false,
		},
		{
			name:      "Error Elasticsearch client transport error",
			mockErr:   errors.New("network connection failed"),
			output:    TransitionActivity{},
			expectErr: true,
		},
		{
			name:           "Error Elasticsearch API returns an error",
			mockStatusCode: http.StatusBadRequest,
			mockBody:       esErrorBody,
			output:         TransitionActivity{},
			expectErr:      true,
		},
		{
			name:           "Error Failed to decode Elasticsearch error response",
			mockStatusCode: http.StatusBadRequest,
			mockBody:       `{"error": "invalid json"`,
			output:         TransitionActivity{},
			expectErr:      true,
		},
		{
			name:           "Error Failed to decode success response",
			mockStatusCode: http.StatusOK,
			mockBody:       `{"aggregations": "invalid json"`,
			output:         TransitionActivity{},
			expectErr:      true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockEsClient, err := newMockEsClient(tc.mockStatusCode, tc.mockBody, tc.mockErr)
			require.NoError(t, err)

			repo := NewTransitionRepository(mockEsClient)

			got, err := repo.GetTransitionActivity(context.Background(), startTime, endTime)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.output, got)
		})
	}
}
