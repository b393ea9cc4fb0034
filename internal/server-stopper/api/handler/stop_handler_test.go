package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "GSLM_Microservice/internal/server-stopper/errors"
	mockorchestrator "GSLM_Microservice/internal/server-stopper/mocks/orchestrator"
	"GSLM_Microservice/internal/server-stopper/orchestrator"
	"GSLM_Microservice/pkg/lifecycle"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupTestContext(body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/stop", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestStopServer(t *testing.T) {
	validBody := []byte(`{"id":7,"server_state":"SERVER_STARTED"}`)

	tests := []struct {
		name            string
		body            []byte
		setupMocks      func(mockOrch *mockorchestrator.MockOrchestrator)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "InvalidJSONBody",
			body:            []byte(`{"id":`),
			setupMocks:      func(mockOrch *mockorchestrator.MockOrchestrator) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name:            "MissingFields",
			body:            []byte(`{"id":7}`),
			setupMocks:      func(mockOrch *mockorchestrator.MockOrchestrator) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "The id and server_state fields are required",
		},
		{
			name: "StatePrecondition",
			body: []byte(`{"id":7,"server_state":"SERVER_STARTING"}`),
			setupMocks: func(mockOrch *mockorchestrator.MockOrchestrator) {
				mockOrch.EXPECT().
					StopServer(gomock.Any(), orchestrator.StopRequest{ID: 7, ObservedState: lifecycle.ServerStarting}).
					Return(orchestrator.StopResult{}, lifecycle.PreconditionError(lifecycle.ServerStarting, "deprovisioning"))
			},
			expectedStatus:  http.StatusConflict,
			expectedMessage: "Server state does not permit stopping",
		},
		{
			name: "UnknownState",
			body: []byte(`{"id":7,"server_state":"RUNNING"}`),
			setupMocks: func(mockOrch *mockorchestrator.MockOrchestrator) {
				mockOrch.EXPECT().
					StopServer(gomock.Any(), gomock.Any()).
					Return(orchestrator.StopResult{}, lifecycle.UnknownStateError("RUNNING"))
			},
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: "Server state is not a known lifecycle state",
		},
		{
			name: "ServerNotFound",
			body: validBody,
			setupMocks: func(mockOrch *mockorchestrator.MockOrchestrator) {
				mockOrch.EXPECT().
					StopServer(gomock.Any(), gomock.Any()).
					Return(orchestrator.StopResult{}, apperrors.ErrServerNotFound)
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Server not found",
		},
		{
			name: "MissingInstanceID",
			body: validBody,
			setupMocks: func(mockOrch *mockorchestrator.MockOrchestrator) {
				mockOrch.EXPECT().
					StopServer(gomock.Any(), gomock.Any()).
					Return(orchestrator.StopResult{}, apperrors.ErrMissingInstanceID)
			},
			expectedStatus:  http.StatusConflict,
			expectedMessage: "Server record has no instance to stop",
		},
		{
			name: "InternalError",
			body: validBody,
			setupMocks: func(mockOrch *mockorchestrator.MockOrchestrator) {
				mockOrch.EXPECT().
					StopServer(gomock.Any(), gomock.Any()).
					Return(orchestrator.StopResult{}, errors.New("ssm unavailable"))
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockOrch := mockorchestrator.NewMockOrchestrator(ctrl)
			tt.setupMocks(mockOrch)

			c, w := setupTestContext(tt.body)
			h := NewStopHandler(zap.NewNop(), mockOrch)
			h.StopServer()(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var resp map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMessage, resp["message"])
		})
	}
}

func TestStopServerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOrch := mockorchestrator.NewMockOrchestrator(ctrl)
	mockOrch.EXPECT().
		StopServer(gomock.Any(), orchestrator.StopRequest{ID: 7, ObservedState: lifecycle.ServerStarted}).
		Return(orchestrator.StopResult{Status: "stopping", CommandID: "cmd-123"}, nil)

	c, w := setupTestContext([]byte(`{"id":7,"server_state":"SERVER_STARTED"}`))
	h := NewStopHandler(zap.NewNop(), mockOrch)
	h.StopServer()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "stopping", resp["status"])
	assert.Equal(t, "cmd-123", resp["command_id"])
}
