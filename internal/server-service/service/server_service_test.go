package service

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "GSLM_Microservice/internal/server-service/errors"
	mockrepository "GSLM_Microservice/internal/server-service/mocks/repository"
	"GSLM_Microservice/internal/server-service/model"
	"GSLM_Microservice/internal/server-service/repository"
	"GSLM_Microservice/pkg/infra"
	"GSLM_Microservice/pkg/lifecycle"
	"GSLM_Microservice/pkg/mail"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestCreateServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mockrepository.NewMockServerRepository(ctrl)

	// Whatever state the caller supplies, a new record starts unprovisioned.
	mockRepo.EXPECT().
		CreateServer(gomock.Any(), model.Server{ServerName: "survival-1", ServerState: ""}).
		Return(model.Server{ID: 1, ServerName: "survival-1"}, nil)

	s := NewServerService(mockRepo, nil, nil, nil, zap.NewNop())
	created, err := s.CreateServer(context.Background(), model.Server{
		ServerName:  "survival-1",
		ServerState: lifecycle.ServerStarted,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestCreateServers(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mockrepository.NewMockServerRepository(ctrl)

	mockRepo.EXPECT().
		ImportServers(gomock.Any(), []model.Server{
			{ServerName: "survival-1"},
			{ServerName: "survival-2"},
		}).
		Return([]model.Server{{ID: 1, ServerName: "survival-1"}}, []model.Server{{ServerName: "survival-2"}}, nil)

	s := NewServerService(mockRepo, nil, nil, nil, zap.NewNop())
	inserted, nonInserted, err := s.CreateServers(context.Background(), []model.Server{
		{ServerName: "survival-1", ServerState: lifecycle.ServerStarted},
		{ServerName: "survival-2", ServerState: lifecycle.ServerStarting},
	})
	require.NoError(t, err)
	assert.Len(t, inserted, 1)
	assert.Len(t, nonInserted, 1)
}

func TestUpdateServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mockrepository.NewMockServerRepository(ctrl)

	// Administrative updates never carry a state into the repository.
	mockRepo.EXPECT().
		UpdateServer(gomock.Any(), model.Server{ID: 7, ServerName: "renamed", ServerState: ""}).
		Return(model.Server{ID: 7, ServerName: "renamed", ServerState: lifecycle.ServerStarted}, nil)

	s := NewServerService(mockRepo, nil, nil, nil, zap.NewNop())
	updated, err := s.UpdateServer(context.Background(), model.Server{
		ID:          7,
		ServerName:  "renamed",
		ServerState: lifecycle.ServerOffline,
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.ServerName)
	assert.Equal(t, lifecycle.ServerStarted, updated.ServerState)
}

func TestMarkServerOnline(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(mockRepo *mockrepository.MockServerRepository, writer *infra.MockKafkaWriter)
		expectedError error
	}{
		{
			name: "Success",
			setupMocks: func(mockRepo *mockrepository.MockServerRepository, writer *infra.MockKafkaWriter) {
				gomock.InOrder(
					mockRepo.EXPECT().SetServerOnline(gomock.Any(), int64(7), "i-0abc").Return(nil),
					writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil),
				)
			},
		},
		{
			name: "TransitionLogFailureIsSwallowed",
			setupMocks: func(mockRepo *mockrepository.MockServerRepository, writer *infra.MockKafkaWriter) {
				mockRepo.EXPECT().SetServerOnline(gomock.Any(), int64(7), "i-0abc").Return(nil)
				writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))
			},
		},
		{
			name: "StateConflict",
			setupMocks: func(mockRepo *mockrepository.MockServerRepository, writer *infra.MockKafkaWriter) {
				// No transition is logged when nothing changed.
				mockRepo.EXPECT().SetServerOnline(gomock.Any(), int64(7), "i-0abc").Return(lifecycle.ErrStateConflict)
			},
			expectedError: lifecycle.ErrStateConflict,
		},
		{
			name: "ServerNotFound",
			setupMocks: func(mockRepo *mockrepository.MockServerRepository, writer *infra.MockKafkaWriter) {
				mockRepo.EXPECT().SetServerOnline(gomock.Any(), int64(7), "i-0abc").Return(apperrors.ErrServerNotFound)
			},
			expectedError: apperrors.ErrServerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := mockrepository.NewMockServerRepository(ctrl)
			writer := infra.NewMockKafkaWriter(ctrl)
			tt.setupMocks(mockRepo, writer)

			s := NewServerService(mockRepo, nil, nil, writer, zap.NewNop())
			err := s.MarkServerOnline(context.Background(), 7, "i-0abc")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetServerTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTransitionRepo := mockrepository.NewMockTransitionRepository(ctrl)

	transitions := []model.Transition{
		{ServerID: 7, FromState: lifecycle.ServerStarting, ToState: lifecycle.ServerStarted, Actor: "bootstrap"},
	}
	mockTransitionRepo.EXPECT().GetServerTransitions(gomock.Any(), int64(7), 50).Return(transitions, nil)

	s := NewServerService(nil, mockTransitionRepo, nil, nil, zap.NewNop())
	got, err := s.GetServerTransitions(context.Background(), 7, 50)
	require.NoError(t, err)
	assert.Equal(t, transitions, got)
}

func TestReportServersActivity(t *testing.T) {
	startDate := time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	activity := repository.TransitionActivity{
		TotalTransitions: 12,
		StartedCnt:       4,
		OnlineCnt:        3,
		StoppedCnt:       5,
		ActiveServersCnt: 2,
	}

	tests := []struct {
		name          string
		setupMocks    func(mockTransitionRepo *mockrepository.MockTransitionRepository, mockMailSender *mail.MockSender)
		expectedError bool
	}{
		{
			name: "Success",
			setupMocks: func(mockTransitionRepo *mockrepository.MockTransitionRepository, mockMailSender *mail.MockSender) {
				mockTransitionRepo.EXPECT().GetTransitionActivity(gomock.Any(), startDate, endDate).Return(activity, nil)
				mockMailSender.EXPECT().
					SendMail([]string{"admin@example.com"}, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
					DoAndReturn(func(to []string, subject, htmlBody, textBody string, attachments []mail.Attachment) error {
						assert.Contains(t, subject, "Servers Activity Report")
						assert.Contains(t, textBody, "Total Transitions: 12")
						assert.Contains(t, textBody, "Provisioning Requests: 4")
						assert.Contains(t, textBody, "Servers Came Online: 3")
						assert.Contains(t, textBody, "Servers Taken Offline: 5")
						assert.Contains(t, textBody, "Active Servers: 2")
						assert.Contains(t, htmlBody, "<table")
						return nil
					})
			},
		},
		{
			name: "ActivityQueryFailure",
			setupMocks: func(mockTransitionRepo *mockrepository.MockTransitionRepository, mockMailSender *mail.MockSender) {
				mockTransitionRepo.EXPECT().GetTransitionActivity(gomock.Any(), startDate, endDate).
					Return(repository.TransitionActivity{}, errors.New("search failed"))
			},
			expectedError: true,
		},
		{
			name: "MailFailure",
			setupMocks: func(mockTransitionRepo *mockrepository.MockTransitionRepository, mockMailSender *mail.MockSender) {
				mockTransitionRepo.EXPECT().GetTransitionActivity(gomock.Any(), startDate, endDate).Return(activity, nil)
				mockMailSender.EXPECT().
					SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
					Return(errors.New("smtp unavailable"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockTransitionRepo := mockrepository.NewMockTransitionRepository(ctrl)
			mockMailSender := mail.NewMockSender(ctrl)
			tt.setupMocks(mockTransitionRepo, mockMailSender)

			s := NewServerService(nil, mockTransitionRepo, mockMailSender, nil, zap.NewNop())
			err := s.ReportServersActivity(context.Background(), startDate, endDate, "admin@example.com")

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
