package orchestrator

import (
	"context"
	"errors"
	"testing"

	apperrors "GSLM_Microservice/internal/server-stopper/errors"
	mockrepository "GSLM_Microservice/internal/server-stopper/mocks/repository"
	"GSLM_Microservice/internal/server-stopper/repository"
	"GSLM_Microservice/pkg/infra"
	"GSLM_Microservice/pkg/lifecycle"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeSSMClient struct {
	sendCommand func(ctx context.Context, params *ssm.SendCommandInput) (*ssm.SendCommandOutput, error)
}

func (f *fakeSSMClient) SendCommand(ctx context.Context, params *ssm.SendCommandInput, _ ...func(*ssm.Options)) (*ssm.SendCommandOutput, error) {
	return f.sendCommand(ctx, params)
}

func unreachableSSM(t *testing.T) *fakeSSMClient {
	return &fakeSSMClient{
		sendCommand: func(ctx context.Context, params *ssm.SendCommandInput) (*ssm.SendCommandOutput, error) {
			t.Fatal("SendCommand must not be called")
			return nil, nil
		},
	}
}

func commandOutput(commandID string) *ssm.SendCommandOutput {
	return &ssm.SendCommandOutput{
		Command: &ssmtypes.Command{CommandId: aws.String(commandID)},
	}
}

func TestStopServerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mockrepository.NewMockServerRepository(ctrl)
	transitionWriter := infra.NewMockKafkaWriter(ctrl)

	mockRepo.EXPECT().GetStopTarget(gomock.Any(), int64(7)).Return(repository.StopTarget{
		ServerState:   lifecycle.ServerStarted,
		EC2InstanceID: "i-0abc",
	}, nil)
	mockRepo.EXPECT().MarkOffline(gomock.Any(), int64(7)).Return(nil)
	transitionWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	var commandInput *ssm.SendCommandInput
	ssmClient := &fakeSSMClient{
		sendCommand: func(ctx context.Context, params *ssm.SendCommandInput) (*ssm.SendCommandOutput, error) {
			commandInput = params
			return commandOutput("cmd-123"), nil
		},
	}

	o := NewOrchestrator(mockRepo, ssmClient, transitionWriter, zap.NewNop())
	result, err := o.StopServer(context.Background(), StopRequest{ID: 7, ObservedState: lifecycle.ServerStarted})
	require.NoError(t, err)

	assert.Equal(t, StopResult{Status: "stopping", CommandID: "cmd-123"}, result)

	require.NotNil(t, commandInput)
	assert.Equal(t, "AWS-RunShellScript", *commandInput.DocumentName)
	assert.Equal(t, []string{"i-0abc"}, commandInput.InstanceIds)
	assert.Equal(t, []string{
		"sudo shutdown -h +5",
		"sudo sh /home/ec2-user/server/shutdown.sh",
	}, commandInput.Parameters["commands"])
}

func TestStopServerRejections(t *testing.T) {
	tests := []struct {
		name          string
		observedState string
		setupMocks    func(mockRepo *mockrepository.MockServerRepository)
		expectedError error
	}{
		{
			name:          "UnknownObservedState",
			observedState: "RUNNING",
			setupMocks:    func(mockRepo *mockrepository.MockServerRepository) {},
			expectedError: lifecycle.ErrUnknownServerState,
		},
		{
			name:          "StillStarting",
			observedState: lifecycle.ServerStarting,
			setupMocks:    func(mockRepo *mockrepository.MockServerRepository) {},
			expectedError: lifecycle.ErrStatePrecondition,
		},
		{
			name:          "AlreadyOffline",
			observedState: lifecycle.ServerOffline,
			setupMocks:    func(mockRepo *mockrepository.MockServerRepository) {},
			expectedError: lifecycle.ErrStatePrecondition,
		},
		{
			name:          "ServerNotFound",
			observedState: lifecycle.ServerStarted,
			setupMocks: func(mockRepo *mockrepository.MockServerRepository) {
				mockRepo.EXPECT().GetStopTarget(gomock.Any(), int64(7)).Return(repository.StopTarget{}, apperrors.ErrServerNotFound)
			},
			expectedError: apperrors.ErrServerNotFound,
		},
		{
			name:          "MissingInstanceID",
			observedState: lifecycle.ServerStarted,
			setupMocks: func(mockRepo *mockrepository.MockServerRepository) {
				mockRepo.EXPECT().GetStopTarget(gomock.Any(), int64(7)).Return(repository.StopTarget{
					ServerState: lifecycle.ServerStarted,
				}, nil)
			},
			expectedError: apperrors.ErrMissingInstanceID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := mockrepository.NewMockServerRepository(ctrl)
			tt.setupMocks(mockRepo)

			o := NewOrchestrator(mockRepo, unreachableSSM(t), infra.NewMockKafkaWriter(ctrl), zap.NewNop())
			result, err := o.StopServer(context.Background(), StopRequest{ID: 7, ObservedState: tt.observedState})
			assert.ErrorIs(t, err, tt.expectedError)
			assert.Empty(t, result)
		})
	}
}

func TestStopServerCommandFailure(t *testing.T) {
	tests := []struct {
		name        string
		ssmResponse *ssm.SendCommandOutput
		ssmError    error
		expectedErr error
	}{
		{
			name:     "APIError",
			ssmError: errors.New("InvalidInstanceId"),
		},
		{
			name:        "EmptyCommandResponse",
			ssmResponse: &ssm.SendCommandOutput{},
			expectedErr: apperrors.ErrEmptyCommandResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := mockrepository.NewMockServerRepository(ctrl)

			mockRepo.EXPECT().GetStopTarget(gomock.Any(), int64(7)).Return(repository.StopTarget{
				ServerState:   lifecycle.ServerStarted,
				EC2InstanceID: "i-0abc",
			}, nil)
			// MarkOffline is never expected: the record must keep its state.

			ssmClient := &fakeSSMClient{
				sendCommand: func(ctx context.Context, params *ssm.SendCommandInput) (*ssm.SendCommandOutput, error) {
					return tt.ssmResponse, tt.ssmError
				},
			}

			o := NewOrchestrator(mockRepo, ssmClient, infra.NewMockKafkaWriter(ctrl), zap.NewNop())
			_, err := o.StopServer(context.Background(), StopRequest{ID: 7, ObservedState: lifecycle.ServerStarted})
			require.Error(t, err)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}
}

func TestStopServerMarkOfflineConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mockrepository.NewMockServerRepository(ctrl)

	mockRepo.EXPECT().GetStopTarget(gomock.Any(), int64(7)).Return(repository.StopTarget{
		ServerState:   lifecycle.ServerStarted,
		EC2InstanceID: "i-0abc",
	}, nil)
	mockRepo.EXPECT().MarkOffline(gomock.Any(), int64(7)).Return(lifecycle.ErrStateConflict)

	ssmClient := &fakeSSMClient{
		sendCommand: func(ctx context.Context, params *ssm.SendCommandInput) (*ssm.SendCommandOutput, error) {
			return commandOutput("cmd-123"), nil
		},
	}

	o := NewOrchestrator(mockRepo, ssmClient, infra.NewMockKafkaWriter(ctrl), zap.NewNop())
	_, err := o.StopServer(context.Background(), StopRequest{ID: 7, ObservedState: lifecycle.ServerStarted})
	assert.ErrorIs(t, err, lifecycle.ErrStateConflict)
}
