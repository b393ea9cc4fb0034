package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	apperrors "GSLM_Microservice/internal/server-stopper/errors"
	"GSLM_Microservice/internal/server-stopper/repository"
	"GSLM_Microservice/pkg/infra"
	"GSLM_Microservice/pkg/lifecycle"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// SSMClient is the slice of the command API the orchestrator uses.
type SSMClient interface {
	SendCommand(ctx context.Context, params *ssm.SendCommandInput, optFns ...func(*ssm.Options)) (*ssm.SendCommandOutput, error)
}

// StopRequest carries the caller-observed lifecycle state alongside the id,
// so a stale caller is rejected instead of acting on the current record.
type StopRequest struct {
	ID            int64
	ObservedState string
}

type StopResult struct {
	Status    string
	CommandID string
}

const shellScriptDocument = "AWS-RunShellScript"

// The in-guest shutdown sequence: flush world data via the server's own
// shutdown script, then power off after the five-minute grace period.
var shutdownCommands = []string{
	"sudo shutdown -h +5",
	"sudo sh /home/ec2-user/server/shutdown.sh",
}

type Orchestrator interface {
	StopServer(ctx context.Context, req StopRequest) (StopResult, error)
}

type orchestrator struct {
	repo             repository.ServerRepository
	ssmClient        SSMClient
	transitionWriter infra.KafkaWriter
	logger           *zap.Logger
}

func (o *orchestrator) StopServer(ctx context.Context, req StopRequest) (StopResult, error) {
	if !lifecycle.IsKnownState(req.ObservedState) {
		return StopResult{}, fmt.Errorf("Orchestrator.StopServer: %w", lifecycle.UnknownStateError(req.ObservedState))
	}
	if !lifecycle.IsStoppable(req.ObservedState) {
		return StopResult{}, fmt.Errorf("Orchestrator.StopServer: %w", lifecycle.PreconditionError(req.ObservedState, "deprovisioning"))
	}

	target, err := o.repo.GetStopTarget(ctx, req.ID)
	if err != nil {
		return StopResult{}, fmt.Errorf("Orchestrator.StopServer: %w", err)
	}
	if target.EC2InstanceID == "" {
		return StopResult{}, fmt.Errorf("Orchestrator.StopServer: %w", apperrors.ErrMissingInstanceID)
	}

	// Fire-and-forget: the command outcome is not verified. If the guest
	// never runs it the record still reads SERVER_OFFLINE and the instance
	// keeps running until reclaimed.
	output, err := o.ssmClient.SendCommand(ctx, &ssm.SendCommandInput{
		DocumentName: aws.String(shellScriptDocument),
		InstanceIds:  []string{target.EC2InstanceID},
		Parameters: map[string][]string{
			"commands": shutdownCommands,
		},
	})
	if err != nil {
		return StopResult{}, fmt.Errorf("Orchestrator.StopServer: %w", err)
	}
	if output.Command == nil || output.Command.CommandId == nil {
		return StopResult{}, fmt.Errorf("Orchestrator.StopServer: %w", apperrors.ErrEmptyCommandResponse)
	}
	commandID := *output.Command.CommandId

	if err = o.repo.MarkOffline(ctx, req.ID); err != nil {
		return StopResult{}, fmt.Errorf("Orchestrator.StopServer: %w", err)
	}
	o.emitTransition(ctx, req.ID, req.ObservedState, lifecycle.ServerOffline)

	return StopResult{
		Status:    "stopping",
		CommandID: commandID,
	}, nil
}

func (o *orchestrator) emitTransition(ctx context.Context, serverID int64, from string, to string) {
	event := struct {
		ServerID  int64     `json:"server_id"`
		FromState string    `json:"from_state"`
		ToState   string    `json:"to_state"`
		Actor     string    `json:"actor"`
		Timestamp time.Time `json:"timestamp"`
	}{
		ServerID:  serverID,
		FromState: from,
		ToState:   to,
		Actor:     "server-stopper",
		Timestamp: time.Now(),
	}
	b, err := json.Marshal(event)
	if err != nil {
		o.logger.Error("failed to marshal transition event", zap.Error(fmt.Errorf("Orchestrator.emitTransition: %w", err)))
		return
	}
	err = o.transitionWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(serverID, 10)),
		Value: b,
	})
	if err != nil {
		o.logger.Error("failed to write transition event", zap.Error(fmt.Errorf("Orchestrator.emitTransition: %w", err)))
	}
}

func NewOrchestrator(repo repository.ServerRepository, ssmClient SSMClient, transitionWriter infra.KafkaWriter, logger *zap.Logger) Orchestrator {
	return &orchestrator{
		repo:             repo,
		ssmClient:        ssmClient,
		transitionWriter: transitionWriter,
		logger:           logger,
	}
}
