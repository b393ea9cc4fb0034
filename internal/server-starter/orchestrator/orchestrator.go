package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"GSLM_Microservice/internal/server-starter/bootstrap"
	apperrors "GSLM_Microservice/internal/server-starter/errors"
	"GSLM_Microservice/internal/server-starter/repository"
	"GSLM_Microservice/pkg/infra"
	"GSLM_Microservice/pkg/lifecycle"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EC2Client is the slice of the provisioning API the orchestrator uses.
type EC2Client interface {
	RequestSpotInstances(ctx context.Context, params *ec2.RequestSpotInstancesInput, optFns ...func(*ec2.Options)) (*ec2.RequestSpotInstancesOutput, error)
}

// S3Client is used for the startup-script preflight check.
type S3Client interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// StartRequest carries the caller-observed lifecycle state alongside the id.
// The state is passed explicitly rather than re-read so a stale caller is
// rejected instead of acting on whatever the record holds now.
type StartRequest struct {
	ID            int64
	ObservedState string
}

type StartResult struct {
	Status         string
	SpotRequestID  string
	UserData       string
	UserDataBase64 string
}

// LaunchConfig holds the environment-level launch parameters shared by every
// server: which image to boot, where, and with which network identity.
type LaunchConfig struct {
	ImageID            string
	AvailabilityZone   string
	SecurityGroupID    string
	InstanceProfileARN string
	ScriptsBucket      string
}

const startupScriptKey = "server-startup/startup.sh"

const serverIDTagKey = "gslm:server-id"

type Orchestrator interface {
	StartServer(ctx context.Context, req StartRequest) (StartResult, error)
}

type orchestrator struct {
	repo             repository.ServerRepository
	ec2Client        EC2Client
	s3Client         S3Client
	builder          bootstrap.Builder
	transitionWriter infra.KafkaWriter
	launchConfig     LaunchConfig
	logger           *zap.Logger
}

func (o *orchestrator) StartServer(ctx context.Context, req StartRequest) (StartResult, error) {
	if !lifecycle.IsKnownState(req.ObservedState) {
		return StartResult{}, fmt.Errorf("Orchestrator.StartServer: %w", lifecycle.UnknownStateError(req.ObservedState))
	}
	if !lifecycle.IsStartable(req.ObservedState) {
		return StartResult{}, fmt.Errorf("Orchestrator.StartServer: %w", lifecycle.PreconditionError(req.ObservedState, "provisioning"))
	}

	// Allow-list validation happens inside Build, before any AWS call.
	payload, err := o.builder.Build(req.ID)
	if err != nil {
		return StartResult{}, fmt.Errorf("Orchestrator.StartServer: %w", err)
	}

	params, err := o.repo.GetProvisioningParams(ctx, req.ID)
	if err != nil {
		return StartResult{}, fmt.Errorf("Orchestrator.StartServer: %w", err)
	}
	if params.InstanceType == "" || params.KeyName == "" {
		return StartResult{}, fmt.Errorf("Orchestrator.StartServer: %w", apperrors.ErrMissingLaunchParams)
	}

	// Fail before buying an instance if the startup payload is missing.
	_, err = o.s3Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(o.launchConfig.ScriptsBucket),
		Key:    aws.String(startupScriptKey),
	})
	if err != nil {
		return StartResult{}, fmt.Errorf("Orchestrator.StartServer: startup script preflight: %w", err)
	}

	output, err := o.ec2Client.RequestSpotInstances(ctx, &ec2.RequestSpotInstancesInput{
		InstanceCount: aws.Int32(1),
		Type:          ec2types.SpotInstanceTypeOneTime,
		TagSpecifications: []ec2types.TagSpecification{
			{
				ResourceType: ec2types.ResourceTypeSpotInstancesRequest,
				Tags: []ec2types.Tag{
					{
						Key:   aws.String(serverIDTagKey),
						Value: aws.String(strconv.FormatInt(req.ID, 10)),
					},
				},
			},
		},
		LaunchSpecification: &ec2types.RequestSpotLaunchSpecification{
			ImageId:      aws.String(o.launchConfig.ImageID),
			InstanceType: ec2types.InstanceType(params.InstanceType),
			KeyName:      aws.String(params.KeyName),
			Placement: &ec2types.SpotPlacement{
				AvailabilityZone: aws.String(o.launchConfig.AvailabilityZone),
			},
			SecurityGroupIds: []string{o.launchConfig.SecurityGroupID},
			IamInstanceProfile: &ec2types.IamInstanceProfileSpecification{
				Arn: aws.String(o.launchConfig.InstanceProfileARN),
			},
			UserData: aws.String(payload.Encoded),
		},
	})
	if err != nil {
		// The record keeps its pre-call state; the next reconciliation tick
		// re-observes it as not-yet-online and retries.
		return StartResult{}, fmt.Errorf("Orchestrator.StartServer: %w", err)
	}
	if len(output.SpotInstanceRequests) == 0 || output.SpotInstanceRequests[0].SpotInstanceRequestId == nil {
		return StartResult{}, fmt.Errorf("Orchestrator.StartServer: %w", apperrors.ErrEmptySpotRequestList)
	}
	spotRequestID := *output.SpotInstanceRequests[0].SpotInstanceRequestId

	if err = o.repo.MarkStarting(ctx, req.ID, spotRequestID); err != nil {
		return StartResult{}, fmt.Errorf("Orchestrator.StartServer: %w", err)
	}
	o.emitTransition(ctx, req.ID, req.ObservedState, lifecycle.ServerStarting)

	return StartResult{
		Status:         "starting",
		SpotRequestID:  spotRequestID,
		UserData:       payload.Plain,
		UserDataBase64: payload.Encoded,
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
		Actor:     "server-starter",
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

func NewOrchestrator(repo repository.ServerRepository, ec2Client EC2Client, s3Client S3Client, builder bootstrap.Builder, transitionWriter infra.KafkaWriter, launchConfig LaunchConfig, logger *zap.Logger) Orchestrator {
	return &orchestrator{
		repo:             repo,
		ec2Client:        ec2Client,
		s3Client:         s3Client,
		builder:          builder,
		transitionWriter: transitionWriter,
		launchConfig:     launchConfig,
		logger:           logger,
	}
}
