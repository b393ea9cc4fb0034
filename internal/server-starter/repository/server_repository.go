package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "GSLM_Microservice/internal/server-starter/errors"
	"GSLM_Microservice/pkg/lifecycle"

	"gorm.io/gorm"
)

// ProvisioningParams are the static launch parameters stored on the record,
// read-only to the orchestrator.
type ProvisioningParams struct {
	EBSVolumeID  string
	InstanceType string
	KeyName      string
}

type ServerRepository interface {
	// GetProvisioningParams is a consistent point read of the launch
	// parameters for one server.
	GetProvisioningParams(ctx context.Context, serverID int64) (ProvisioningParams, error)
	// MarkStarting records the submitted spot request: state moves to
	// SERVER_STARTING and the request handle is stored, conditional on the
	// record still being in a pre-start state.
	MarkStarting(ctx context.Context, serverID int64, spotRequestID string) error
}

type serverRepository struct {
	db *gorm.DB
}

func (s *serverRepository) GetProvisioningParams(ctx context.Context, serverID int64) (ProvisioningParams, error) {
	var params struct {
		EBSVolumeID  string
		InstanceType string
		KeyName      string
	}
	result := s.db.WithContext(ctx).
		Table("servers").
		Select("ebs_volume_id", "instance_type", "key_name").
		Where("id = ?", serverID).
		Take(&params)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ProvisioningParams{}, fmt.Errorf("ServerRepository.GetProvisioningParams: %w", apperrors.ErrServerNotFound)
		}
		return ProvisioningParams{}, fmt.Errorf("ServerRepository.GetProvisioningParams: %w", result.Error)
	}
	return ProvisioningParams{
		EBSVolumeID:  params.EBSVolumeID,
		InstanceType: params.InstanceType,
		KeyName:      params.KeyName,
	}, nil
}

func (s *serverRepository) MarkStarting(ctx context.Context, serverID int64, spotRequestID string) error {
	fromStates := []string{"", lifecycle.ServerOffline, lifecycle.ServerStartRequested}
	result := s.db.WithContext(ctx).
		Table("servers").
		Where("id = ? AND server_state IN ?", serverID, fromStates).
		Updates(map[string]interface{}{
			"server_state":        lifecycle.ServerStarting,
			"ec2_spot_request_id": spotRequestID,
		})
	if result.Error != nil {
		return fmt.Errorf("ServerRepository.MarkStarting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServerRepository.MarkStarting: %w", lifecycle.ErrStateConflict)
	}
	return nil
}

func NewServerRepository(db *gorm.DB) ServerRepository {
	return &serverRepository{
		db: db,
	}
}
