package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "GSLM_Microservice/internal/server-stopper/errors"
	"GSLM_Microservice/pkg/lifecycle"

	"gorm.io/gorm"
)

// StopTarget is the pair needed to shut a server down: the current state and
// the instance handle recorded by the bootstrap completion hook.
type StopTarget struct {
	ServerState   string
	EC2InstanceID string
}

type ServerRepository interface {
	// GetStopTarget is a consistent point read of the state and instance id.
	GetStopTarget(ctx context.Context, serverID int64) (StopTarget, error)
	// MarkOffline moves the record to SERVER_OFFLINE, conditional on it still
	// being in a stoppable state.
	MarkOffline(ctx context.Context, serverID int64) error
}

type serverRepository struct {
	db *gorm.DB
}

func (s *serverRepository) GetStopTarget(ctx context.Context, serverID int64) (StopTarget, error) {
	var target struct {
		ServerState   string
		EC2InstanceID string
	}
	result := s.db.WithContext(ctx).
		Table("servers").
		Select("server_state", "ec2_instance_id").
		Where("id = ?", serverID).
		Take(&target)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return StopTarget{}, fmt.Errorf("ServerRepository.GetStopTarget: %w", apperrors.ErrServerNotFound)
		}
		return StopTarget{}, fmt.Errorf("ServerRepository.GetStopTarget: %w", result.Error)
	}
	return StopTarget{
		ServerState:   target.ServerState,
		EC2InstanceID: target.EC2InstanceID,
	}, nil
}

func (s *serverRepository) MarkOffline(ctx context.Context, serverID int64) error {
	fromStates := []string{lifecycle.ServerStarted, lifecycle.ServerStopRequested}
	result := s.db.WithContext(ctx).
		Table("servers").
		Where("id = ? AND server_state IN ?", serverID, fromStates).
		Update("server_state", lifecycle.ServerOffline)
	if result.Error != nil {
		return fmt.Errorf("ServerRepository.MarkOffline: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServerRepository.MarkOffline: %w", lifecycle.ErrStateConflict)
	}
	return nil
}

func NewServerRepository(db *gorm.DB) ServerRepository {
	return &serverRepository{
		db: db,
	}
}
