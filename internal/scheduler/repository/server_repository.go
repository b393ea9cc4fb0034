package repository

import (
	"context"
	"fmt"

	"GSLM_Microservice/internal/scheduler/model"
	"GSLM_Microservice/pkg/lifecycle"

	"gorm.io/gorm"
)

type ServerRepository interface {
	// GetScheduledServers scans all server records, projecting only the
	// fields the evaluator needs.
	GetScheduledServers(ctx context.Context) ([]model.Server, error)
	// CompareAndSwapState sets server_state to the target value only if the
	// stored state is still one of fromStates. Returns
	// lifecycle.ErrStateConflict when the record has moved on.
	CompareAndSwapState(ctx context.Context, serverID int64, fromStates []string, toState string) error
}

type serverRepository struct {
	db *gorm.DB
}

func (s *serverRepository) GetScheduledServers(ctx context.Context) ([]model.Server, error) {
	var servers []model.Server
	result := s.db.WithContext(ctx).
		Table("servers").
		Select("id", "schedule_start_time", "schedule_stop_time", "server_state").
		Find(&servers)
	if result.Error != nil {
		return nil, fmt.Errorf("ServerRepository.GetScheduledServers: %w", result.Error)
	}
	return servers, nil
}

func (s *serverRepository) CompareAndSwapState(ctx context.Context, serverID int64, fromStates []string, toState string) error {
	result := s.db.WithContext(ctx).
		Table("servers").
		Where("id = ? AND server_state IN ?", serverID, fromStates).
		Update("server_state", toState)
	if result.Error != nil {
		return fmt.Errorf("ServerRepository.CompareAndSwapState: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServerRepository.CompareAndSwapState: %w", lifecycle.ErrStateConflict)
	}
	return nil
}

func NewServerRepository(db *gorm.DB) ServerRepository {
	return &serverRepository{
		db: db,
	}
}
