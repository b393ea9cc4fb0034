package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"GSLM_Microservice/internal/server-stopper/orchestrator"
	"GSLM_Microservice/pkg/infra"
	"GSLM_Microservice/pkg/lifecycle"

	"go.uber.org/zap"
)

type Consumer interface {
	Start()
	Stop()
}

type consumer struct {
	kafkaReader  infra.KafkaReader
	orchestrator orchestrator.Orchestrator
	logger       *zap.Logger
}

type stopIntent struct {
	ID            int64  `json:"id"`
	ObservedState string `json:"server_state"`
}

func (c *consumer) Start() {
	go func() {
		for {
			m, err := c.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("consumer.Start: %w", err)
				c.logger.Log(zap.ErrorLevel, "failed to fetch message", zap.Error(err))
				continue
			}
			if m.Value == nil {
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
			var intent stopIntent
			if err = json.Unmarshal(m.Value, &intent); err != nil {
				err = fmt.Errorf("consumer.Start: %w", err)
				c.logger.Log(zap.ErrorLevel, "failed to unmarshal stop intent", zap.Error(err))
				err = c.kafkaReader.CommitMessages(ctx, m)
				cancel()
				if err != nil {
					err = fmt.Errorf("consumer.Start: %w", err)
					c.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
				}
				continue
			}
			result, err := c.orchestrator.StopServer(ctx, orchestrator.StopRequest{
				ID:            intent.ID,
				ObservedState: intent.ObservedState,
			})
			if err != nil {
				if isPermanent(err) {
					// A stale intent will never succeed on redelivery; commit
					// it and move on.
					c.logger.Log(zap.WarnLevel, "dropping stop intent",
						zap.Int64("server_id", intent.ID), zap.Error(fmt.Errorf("consumer.Start: %w", err)))
					err = c.kafkaReader.CommitMessages(ctx, m)
					cancel()
					if err != nil {
						err = fmt.Errorf("consumer.Start: %w", err)
						c.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
					}
					continue
				}
				cancel()
				err = fmt.Errorf("consumer.Start: %w", err)
				c.logger.Log(zap.ErrorLevel, "failed to stop server", zap.Int64("server_id", intent.ID), zap.Error(err))
				continue
			}
			c.logger.Info("submitted shutdown command",
				zap.Int64("server_id", intent.ID),
				zap.String("command_id", result.CommandID))
			err = c.kafkaReader.CommitMessages(ctx, m)
			cancel()
			if err != nil {
				err = fmt.Errorf("consumer.Start: %w", err)
				c.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
			}
		}
	}()
}

func isPermanent(err error) bool {
	return errors.Is(err, lifecycle.ErrStatePrecondition) ||
		errors.Is(err, lifecycle.ErrUnknownServerState) ||
		errors.Is(err, lifecycle.ErrStateConflict)
}

func (c *consumer) Stop() {
	c.kafkaReader.Close()
}

func NewConsumer(reader infra.KafkaReader, orch orchestrator.Orchestrator, logger *zap.Logger) Consumer {
	return &consumer{
		kafkaReader:  reader,
		orchestrator: orch,
		logger:       logger,
	}
}
