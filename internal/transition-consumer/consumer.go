package transition_consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"GSLM_Microservice/internal/server-service/model"
	"GSLM_Microservice/pkg/infra"

	"go.uber.org/zap"
)

type TransitionConsumer interface {
	Start()
	Stop()
}

type transitionConsumer struct {
	kafkaReader infra.KafkaReader
	indexer     TransitionIndexer
	logger      *zap.Logger
}

func (t *transitionConsumer) Start() {
	go func() {
		for {
			m, err := t.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("transitionConsumer.Start: %w", err)
				t.logger.Log(zap.ErrorLevel, "failed to fetch message", zap.Error(err))
				continue
			}
			if m.Value == nil {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				err = t.kafkaReader.CommitMessages(ctx, m)
				cancel()
				if err != nil {
					err = fmt.Errorf("transitionConsumer.Start: %w", err)
					t.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
				}
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
			var event model.Transition
			if err = json.Unmarshal(m.Value, &event); err != nil {
				err = fmt.Errorf("transitionConsumer.Start: %w", err)
				t.logger.Log(zap.ErrorLevel, "failed to unmarshal message", zap.Error(err))
				err = t.kafkaReader.CommitMessages(ctx, m)
				cancel()
				if err != nil {
					err = fmt.Errorf("transitionConsumer.Start: %w", err)
					t.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
				}
				continue
			}
			err = t.indexer.IndexTransition(ctx, event)
			if err != nil {
				cancel()
				err = fmt.Errorf("transitionConsumer.Start: %w", err)
				t.logger.Log(zap.ErrorLevel, "failed to index transition", zap.Error(err))
				continue
			}
			err = t.kafkaReader.CommitMessages(ctx, m)
			cancel()
			if err != nil {
				err = fmt.Errorf("transitionConsumer.Start: %w", err)
				t.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
			}
		}
	}()
}

func (t *transitionConsumer) Stop() {
	t.kafkaReader.Close()
}

func NewTransitionConsumer(reader infra.KafkaReader, indexer TransitionIndexer, logger *zap.Logger) TransitionConsumer {
	return &transitionConsumer{
		kafkaReader: reader,
		indexer:     indexer,
		logger:      logger,
	}
}
