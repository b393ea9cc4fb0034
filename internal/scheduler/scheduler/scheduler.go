package scheduler

import (
	"context"
	"fmt"
	"time"

	"GSLM_Microservice/internal/scheduler/evaluator"

	"go.uber.org/zap"
)

type ReconcileScheduler interface {
	Start()
	Stop()
}

type reconcileScheduler struct {
	ticker       *time.Ticker
	tickInterval time.Duration
	tickTimeout  time.Duration
	logger       *zap.Logger
	stopChan     chan struct{}
	evaluator    evaluator.Evaluator
}

func (s *reconcileScheduler) Start() {
	go func() {
		s.ticker = time.NewTicker(s.tickInterval)
		for {
			select {
			case <-s.ticker.C:
				s.onTick()
			case <-s.stopChan:
				s.ticker.Stop()
				return
			}
		}
	}()
}

func (s *reconcileScheduler) Stop() {
	s.stopChan <- struct{}{}
}

func (s *reconcileScheduler) onTick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.tickTimeout)
	defer cancel()
	summary, err := s.evaluator.Evaluate(ctx, time.Now())
	if err != nil {
		s.logger.Error("reconciliation pass failed", zap.Error(fmt.Errorf("ReconcileScheduler.onTick: %w", err)))
		return
	}
	if summary.Changed > 0 || len(summary.Failures) > 0 {
		s.logger.Info("reconciliation pass finished",
			zap.Int64s("started", summary.Started),
			zap.Int64s("stopped", summary.Stopped),
			zap.Int("changed", summary.Changed),
			zap.Int("failed", len(summary.Failures)))
	}
}

func NewReconcileScheduler(tickInterval time.Duration, tickTimeout time.Duration, logger *zap.Logger, ev evaluator.Evaluator) ReconcileScheduler {
	return &reconcileScheduler{
		tickInterval: tickInterval,
		tickTimeout:  tickTimeout,
		logger:       logger,
		stopChan:     make(chan struct{}),
		evaluator:    ev,
	}
}
