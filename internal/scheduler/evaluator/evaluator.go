package evaluator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"GSLM_Microservice/internal/scheduler/model"
	"GSLM_Microservice/internal/scheduler/repository"
	"GSLM_Microservice/pkg/infra"
	"GSLM_Microservice/pkg/lifecycle"
	"GSLM_Microservice/pkg/schedule"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Evaluator reconciles "should be running now" against "is currently
// running" for every scheduled server record.
type Evaluator interface {
	// Evaluate runs one reconciliation pass at the given instant. The
	// timestamp is an explicit input so ticks are reproducible in tests.
	Evaluate(ctx context.Context, now time.Time) (Summary, error)
}

// Summary reports what one reconciliation pass changed. Only transitions
// that were successfully persisted are counted.
type Summary struct {
	Started []int64 `json:"started"`
	Stopped []int64 `json:"stopped"`
	Changed int     `json:"changed"`
	// Failures lists records that could not be processed this pass: integrity
	// faults, malformed schedules, failed persists. A failure on one record
	// never blocks the rest of the scan.
	Failures []Failure `json:"failures,omitempty"`
}

type Failure struct {
	ServerID int64 `json:"server_id"`
	Err      error `json:"-"`
}

// startStopIntent is the handoff payload consumed by the server-starter and
// server-stopper. ObservedState carries the lifecycle state the evaluator saw
// before marking the record, so the orchestrator can detect staleness without
// re-deriving it.
type startStopIntent struct {
	ID            int64  `json:"id"`
	ObservedState string `json:"server_state"`
}

type transitionEvent struct {
	ServerID  int64     `json:"server_id"`
	FromState string    `json:"from_state"`
	ToState   string    `json:"to_state"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}

type evaluator struct {
	repo             repository.ServerRepository
	startWriter      infra.KafkaWriter
	stopWriter       infra.KafkaWriter
	transitionWriter infra.KafkaWriter
	logger           *zap.Logger
}

func (e *evaluator) Evaluate(ctx context.Context, now time.Time) (Summary, error) {
	var summary Summary
	servers, err := e.repo.GetScheduledServers(ctx)
	if err != nil {
		return summary, fmt.Errorf("Evaluator.Evaluate: %w", err)
	}
	for _, server := range servers {
		changed, err := e.evaluateServer(ctx, server, now, &summary)
		if err != nil {
			e.logger.Error("failed to evaluate server",
				zap.Int64("server_id", server.ID),
				zap.Error(fmt.Errorf("Evaluator.Evaluate: %w", err)))
			summary.Failures = append(summary.Failures, Failure{ServerID: server.ID, Err: err})
			continue
		}
		if changed {
			summary.Changed += 1
		}
	}
	return summary, nil
}

// evaluateServer decides and applies the transition for a single record.
// Records without a complete schedule are left wholly unmanaged.
func (e *evaluator) evaluateServer(ctx context.Context, server model.Server, now time.Time, summary *Summary) (bool, error) {
	if server.ScheduleStartTime == nil || server.ScheduleStopTime == nil {
		return false, nil
	}
	window, err := schedule.ParseWindow(*server.ScheduleStartTime, *server.ScheduleStopTime)
	if err != nil {
		return false, err
	}
	if !lifecycle.IsKnownState(server.ServerState) {
		return false, lifecycle.UnknownStateError(server.ServerState)
	}

	shouldBeOnline := window.Contains(now)
	isOnline := lifecycle.IsOnline(server.ServerState)

	switch {
	case shouldBeOnline && !isOnline:
		if err := e.markAndEmit(ctx, server, lifecycle.ServerStartRequested, e.startWriter, now); err != nil {
			if errors.Is(err, lifecycle.ErrStateConflict) {
				// Another tick already claimed this record.
				return false, nil
			}
			return false, err
		}
		summary.Started = append(summary.Started, server.ID)
		return true, nil
	case isOnline && !shouldBeOnline:
		if err := e.markAndEmit(ctx, server, lifecycle.ServerStopRequested, e.stopWriter, now); err != nil {
			if errors.Is(err, lifecycle.ErrStateConflict) {
				return false, nil
			}
			return false, err
		}
		summary.Stopped = append(summary.Stopped, server.ID)
		return true, nil
	}
	return false, nil
}

// markAndEmit persists the intent mark first, then hands off to the
// orchestrator topic. The ordering matters: a crash between the two steps
// leaves a marked record and no intent, which the next tick cannot
// duplicate, rather than an intent acting on an unmarked record.
func (e *evaluator) markAndEmit(ctx context.Context, server model.Server, toState string, writer infra.KafkaWriter, now time.Time) error {
	if err := e.repo.CompareAndSwapState(ctx, server.ID, []string{server.ServerState}, toState); err != nil {
		return err
	}
	intent := startStopIntent{
		ID:            server.ID,
		ObservedState: server.ServerState,
	}
	b, err := json.Marshal(intent)
	if err != nil {
		return fmt.Errorf("Evaluator.markAndEmit: %w", err)
	}
	err = writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(server.ID, 10)),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("Evaluator.markAndEmit: %w", err)
	}
	e.emitTransition(ctx, server.ID, server.ServerState, toState, now)
	return nil
}

// emitTransition is best-effort: the transition log is observability, not
// state, so a write failure is logged and swallowed.
func (e *evaluator) emitTransition(ctx context.Context, serverID int64, from string, to string, now time.Time) {
	event := transitionEvent{
		ServerID:  serverID,
		FromState: from,
		ToState:   to,
		Actor:     "scheduler",
		Timestamp: now,
	}
	b, err := json.Marshal(event)
	if err != nil {
		e.logger.Error("failed to marshal transition event", zap.Error(fmt.Errorf("Evaluator.emitTransition: %w", err)))
		return
	}
	err = e.transitionWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(serverID, 10)),
		Value: b,
	})
	if err != nil {
		e.logger.Error("failed to write transition event", zap.Error(fmt.Errorf("Evaluator.emitTransition: %w", err)))
	}
}

func NewEvaluator(repo repository.ServerRepository, startWriter infra.KafkaWriter, stopWriter infra.KafkaWriter, transitionWriter infra.KafkaWriter, logger *zap.Logger) Evaluator {
	return &evaluator{
		repo:             repo,
		startWriter:      startWriter,
		stopWriter:       stopWriter,
		transitionWriter: transitionWriter,
		logger:           logger,
	}
}
