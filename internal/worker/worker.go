// Package worker processes registration confirmation jobs in the
// background.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/planora/backend/internal/store"
	"github.com/planora/backend/pkg/queue"
)

// ConfirmationTTL bounds how long confirmation markers live in Redis.
const ConfirmationTTL = 24 * time.Hour

// ConfirmationProcessor consumes confirmation jobs: verify the registration
// still exists, then mark it confirmed in Redis.
type ConfirmationProcessor struct {
	regs   store.RegistrationStore
	rdb    *redis.Client
	queue  *queue.Queue
	logger *zap.Logger
}

// NewConfirmationProcessor creates a confirmation processor.
func NewConfirmationProcessor(regs store.RegistrationStore, rdb *redis.Client, q *queue.Queue, logger *zap.Logger) *ConfirmationProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfirmationProcessor{regs: regs, rdb: rdb, queue: q, logger: logger}
}

// ConfirmationKey is the Redis key marking a confirmed registration.
func ConfirmationKey(registrationID int) string {
	return fmt.Sprintf("confirmation:%d", registrationID)
}

// Process executes one confirmation job.
func (p *ConfirmationProcessor) Process(ctx context.Context, job *queue.Job) error {
	if job.Type != queue.JobTypeConfirmation {
		return fmt.Errorf("unknown job type: %s", job.Type)
	}
	var payload queue.ConfirmationPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	if _, err := p.regs.FindByID(ctx, payload.RegistrationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Deleted before the job ran; nothing to confirm.
			p.logger.Info("registration gone, skipping confirmation", zap.Int("registration_id", payload.RegistrationID))
			return nil
		}
		return fmt.Errorf("load registration: %w", err)
	}

	key := ConfirmationKey(payload.RegistrationID)
	if err := p.rdb.Set(ctx, key, time.Now().Format(time.RFC3339), ConfirmationTTL).Err(); err != nil {
		return fmt.Errorf("set confirmation marker: %w", err)
	}

	p.logger.Info("registration confirmed",
		zap.Int("registration_id", payload.RegistrationID),
		zap.Int("planned_event_id", payload.PlannedEventID),
		zap.Int("participant_id", payload.ParticipantID),
	)
	return nil
}

// Run starts the worker loop: dequeue, process, retry on error.
func (p *ConfirmationProcessor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("confirmation worker stopping")
			return
		default:
		}

		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			p.logger.Warn("dequeue error", zap.Error(err))
			time.Sleep(queue.RetryBackoff)
			continue
		}
		if job == nil {
			continue
		}

		p.logger.Debug("processing job", zap.String("job_id", job.ID), zap.String("type", string(job.Type)))
		if err := p.Process(ctx, job); err != nil {
			p.logger.Error("job failed", zap.String("job_id", job.ID), zap.Error(err))
			if reErr := p.queue.Retry(ctx, job); reErr != nil {
				p.logger.Error("retry enqueue failed", zap.Error(reErr))
			}
			time.Sleep(queue.RetryBackoff)
			continue
		}
	}
}
