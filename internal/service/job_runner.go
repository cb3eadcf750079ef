package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
	"github.com/TraineeHub/notify/pkg/tracing"
)

// JobRunner polls the job store for due triggers and fires them. Each job is
// claimed with a row lock inside its own transaction and deleted in that
// same transaction once the executor returns, so a trigger fires on exactly
// one node and an executor failure releases the row for the next poll
// without re-sending anything that already went out.
type JobRunner struct {
	repo        domain.JobRepository
	executor    domain.NotificationExecutor
	logger      logger.Logger
	interval    time.Duration
	batchSize   int
	stopChan    chan struct{}
	stoppedChan chan struct{}
	mu          sync.Mutex
	running     bool
}

func NewJobRunner(
	repo domain.JobRepository,
	executor domain.NotificationExecutor,
	logger logger.Logger,
	interval time.Duration,
	batchSize int,
) *JobRunner {
	return &JobRunner{
		repo:        repo,
		executor:    executor,
		logger:      logger,
		interval:    interval,
		batchSize:   batchSize,
		stopChan:    make(chan struct{}),
		stoppedChan: make(chan struct{}),
	}
}

// Start begins the polling loop.
func (r *JobRunner) Start(ctx context.Context) {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		r.logger.Warn("Job runner already running")
		return
	}
	r.running = true
	r.mu.Unlock()

	r.logger.WithField("interval", r.interval.String()).
		WithField("batchSize", r.batchSize).
		Info("Starting notification job runner")

	go r.run(ctx)
}

// Stop gracefully stops the runner.
func (r *JobRunner) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	r.logger.Info("Stopping job runner...")
	close(r.stopChan)

	select {
	case <-r.stoppedChan:
		r.logger.Info("Job runner stopped successfully")
	case <-time.After(5 * time.Second):
		r.logger.Warn("Job runner stop timeout exceeded")
	}
}

// IsRunning returns whether the runner loop is active.
func (r *JobRunner) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *JobRunner) run(ctx context.Context) {
	defer close(r.stoppedChan)
	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
	}()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	// Fire anything already due on start.
	r.fireDueJobs(ctx)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Job runner context cancelled")
			return
		case <-r.stopChan:
			r.logger.Info("Job runner received stop signal")
			return
		case <-ticker.C:
			r.fireDueJobs(ctx)
		}
	}
}

// fireDueJobs claims and fires due jobs one at a time until the pass limit
// is reached or no due job remains.
func (r *JobRunner) fireDueJobs(ctx context.Context) {
	// codecov:ignore:start
	execCtx, span := tracing.StartServiceSpan(ctx, "JobRunner", "fireDueJobs")
	defer tracing.EndSpan(span, nil)
	// codecov:ignore:end

	for fired := 0; fired < r.batchSize; fired++ {
		more, err := r.fireNext(execCtx)
		if err != nil {
			// codecov:ignore:start
			tracing.MarkSpanError(execCtx, err)
			// codecov:ignore:end
			r.logger.Error(fmt.Sprintf("Job runner pass stopped: %v", err))
			return
		}
		if !more {
			return
		}
	}
}

// fireNext claims at most one due job. It reports whether a job was claimed
// so the caller knows to keep draining.
func (r *JobRunner) fireNext(ctx context.Context) (bool, error) {
	claimed := false
	now := time.Now().UTC()

	err := r.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		jobs, err := r.repo.ClaimDueTx(ctx, tx, now, 1)
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			return nil
		}
		claimed = true
		job := jobs[0]

		if job.Misfired(now) {
			r.logger.WithFields(map[string]interface{}{
				"jobId":  job.ID,
				"fireAt": job.FireAt.Format(time.RFC3339),
			}).Warn("Discarding misfired job, window exceeded")
			return r.repo.DeleteTx(ctx, tx, job.ID)
		}

		result, err := r.executor.Execute(ctx, job.ID, job.Data)
		if err != nil {
			return fmt.Errorf("job %s execution failed: %w", job.ID, err)
		}
		r.logger.WithFields(map[string]interface{}{
			"jobId":  job.ID,
			"result": result,
		}).Info("Notification job fired")

		return r.repo.DeleteTx(ctx, tx, job.ID)
	})
	if err != nil {
		return false, err
	}
	return claimed, nil
}
