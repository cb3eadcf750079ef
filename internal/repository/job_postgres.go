package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/TraineeHub/notify/internal/domain"
)

// JobRepository implements domain.JobRepository on PostgreSQL. Claiming
// follows the row-lock pattern:
// 1. Select due rows with FOR UPDATE SKIP LOCKED inside a transaction.
// 2. Execute the notification.
// 3. Delete the row in the same transaction.
// A crash before commit releases the lock and the job is retried.
type JobRepository struct {
	db *sql.DB
}

// NewJobRepository creates a JobRepository bound to the scheduler database.
func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

// WithTransaction executes fn within a transaction, committing when it
// returns nil.
func (r *JobRepository) WithTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Rollback is a no-op after a successful commit.
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Upsert registers a job, replacing any existing row with the same id.
func (r *JobRepository) Upsert(ctx context.Context, job *domain.Job) error {
	now := time.Now().UTC()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now
	job.FireAt = job.FireAt.UTC()
	if job.MisfireWindowSeconds <= 0 {
		job.MisfireWindowSeconds = domain.DefaultMisfireWindowSeconds
	}

	dataJSON, err := json.Marshal(job.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal job data: %w", err)
	}

	query := `
		INSERT INTO scheduler_jobs (
			id, data, fire_at, misfire_window_seconds, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		ON CONFLICT (id) DO UPDATE SET
			data = EXCLUDED.data,
			fire_at = EXCLUDED.fire_at,
			misfire_window_seconds = EXCLUDED.misfire_window_seconds,
			updated_at = EXCLUDED.updated_at
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		job.ID,
		dataJSON,
		job.FireAt,
		job.MisfireWindowSeconds,
		job.CreatedAt,
		job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert job: %w", err)
	}

	return nil
}

// Get retrieves a job by id.
func (r *JobRepository) Get(ctx context.Context, id string) (*domain.Job, error) {
	query := `
		SELECT id, data, fire_at, misfire_window_seconds, created_at, updated_at
		FROM scheduler_jobs
		WHERE id = $1
	`

	job, err := scanJob(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.ErrNotFound{Entity: "Job", ID: id}
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// Delete removes a job and reports whether a row existed.
func (r *JobRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM scheduler_jobs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// ClaimDueTx locks and returns up to limit due jobs, oldest trigger first.
// Rows locked by a concurrent runner are skipped rather than waited on.
func (r *JobRepository) ClaimDueTx(ctx context.Context, tx *sql.Tx, now time.Time, limit int) ([]*domain.Job, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(
		"id", "data", "fire_at", "misfire_window_seconds", "created_at", "updated_at",
	).
		From("scheduler_jobs").
		Where(sq.LtOrEq{"fire_at": now.UTC()}).
		OrderBy("fire_at").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED")

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build claim query: %w", err)
	}

	rows, err := tx.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to claim due jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job rows: %w", err)
	}

	return jobs, nil
}

// DeleteTx removes a claimed job within the claiming transaction.
func (r *JobRepository) DeleteTx(ctx context.Context, tx *sql.Tx, id string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM scheduler_jobs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var job domain.Job
	var dataJSON []byte

	err := row.Scan(
		&job.ID,
		&dataJSON,
		&job.FireAt,
		&job.MisfireWindowSeconds,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(dataJSON, &job.Data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job data: %w", err)
	}

	return &job, nil
}
