package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

const appliedMigrationsCollectionName = "migrations-applied"

type appliedMigrationDocument struct {
	ID        string    `bson:"_id"`
	AppliedAt time.Time `bson:"appliedAt"`
}

// AppliedMigrationsRepository records which one-shot repair migrations have
// already run, keyed by migration id.
type AppliedMigrationsRepository struct {
	coll collection
}

// NewAppliedMigrationsRepository binds the repository to the applied-set
// collection.
func NewAppliedMigrationsRepository(db *mongodriver.Database) *AppliedMigrationsRepository {
	return &AppliedMigrationsRepository{coll: wrapCollection(db.Collection(appliedMigrationsCollectionName))}
}

func newAppliedMigrationsRepositoryWithCollection(coll collection) *AppliedMigrationsRepository {
	return &AppliedMigrationsRepository{coll: coll}
}

// IsApplied reports whether the migration has already run.
func (r *AppliedMigrationsRepository) IsApplied(ctx context.Context, id string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to check applied migration: %w", err)
	}
	return count > 0, nil
}

// MarkApplied records the migration as run. A duplicate key means another
// node won the race, which counts as applied.
func (r *AppliedMigrationsRepository) MarkApplied(ctx context.Context, id string) error {
	doc := appliedMigrationDocument{ID: id, AppliedAt: time.Now().UTC()}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("failed to mark migration applied: %w", err)
	}
	return nil
}
