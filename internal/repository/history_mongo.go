package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TraineeHub/notify/internal/domain"
)

const historyCollectionName = "History"

// historyDocument is the stored shape of a History row. The _id is an
// ObjectID; the domain type carries it as a hex string.
type historyDocument struct {
	ID                  primitive.ObjectID        `bson:"_id,omitempty"`
	TisReference        *domain.TisReference      `bson:"tisReference,omitempty"`
	Type                domain.NotificationKind   `bson:"type"`
	Recipient           domain.RecipientInfo      `bson:"recipient"`
	Template            domain.TemplateInfo       `bson:"template"`
	Attachments         []domain.Attachment       `bson:"attachments,omitempty"`
	SentAt              time.Time                 `bson:"sentAt"`
	ReadAt              *time.Time                `bson:"readAt,omitempty"`
	Status              domain.NotificationStatus `bson:"status,omitempty"`
	StatusDetail        string                    `bson:"statusDetail,omitempty"`
	LatestStatusEventAt *time.Time                `bson:"latestStatusEventAt,omitempty"`
	LastRetry           *time.Time                `bson:"lastRetry,omitempty"`
}

func newHistoryDocument(h *domain.History) (historyDocument, error) {
	doc := historyDocument{
		TisReference:        h.TisReference,
		Type:                h.Type,
		Recipient:           h.Recipient,
		Template:            h.Template,
		Attachments:         h.Attachments,
		SentAt:              h.SentAt.UTC(),
		ReadAt:              h.ReadAt,
		Status:              h.Status,
		StatusDetail:        h.StatusDetail,
		LatestStatusEventAt: h.LatestStatusEventAt,
		LastRetry:           h.LastRetry,
	}

	if h.ID == "" {
		doc.ID = primitive.NewObjectID()
		return doc, nil
	}

	oid, err := primitive.ObjectIDFromHex(h.ID)
	if err != nil {
		return historyDocument{}, fmt.Errorf("invalid history id %q: %w", h.ID, err)
	}
	doc.ID = oid
	return doc, nil
}

func (d historyDocument) toDomain() *domain.History {
	return &domain.History{
		ID:                  d.ID.Hex(),
		TisReference:        d.TisReference,
		Type:                d.Type,
		Recipient:           d.Recipient,
		Template:            d.Template,
		Attachments:         d.Attachments,
		SentAt:              d.SentAt,
		ReadAt:              d.ReadAt,
		Status:              d.Status,
		StatusDetail:        d.StatusDetail,
		LatestStatusEventAt: d.LatestStatusEventAt,
		LastRetry:           d.LastRetry,
	}
}

// HistoryRepository implements domain.HistoryRepository on a Mongo
// collection.
type HistoryRepository struct {
	coll collection
}

// NewHistoryRepository binds the repository to the History collection and
// ensures its indexes.
func NewHistoryRepository(ctx context.Context, db *mongodriver.Database) (*HistoryRepository, error) {
	repo := &HistoryRepository{coll: wrapCollection(db.Collection(historyCollectionName))}
	if err := repo.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure history indexes: %w", err)
	}
	return repo, nil
}

func newHistoryRepositoryWithCollection(coll collection) *HistoryRepository {
	return &HistoryRepository{coll: coll}
}

func (r *HistoryRepository) ensureIndexes(ctx context.Context) error {
	models := []mongodriver.IndexModel{
		{Keys: bson.D{{Key: "recipient.id", Value: 1}, {Key: "sentAt", Value: -1}}},
		{Keys: bson.D{
			{Key: "recipient.id", Value: 1},
			{Key: "tisReference.type", Value: 1},
			{Key: "tisReference.id", Value: 1},
			{Key: "type", Value: 1},
		}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "sentAt", Value: 1}}},
	}
	for _, model := range models {
		if _, err := r.coll.Indexes().CreateOne(ctx, model); err != nil {
			return err
		}
	}
	return nil
}

// Save inserts or fully replaces a row, generating an id when absent.
func (r *HistoryRepository) Save(ctx context.Context, history *domain.History) (string, error) {
	doc, err := newHistoryDocument(history)
	if err != nil {
		return "", err
	}

	_, err = r.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return "", fmt.Errorf("failed to save history: %w", err)
	}
	return doc.ID.Hex(), nil
}

// FindByID returns the row or ErrNotFound.
func (r *HistoryRepository) FindByID(ctx context.Context, id string) (*domain.History, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &domain.ErrNotFound{Entity: "History", ID: id}
	}

	var doc historyDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, &domain.ErrNotFound{Entity: "History", ID: id}
		}
		return nil, fmt.Errorf("failed to find history: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByIDAndRecipient returns the row only when it belongs to the trainee.
func (r *HistoryRepository) FindByIDAndRecipient(ctx context.Context, id, traineeID string) (*domain.History, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &domain.ErrNotFound{Entity: "History", ID: id}
	}

	filter := bson.M{"_id": oid, "recipient.id": traineeID}
	var doc historyDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, &domain.ErrNotFound{Entity: "History", ID: id}
		}
		return nil, fmt.Errorf("failed to find history: %w", err)
	}
	return doc.toDomain(), nil
}

// FindAllByRecipient returns the trainee's rows newest first.
func (r *HistoryRepository) FindAllByRecipient(ctx context.Context, traineeID string) ([]*domain.History, error) {
	return r.findAll(ctx, bson.M{"recipient.id": traineeID},
		options.Find().SetSort(bson.D{{Key: "sentAt", Value: -1}}))
}

// FindAllByRecipientAndStatus filters the trainee's rows by status, newest
// first.
func (r *HistoryRepository) FindAllByRecipientAndStatus(ctx context.Context, traineeID string, status domain.NotificationStatus) ([]*domain.History, error) {
	filter := bson.M{"recipient.id": traineeID, "status": status}
	return r.findAll(ctx, filter, options.Find().SetSort(bson.D{{Key: "sentAt", Value: -1}}))
}

// DeleteByIDAndRecipient removes the row when it belongs to the trainee and
// reports whether anything was deleted.
func (r *HistoryRepository) DeleteByIDAndRecipient(ctx context.Context, id, traineeID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "recipient.id": traineeID})
	if err != nil {
		return false, fmt.Errorf("failed to delete history: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// UpdateStatus sets the status and detail unconditionally.
func (r *HistoryRepository) UpdateStatus(ctx context.Context, id string, status domain.NotificationStatus, detail string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &domain.ErrNotFound{Entity: "History", ID: id}
	}

	update := bson.M{"$set": bson.M{"status": status, "statusDetail": detail}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("failed to update history status: %w", err)
	}
	if res.MatchedCount == 0 {
		return &domain.ErrNotFound{Entity: "History", ID: id}
	}
	return nil
}

// UpdateStatusIfNewer applies the status only when no newer provider event
// has already been recorded, and returns the modified count. A nil
// latestStatusEventAt matches both absent and null stored values.
func (r *HistoryRepository) UpdateStatusIfNewer(ctx context.Context, id string, eventAt time.Time, status domain.NotificationStatus, detail string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, &domain.ErrNotFound{Entity: "History", ID: id}
	}

	filter := bson.M{
		"_id": oid,
		"$or": []bson.M{
			{"latestStatusEventAt": nil},
			{"latestStatusEventAt": bson.M{"$lte": eventAt}},
		},
	}
	update := bson.M{"$set": bson.M{
		"status":              status,
		"statusDetail":        detail,
		"latestStatusEventAt": eventAt,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to update history status: %w", err)
	}
	return res.ModifiedCount, nil
}

// UpdateReadAt sets the read status, updating readAt only when provided.
func (r *HistoryRepository) UpdateReadAt(ctx context.Context, id string, status domain.NotificationStatus, readAt *time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &domain.ErrNotFound{Entity: "History", ID: id}
	}

	set := bson.M{"status": status}
	if readAt != nil {
		set["readAt"] = readAt.UTC()
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update history read state: %w", err)
	}
	if res.MatchedCount == 0 {
		return &domain.ErrNotFound{Entity: "History", ID: id}
	}
	return nil
}

// FindIDsByStatusSentAtOrBefore returns ids of rows with the status whose
// sentAt is at or before the instant, in id order.
func (r *HistoryRepository) FindIDsByStatusSentAtOrBefore(ctx context.Context, status domain.NotificationStatus, at time.Time) ([]string, error) {
	filter := bson.M{"status": status, "sentAt": bson.M{"$lte": at}}
	return r.findIDs(ctx, filter)
}

// FindLatestPerKind returns the most recent row per kind for the recipient
// and reference, restricted to the given kinds.
func (r *HistoryRepository) FindLatestPerKind(ctx context.Context, traineeID string, ref domain.TisReference, kinds []domain.NotificationKind) (map[domain.NotificationKind]*domain.History, error) {
	filter := bson.M{
		"recipient.id":      traineeID,
		"tisReference.type": ref.Type,
		"tisReference.id":   ref.ID,
		"type":              bson.M{"$in": kinds},
	}

	rows, err := r.findAll(ctx, filter, options.Find().SetSort(bson.D{{Key: "sentAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	latest := make(map[domain.NotificationKind]*domain.History, len(kinds))
	for _, row := range rows {
		if _, seen := latest[row.Type]; !seen {
			latest[row.Type] = row
		}
	}
	return latest, nil
}

// FindScheduledEmail returns the SCHEDULED email row for the tuple, or nil
// when none exists.
func (r *HistoryRepository) FindScheduledEmail(ctx context.Context, traineeID string, ref domain.TisReference, kind domain.NotificationKind) (*domain.History, error) {
	filter := bson.M{
		"recipient.id":      traineeID,
		"recipient.type":    domain.ChannelEmail,
		"tisReference.type": ref.Type,
		"tisReference.id":   ref.ID,
		"type":              kind,
		"status":            domain.StatusScheduled,
	}

	var doc historyDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find scheduled email: %w", err)
	}
	return doc.toDomain(), nil
}

// DeleteScheduledByRecipientAndRef prunes every SCHEDULED row for the
// recipient and reference.
func (r *HistoryRepository) DeleteScheduledByRecipientAndRef(ctx context.Context, traineeID string, ref domain.TisReference) (int64, error) {
	filter := bson.M{
		"recipient.id":      traineeID,
		"tisReference.type": ref.Type,
		"tisReference.id":   ref.ID,
		"status":            domain.StatusScheduled,
	}

	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete scheduled history: %w", err)
	}
	return res.DeletedCount, nil
}

// DeleteScheduledExcept garbage-collects stale SCHEDULED rows for the tuple,
// keeping the row with keepID.
func (r *HistoryRepository) DeleteScheduledExcept(ctx context.Context, traineeID string, ref domain.TisReference, kind domain.NotificationKind, keepID string) (int64, error) {
	filter := bson.M{
		"recipient.id":      traineeID,
		"tisReference.type": ref.Type,
		"tisReference.id":   ref.ID,
		"type":              kind,
		"status":            domain.StatusScheduled,
	}
	if oid, err := primitive.ObjectIDFromHex(keepID); err == nil {
		filter["_id"] = bson.M{"$ne": oid}
	}

	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale scheduled history: %w", err)
	}
	return res.DeletedCount, nil
}

// DeleteAllByTypes removes every row of the given kinds.
func (r *HistoryRepository) DeleteAllByTypes(ctx context.Context, kinds []string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"type": bson.M{"$in": kinds}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete history by types: %w", err)
	}
	return res.DeletedCount, nil
}

// DeleteAllByStatusBefore removes rows of a status sent before the instant.
func (r *HistoryRepository) DeleteAllByStatusBefore(ctx context.Context, status domain.NotificationStatus, before time.Time) (int64, error) {
	filter := bson.M{"status": status, "sentAt": bson.M{"$lt": before}}
	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete history by status: %w", err)
	}
	return res.DeletedCount, nil
}

// RewriteType bulk-renames a notification kind.
func (r *HistoryRepository) RewriteType(ctx context.Context, from, to string) (int64, error) {
	res, err := r.coll.UpdateMany(ctx, bson.M{"type": from}, bson.M{"$set": bson.M{"type": to}})
	if err != nil {
		return 0, fmt.Errorf("failed to rewrite history type: %w", err)
	}
	return res.ModifiedCount, nil
}

// BackfillMissingStatus sets the status on rows where it is absent or null.
func (r *HistoryRepository) BackfillMissingStatus(ctx context.Context, status domain.NotificationStatus) (int64, error) {
	res, err := r.coll.UpdateMany(ctx, bson.M{"status": nil}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return 0, fmt.Errorf("failed to backfill history status: %w", err)
	}
	return res.ModifiedCount, nil
}

// FindAllIDs returns every row id in id order.
func (r *HistoryRepository) FindAllIDs(ctx context.Context) ([]string, error) {
	return r.findIDs(ctx, bson.M{})
}

// FindAllByStatusAndSentAtBetween returns rows of a status sent within
// [from, to).
func (r *HistoryRepository) FindAllByStatusAndSentAtBetween(ctx context.Context, status domain.NotificationStatus, from, to time.Time) ([]*domain.History, error) {
	filter := bson.M{"status": status, "sentAt": bson.M{"$gte": from, "$lt": to}}
	return r.findAll(ctx, filter, options.Find().SetSort(bson.D{{Key: "sentAt", Value: 1}}))
}

func (r *HistoryRepository) findAll(ctx context.Context, filter bson.M, opts ...*options.FindOptions) (rows []*domain.History, err error) {
	cur, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() {
		if cerr := cur.Close(ctx); err == nil && cerr != nil {
			err = cerr
		}
	}()

	for cur.Next(ctx) {
		var doc historyDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode history: %w", err)
		}
		rows = append(rows, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}
	return rows, nil
}

func (r *HistoryRepository) findIDs(ctx context.Context, filter bson.M) (ids []string, err error) {
	opts := options.Find().
		SetProjection(bson.D{{Key: "_id", Value: 1}}).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query history ids: %w", err)
	}
	defer func() {
		if cerr := cur.Close(ctx); err == nil && cerr != nil {
			err = cerr
		}
	}()

	for cur.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode history id: %w", err)
		}
		ids = append(ids, doc.ID.Hex())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history ids: %w", err)
	}
	return ids, nil
}
