package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sustainlite/sustainlite-api/internal/core/domain"
)

type ActivityRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{db: db, col: db.Collection(collectionActivities)}
}

type activityDocument struct {
	ID       int64     `bson:"_id"`
	UserID   int64     `bson:"user_id"`
	Category string    `bson:"category"`
	Action   string    `bson:"action"`
	Value    float64   `bson:"value"`
	Unit     string    `bson:"unit"`
	Notes    *string   `bson:"notes"`
	Date     time.Time `bson:"date"`
}

func (d activityDocument) toDomain() *domain.Activity {
	return &domain.Activity{
		ID:       d.ID,
		UserID:   d.UserID,
		Category: d.Category,
		Action:   d.Action,
		Value:    d.Value,
		Unit:     d.Unit,
		Notes:    d.Notes,
		Date:     d.Date.UTC(),
	}
}

var newestFirst = bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}

// Create inserts a new activity document.
func (r *ActivityRepository) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionActivities)
	if err != nil {
		return nil, err
	}

	// BSON dates carry milliseconds only.
	doc := activityDocument{
		ID:       id,
		UserID:   a.UserID,
		Category: a.Category,
		Action:   a.Action,
		Value:    a.Value,
		Unit:     a.Unit,
		Notes:    a.Notes,
		Date:     a.Date.UTC().Truncate(time.Millisecond),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ActivityRepository) List(ctx context.Context, ownerID int64, skip, limit int) ([]*domain.Activity, error) {
	opts := options.Find().SetSort(newestFirst).SetSkip(int64(skip)).SetLimit(int64(limit))
	return r.find(ctx, ownerID, opts)
}

func (r *ActivityRepository) ListAll(ctx context.Context, ownerID int64) ([]*domain.Activity, error) {
	return r.find(ctx, ownerID, options.Find().SetSort(newestFirst))
}

func (r *ActivityRepository) find(ctx context.Context, ownerID int64, opts *options.FindOptions) ([]*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	var docs []activityDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}

	out := make([]*domain.Activity, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// FindByID matches on both id and owner so foreign activities read as missing.
func (r *ActivityRepository) FindByID(ctx context.Context, ownerID, id int64) (*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc activityDocument
	err := r.col.FindOne(ctx, bson.M{"_id": id, "user_id": ownerID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("find activity: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ActivityRepository) Delete(ctx context.Context, ownerID, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}
