package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vidstream/account-system/internal/core/domain"
	"github.com/vidstream/account-system/internal/core/ports"
)

const activityCollection = "auth_activity"

// ActivityRepository implements ports.ActivityRepository using MongoDB.
type ActivityRepository struct {
	db *mongo.Database
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *mongo.Database) ports.ActivityRepository {
	return &ActivityRepository{db: db}
}

// Insert persists an auth activity record to the audit collection.
func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	doc := bson.M{
		"kind":         string(activity.Kind),
		"email":        activity.Email,
		"timestamp":    activity.Timestamp.UTC(),
		"processed_at": time.Now().UTC(),
	}
	if activity.UserID != "" {
		doc["user_id"] = activity.UserID
	}
	if activity.RemoteIP != "" {
		doc["remote_ip"] = activity.RemoteIP
	}

	_, err := r.db.Collection(activityCollection).InsertOne(ctx, doc)
	return err
}
