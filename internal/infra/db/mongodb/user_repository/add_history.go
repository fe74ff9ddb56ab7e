package user_repository

import (
	"context"
	"time"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AddUserHistoryRepository struct {
	Db *mongo.Database
}

func NewAddUserHistoryRepository(db *mongo.Database) *AddUserHistoryRepository {
	return &AddUserHistoryRepository{
		Db: db,
	}
}

func (r *AddUserHistoryRepository) Add(userId primitive.ObjectID, entry *models.HistoryEntry) (*models.HistoryEntry, error) {
	collection := r.Db.Collection("users")

	stampHistoryEntry(entry)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, bson.M{"_id": userId}, bson.M{
		"$push": bson.M{"history": entry},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// stampHistoryEntry fills in the id, timestamp and scope unless the caller
// already carries them, as synced offline entries do.
func stampHistoryEntry(entry *models.HistoryEntry) {
	if entry.Id.IsZero() {
		entry.Id = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.Scope == "" {
		entry.Scope = "user"
	}
}
