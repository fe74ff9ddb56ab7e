package family_repository

import (
	"context"
	"time"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AddFamilyHistoryRepository struct {
	Db *mongo.Database
}

func NewAddFamilyHistoryRepository(db *mongo.Database) *AddFamilyHistoryRepository {
	return &AddFamilyHistoryRepository{
		Db: db,
	}
}

func (r *AddFamilyHistoryRepository) Add(familyId primitive.ObjectID, entry *models.HistoryEntry) (*models.HistoryEntry, error) {
	collection := r.Db.Collection("families")

	if entry.Id.IsZero() {
		entry.Id = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	entry.Scope = "family"

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, bson.M{"_id": familyId}, bson.M{
		"$push": bson.M{"history": entry},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}
