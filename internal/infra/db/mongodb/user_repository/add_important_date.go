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

type AddImportantDateRepository struct {
	Db *mongo.Database
}

func NewAddImportantDateRepository(db *mongo.Database) *AddImportantDateRepository {
	return &AddImportantDateRepository{
		Db: db,
	}
}

func (r *AddImportantDateRepository) Add(userId primitive.ObjectID, date *models.ImportantDate, entry *models.HistoryEntry) (*models.ImportantDate, error) {
	collection := r.Db.Collection("users")

	// Synced offline dates keep the id and creation time the client recorded.
	if date.Id.IsZero() {
		date.Id = primitive.NewObjectID()
	}
	if date.CreatedAt.IsZero() {
		date.CreatedAt = time.Now()
	}

	push := bson.M{"important_dates": date}
	if entry != nil {
		stampHistoryEntry(entry)
		push["history"] = entry
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, bson.M{"_id": userId}, bson.M{
		"$push": push,
		"$set":  bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return nil, err
	}

	return date, nil
}
