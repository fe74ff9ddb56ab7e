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

type DetachExpenseFromUserRepository struct {
	Db *mongo.Database
}

func NewDetachExpenseFromUserRepository(db *mongo.Database) *DetachExpenseFromUserRepository {
	return &DetachExpenseFromUserRepository{
		Db: db,
	}
}

func (r *DetachExpenseFromUserRepository) Detach(userId primitive.ObjectID, expenseId primitive.ObjectID, entry *models.HistoryEntry) error {
	collection := r.Db.Collection("users")

	update := bson.M{
		"$pull": bson.M{"expenses": expenseId},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	if entry != nil {
		stampHistoryEntry(entry)
		update["$push"] = bson.M{"history": entry}
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, bson.M{"_id": userId}, update)

	return err
}
