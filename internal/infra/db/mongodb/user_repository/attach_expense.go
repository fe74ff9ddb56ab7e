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

type AttachExpenseToUserRepository struct {
	Db *mongo.Database
}

func NewAttachExpenseToUserRepository(db *mongo.Database) *AttachExpenseToUserRepository {
	return &AttachExpenseToUserRepository{
		Db: db,
	}
}

// Attach pushes the expense reference onto the user's list, together with an
// optional history entry, in one update.
func (r *AttachExpenseToUserRepository) Attach(userId primitive.ObjectID, expenseId primitive.ObjectID, entry *models.HistoryEntry) error {
	collection := r.Db.Collection("users")

	push := bson.M{"expenses": expenseId}
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

	return err
}
