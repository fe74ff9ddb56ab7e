package family_repository

import (
	"context"
	"time"

	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AttachExpenseToFamilyRepository struct {
	Db *mongo.Database
}

func NewAttachExpenseToFamilyRepository(db *mongo.Database) *AttachExpenseToFamilyRepository {
	return &AttachExpenseToFamilyRepository{
		Db: db,
	}
}

func (r *AttachExpenseToFamilyRepository) Attach(familyId primitive.ObjectID, expenseId primitive.ObjectID) error {
	collection := r.Db.Collection("families")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, bson.M{"_id": familyId}, bson.M{
		"$push": bson.M{"expenses": expenseId},
		"$set":  bson.M{"updated_at": time.Now()},
	})

	return err
}
