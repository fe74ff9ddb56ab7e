package user_repository

import (
	"context"
	"time"

	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AddUserFamilyRepository struct {
	Db *mongo.Database
}

func NewAddUserFamilyRepository(db *mongo.Database) *AddUserFamilyRepository {
	return &AddUserFamilyRepository{
		Db: db,
	}
}

func (r *AddUserFamilyRepository) Add(userId primitive.ObjectID, familyId primitive.ObjectID) error {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, bson.M{"_id": userId}, bson.M{
		"$addToSet": bson.M{"families": familyId},
		"$set":      bson.M{"updated_at": time.Now()},
	})

	return err
}
