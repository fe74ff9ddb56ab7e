package user_repository

import (
	"context"
	"time"

	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateLastLoginRepository struct {
	Db *mongo.Database
}

func NewUpdateLastLoginRepository(db *mongo.Database) *UpdateLastLoginRepository {
	return &UpdateLastLoginRepository{
		Db: db,
	}
}

func (r *UpdateLastLoginRepository) Update(userId primitive.ObjectID) error {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, bson.M{"_id": userId}, bson.M{
		"$set": bson.M{
			"last_login": time.Now(),
			"updated_at": time.Now(),
		},
	})

	return err
}
