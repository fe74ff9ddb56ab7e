package user_repository

import (
	"context"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindUserByDeviceTokenRepository struct {
	Db *mongo.Database
}

func NewFindUserByDeviceTokenRepository(db *mongo.Database) *FindUserByDeviceTokenRepository {
	return &FindUserByDeviceTokenRepository{
		Db: db,
	}
}

// Find looks a user up by the stored credential digest, not the raw token.
func (r *FindUserByDeviceTokenRepository) Find(tokenDigest string) (*models.User, error) {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var user models.User
	err := collection.FindOne(ctx, bson.M{"device_token": tokenDigest}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
