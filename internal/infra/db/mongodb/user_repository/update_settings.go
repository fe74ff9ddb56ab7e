package user_repository

import (
	"context"
	"time"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateUserSettingsRepository struct {
	Db *mongo.Database
}

func NewUpdateUserSettingsRepository(db *mongo.Database) *UpdateUserSettingsRepository {
	return &UpdateUserSettingsRepository{
		Db: db,
	}
}

func (r *UpdateUserSettingsRepository) Update(userId primitive.ObjectID, settings *models.UserSettings) (*models.UserSettings, error) {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var user models.User
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": userId}, bson.M{
		"$set": bson.M{
			"settings":   settings,
			"updated_at": time.Now(),
		},
	}, options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &user.Settings, nil
}
