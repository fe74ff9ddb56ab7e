package user_repository

import (
	"context"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AuthenticateUserRepository is the auth guard. The device token is the sole
// credential: the stored digest must match the one resolved from the request.
type AuthenticateUserRepository struct {
	Db *mongo.Database
}

func NewAuthenticateUserRepository(db *mongo.Database) *AuthenticateUserRepository {
	return &AuthenticateUserRepository{
		Db: db,
	}
}

func (r *AuthenticateUserRepository) Authenticate(userId string, credential models.Credential) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, nil
	}

	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var user models.User
	err = collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	if !credential.Matches(user.DeviceToken) {
		return nil, nil
	}

	return &user, nil
}
