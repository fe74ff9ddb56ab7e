package family_repository

import (
	"context"
	"time"

	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AddFamilyMemberRepository struct {
	Db *mongo.Database
}

func NewAddFamilyMemberRepository(db *mongo.Database) *AddFamilyMemberRepository {
	return &AddFamilyMemberRepository{
		Db: db,
	}
}

// Add uses $addToSet so members can never hold the same user twice, even if
// two join requests race past the controller's membership check.
func (r *AddFamilyMemberRepository) Add(familyId primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("families")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, bson.M{"_id": familyId}, bson.M{
		"$addToSet": bson.M{"members": userId},
		"$set":      bson.M{"updated_at": time.Now()},
	})

	return err
}
