package family_repository

import (
	"context"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindFamilyByIdRepository struct {
	Db *mongo.Database
}

func NewFindFamilyByIdRepository(db *mongo.Database) *FindFamilyByIdRepository {
	return &FindFamilyByIdRepository{
		Db: db,
	}
}

func (r *FindFamilyByIdRepository) Find(familyId primitive.ObjectID) (*models.Family, error) {
	collection := r.Db.Collection("families")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var family models.Family
	err := collection.FindOne(ctx, bson.M{"_id": familyId}).Decode(&family)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &family, nil
}
