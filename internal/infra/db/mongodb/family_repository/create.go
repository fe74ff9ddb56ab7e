package family_repository

import (
	"context"
	"time"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateFamilyRepository struct {
	Db *mongo.Database
}

func NewCreateFamilyRepository(db *mongo.Database) *CreateFamilyRepository {
	return &CreateFamilyRepository{
		Db: db,
	}
}

func (r *CreateFamilyRepository) Create(input *models.FamilyInput) (*models.Family, error) {
	collection := r.Db.Collection("families")

	family := &models.Family{
		Id:        primitive.NewObjectID(),
		Name:      input.Name,
		Code:      input.Code,
		Members:   []primitive.ObjectID{input.CreatedBy},
		Expenses:  []primitive.ObjectID{},
		History:   []models.HistoryEntry{},
		CreatedBy: input.CreatedBy,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()
	_, err := collection.InsertOne(ctx, family)
	if err != nil {
		return nil, err
	}

	return family, nil
}
