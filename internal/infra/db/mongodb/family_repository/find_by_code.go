package family_repository

import (
	"context"
	"strings"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindFamilyByCodeRepository struct {
	Db *mongo.Database
}

func NewFindFamilyByCodeRepository(db *mongo.Database) *FindFamilyByCodeRepository {
	return &FindFamilyByCodeRepository{
		Db: db,
	}
}

func (r *FindFamilyByCodeRepository) Find(code string) (*models.Family, error) {
	collection := r.Db.Collection("families")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var family models.Family
	err := collection.FindOne(ctx, bson.M{"code": strings.ToUpper(code)}).Decode(&family)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &family, nil
}
