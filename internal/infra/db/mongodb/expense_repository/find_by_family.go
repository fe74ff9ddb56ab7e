package expense_repository

import (
	"context"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindFamilyExpensesRepository struct {
	Db *mongo.Database
}

func NewFindFamilyExpensesRepository(db *mongo.Database) *FindFamilyExpensesRepository {
	return &FindFamilyExpensesRepository{
		Db: db,
	}
}

func (r *FindFamilyExpensesRepository) Find(familyId primitive.ObjectID) ([]models.Expense, error) {
	collection := r.Db.Collection("expenses")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{
		"family_id": familyId,
	}, options.Find().SetSort(bson.M{"due_date": 1}))
	if err != nil {
		return nil, err
	}

	var expenses []models.Expense
	if err = cursor.All(context.Background(), &expenses); err != nil {
		return nil, err
	}

	return expenses, nil
}
