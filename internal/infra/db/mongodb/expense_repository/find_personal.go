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

type FindPersonalExpensesRepository struct {
	Db *mongo.Database
}

func NewFindPersonalExpensesRepository(db *mongo.Database) *FindPersonalExpensesRepository {
	return &FindPersonalExpensesRepository{
		Db: db,
	}
}

// Find returns the user's own expenses, excluding anything shared with a
// family, due date ascending.
func (r *FindPersonalExpensesRepository) Find(userId primitive.ObjectID) ([]models.Expense, error) {
	collection := r.Db.Collection("expenses")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{
		"user_id":   userId,
		"family_id": nil,
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
