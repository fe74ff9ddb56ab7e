package expense_repository

import (
	"context"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindExpenseByIdRepository struct {
	Db *mongo.Database
}

func NewFindExpenseByIdRepository(db *mongo.Database) *FindExpenseByIdRepository {
	return &FindExpenseByIdRepository{
		Db: db,
	}
}

func (r *FindExpenseByIdRepository) Find(expenseId primitive.ObjectID) (*models.Expense, error) {
	collection := r.Db.Collection("expenses")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var expense models.Expense
	err := collection.FindOne(ctx, bson.M{"_id": expenseId}).Decode(&expense)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &expense, nil
}
