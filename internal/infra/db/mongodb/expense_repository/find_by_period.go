package expense_repository

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

type FindExpensesByPeriodRepository struct {
	Db *mongo.Database
}

func NewFindExpensesByPeriodRepository(db *mongo.Database) *FindExpensesByPeriodRepository {
	return &FindExpensesByPeriodRepository{
		Db: db,
	}
}

// Find returns every expense owned by the user with a due date inside
// [from, to], due date ascending. Family-shared expenses the user owns count
// towards their reports.
func (r *FindExpensesByPeriodRepository) Find(userId primitive.ObjectID, from time.Time, to time.Time) ([]models.Expense, error) {
	collection := r.Db.Collection("expenses")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{
		"user_id": userId,
		"due_date": bson.M{
			"$gte": from,
			"$lte": to,
		},
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
