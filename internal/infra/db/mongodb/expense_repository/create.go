package expense_repository

import (
	"context"
	"time"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateExpenseRepository struct {
	Db *mongo.Database
}

func NewCreateExpenseRepository(db *mongo.Database) *CreateExpenseRepository {
	return &CreateExpenseRepository{
		Db: db,
	}
}

func (r *CreateExpenseRepository) Create(input *models.ExpenseInput) (*models.Expense, error) {
	collection := r.Db.Collection("expenses")

	// Synced offline records arrive with the id the client assigned.
	id := primitive.NewObjectID()
	if input.Id != nil {
		id = *input.Id
	}

	expense := &models.Expense{
		Id:          id,
		Description: input.Description,
		Amount:      input.Amount,
		Type:        input.Type,
		DueDate:     input.DueDate,
		PaymentType: input.PaymentType,
		Responsavel: input.Responsavel,
		Notes:       input.Notes,
		UserId:      input.UserId,
		FamilyId:    input.FamilyId,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()
	_, err := collection.InsertOne(ctx, expense)
	if err != nil {
		return nil, err
	}

	return expense, nil
}
