package usecase

import (
	"time"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateExpenseRepository interface {
	Create(*models.ExpenseInput) (*models.Expense, error)
}

type FindExpenseByIdRepository interface {
	Find(expenseId primitive.ObjectID) (*models.Expense, error)
}

// FindPersonalExpensesRepository lists a user's non-family expenses, due date
// ascending.
type FindPersonalExpensesRepository interface {
	Find(userId primitive.ObjectID) ([]models.Expense, error)
}

type FindFamilyExpensesRepository interface {
	Find(familyId primitive.ObjectID) ([]models.Expense, error)
}

// FindExpensesByPeriodRepository lists every expense owned by the user with a
// due date inside [from, to], due date ascending. Backs the reports.
type FindExpensesByPeriodRepository interface {
	Find(userId primitive.ObjectID, from time.Time, to time.Time) ([]models.Expense, error)
}

type DeleteExpenseRepository interface {
	Delete(expenseId primitive.ObjectID) error
}
