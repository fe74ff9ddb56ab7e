package usecase

import (
	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateFamilyRepository interface {
	Create(*models.FamilyInput) (*models.Family, error)
}

type FindFamilyByIdRepository interface {
	Find(primitive.ObjectID) (*models.Family, error)
}

type FindFamilyByCodeRepository interface {
	Find(code string) (*models.Family, error)
}

type AddFamilyMemberRepository interface {
	Add(familyId primitive.ObjectID, userId primitive.ObjectID) error
}

type AttachExpenseToFamilyRepository interface {
	Attach(familyId primitive.ObjectID, expenseId primitive.ObjectID) error
}

type DetachExpenseFromFamilyRepository interface {
	Detach(familyId primitive.ObjectID, expenseId primitive.ObjectID) error
}

type AddFamilyHistoryRepository interface {
	Add(familyId primitive.ObjectID, entry *models.HistoryEntry) (*models.HistoryEntry, error)
}
