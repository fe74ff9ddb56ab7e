package usecase

import (
	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateUserRepository interface {
	Create(*models.UserInput) (*models.User, error)
}

type FindUserByIdRepository interface {
	Find(primitive.ObjectID) (*models.User, error)
}

type FindUserByUsernameRepository interface {
	Find(username string) (*models.User, error)
}

type FindUserByDeviceTokenRepository interface {
	Find(tokenDigest string) (*models.User, error)
}

type FindUsersByIdsRepository interface {
	Find(ids []primitive.ObjectID) ([]models.User, error)
}

type UpdateLastLoginRepository interface {
	Update(userId primitive.ObjectID) error
}

type UpdateUserSettingsRepository interface {
	Update(userId primitive.ObjectID, settings *models.UserSettings) (*models.UserSettings, error)
}

type AddUserFamilyRepository interface {
	Add(userId primitive.ObjectID, familyId primitive.ObjectID) error
}

// AttachExpenseToUserRepository pushes the expense reference and the matching
// history entry in a single update.
type AttachExpenseToUserRepository interface {
	Attach(userId primitive.ObjectID, expenseId primitive.ObjectID, entry *models.HistoryEntry) error
}

type DetachExpenseFromUserRepository interface {
	Detach(userId primitive.ObjectID, expenseId primitive.ObjectID, entry *models.HistoryEntry) error
}

type AddImportantDateRepository interface {
	Add(userId primitive.ObjectID, date *models.ImportantDate, entry *models.HistoryEntry) (*models.ImportantDate, error)
}

type RemoveImportantDateRepository interface {
	Remove(userId primitive.ObjectID, dateId primitive.ObjectID, entry *models.HistoryEntry) error
}

type AddUserHistoryRepository interface {
	Add(userId primitive.ObjectID, entry *models.HistoryEntry) (*models.HistoryEntry, error)
}
