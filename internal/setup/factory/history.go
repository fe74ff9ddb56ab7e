package factory

import (
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/family_repository"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/user_repository"
	controllers "github.com/controledecontas/expenses-backend/internal/presentation/controllers/history"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateHistoryEntryController(db *mongo.Database) *controllers.CreateHistoryEntryController {
	authenticateUserRepository := user_repository.NewAuthenticateUserRepository(db)
	addUserHistoryRepository := user_repository.NewAddUserHistoryRepository(db)
	findFamilyByIdRepository := family_repository.NewFindFamilyByIdRepository(db)
	addFamilyHistoryRepository := family_repository.NewAddFamilyHistoryRepository(db)

	return controllers.NewCreateHistoryEntryController(
		authenticateUserRepository,
		addUserHistoryRepository,
		findFamilyByIdRepository,
		addFamilyHistoryRepository,
	)
}

func MakeGetHistoryController(db *mongo.Database) *controllers.GetHistoryController {
	authenticateUserRepository := user_repository.NewAuthenticateUserRepository(db)
	findFamilyByIdRepository := family_repository.NewFindFamilyByIdRepository(db)

	return controllers.NewGetHistoryController(
		authenticateUserRepository,
		findFamilyByIdRepository,
	)
}
