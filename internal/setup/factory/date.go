package factory

import (
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/user_repository"
	controllers "github.com/controledecontas/expenses-backend/internal/presentation/controllers/date"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateImportantDateController(db *mongo.Database) *controllers.CreateImportantDateController {
	authenticateUserRepository := user_repository.NewAuthenticateUserRepository(db)
	addImportantDateRepository := user_repository.NewAddImportantDateRepository(db)

	return controllers.NewCreateImportantDateController(
		authenticateUserRepository,
		addImportantDateRepository,
	)
}

func MakeGetImportantDatesController(db *mongo.Database) *controllers.GetImportantDatesController {
	authenticateUserRepository := user_repository.NewAuthenticateUserRepository(db)

	return controllers.NewGetImportantDatesController(authenticateUserRepository)
}

func MakeDeleteImportantDateController(db *mongo.Database) *controllers.DeleteImportantDateController {
	authenticateUserRepository := user_repository.NewAuthenticateUserRepository(db)
	removeImportantDateRepository := user_repository.NewRemoveImportantDateRepository(db)

	return controllers.NewDeleteImportantDateController(
		authenticateUserRepository,
		removeImportantDateRepository,
	)
}
