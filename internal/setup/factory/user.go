package factory

import (
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/user_repository"
	controllers "github.com/controledecontas/expenses-backend/internal/presentation/controllers/user"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateUserController(db *mongo.Database, photoStorage usecase.SavePhotoStorage) *controllers.CreateUserController {
	findUserByUsernameRepository := user_repository.NewFindUserByUsernameRepository(db)
	findUserByDeviceTokenRepository := user_repository.NewFindUserByDeviceTokenRepository(db)
	createUserRepository := user_repository.NewCreateUserRepository(db)

	return controllers.NewCreateUserController(
		findUserByUsernameRepository,
		findUserByDeviceTokenRepository,
		createUserRepository,
		photoStorage,
	)
}

func MakeGetUserByUsernameController(db *mongo.Database) *controllers.GetUserByUsernameController {
	findUserByUsernameRepository := user_repository.NewFindUserByUsernameRepository(db)

	return controllers.NewGetUserByUsernameController(findUserByUsernameRepository)
}

func MakeUpdateLastLoginController(db *mongo.Database) *controllers.UpdateLastLoginController {
	authenticateUserRepository := user_repository.NewAuthenticateUserRepository(db)
	updateLastLoginRepository := user_repository.NewUpdateLastLoginRepository(db)

	return controllers.NewUpdateLastLoginController(
		authenticateUserRepository,
		updateLastLoginRepository,
	)
}

func MakeUpdateUserSettingsController(db *mongo.Database) *controllers.UpdateUserSettingsController {
	authenticateUserRepository := user_repository.NewAuthenticateUserRepository(db)
	updateUserSettingsRepository := user_repository.NewUpdateUserSettingsRepository(db)

	return controllers.NewUpdateUserSettingsController(
		authenticateUserRepository,
		updateUserSettingsRepository,
	)
}
