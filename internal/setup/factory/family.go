package factory

import (
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/family_repository"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/user_repository"
	controllers "github.com/controledecontas/expenses-backend/internal/presentation/controllers/family"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateFamilyController(db *mongo.Database) *controllers.CreateFamilyController {
	authenticateUserRepository := user_repository.NewAuthenticateUserRepository(db)
	findFamilyByCodeRepository := family_repository.NewFindFamilyByCodeRepository(db)
	createFamilyRepository := family_repository.NewCreateFamilyRepository(db)
	addUserFamilyRepository := user_repository.NewAddUserFamilyRepository(db)

	return controllers.NewCreateFamilyController(
		authenticateUserRepository,
		findFamilyByCodeRepository,
		createFamilyRepository,
		addUserFamilyRepository,
	)
}

func MakeJoinFamilyController(db *mongo.Database) *controllers.JoinFamilyController {
	authenticateUserRepository := user_repository.NewAuthenticateUserRepository(db)
	findFamilyByCodeRepository := family_repository.NewFindFamilyByCodeRepository(db)
	addFamilyMemberRepository := family_repository.NewAddFamilyMemberRepository(db)
	addUserFamilyRepository := user_repository.NewAddUserFamilyRepository(db)
	addFamilyHistoryRepository := family_repository.NewAddFamilyHistoryRepository(db)

	return controllers.NewJoinFamilyController(
		authenticateUserRepository,
		findFamilyByCodeRepository,
		addFamilyMemberRepository,
		addUserFamilyRepository,
		addFamilyHistoryRepository,
	)
}
