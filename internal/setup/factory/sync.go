package factory

import (
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/expense_repository"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/family_repository"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/user_repository"
	controllers "github.com/controledecontas/expenses-backend/internal/presentation/controllers/sync"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeSyncDataController(db *mongo.Database, cache *redis.Client) *controllers.SyncDataController {
	authenticateUserRepository := user_repository.NewAuthenticateUserRepository(db)
	createExpenseRepository := expense_repository.NewCreateExpenseRepository(db)
	findExpenseByIdRepository := expense_repository.NewFindExpenseByIdRepository(db)
	attachExpenseToUserRepository := user_repository.NewAttachExpenseToUserRepository(db)
	findFamilyByIdRepository := family_repository.NewFindFamilyByIdRepository(db)
	attachExpenseToFamilyRepository := family_repository.NewAttachExpenseToFamilyRepository(db)
	addImportantDateRepository := user_repository.NewAddImportantDateRepository(db)
	addUserHistoryRepository := user_repository.NewAddUserHistoryRepository(db)
	addFamilyHistoryRepository := family_repository.NewAddFamilyHistoryRepository(db)

	return controllers.NewSyncDataController(
		authenticateUserRepository,
		createExpenseRepository,
		findExpenseByIdRepository,
		attachExpenseToUserRepository,
		findFamilyByIdRepository,
		attachExpenseToFamilyRepository,
		addImportantDateRepository,
		addUserHistoryRepository,
		addFamilyHistoryRepository,
		makeDeleteReportCacheRepository(cache),
	)
}
