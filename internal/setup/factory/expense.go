package factory

import (
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/expense_repository"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/family_repository"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/user_repository"
	"github.com/controledecontas/expenses-backend/internal/infra/db/redis/report_cache_repository"
	controllers "github.com/controledecontas/expenses-backend/internal/presentation/controllers/expense"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// makeDeleteReportCacheRepository keeps the cache optional: without a Redis
// client the controllers receive a nil interface and skip invalidation.
func makeDeleteReportCacheRepository(cache *redis.Client) usecase.DeleteReportCacheRepository {
	if cache == nil {
		return nil
	}
	return report_cache_repository.NewDeleteReportCacheRepository(cache)
}

func MakeCreateExpenseController(db *mongo.Database, cache *redis.Client) *controllers.CreateExpenseController {
	authenticateUserRepository := user_repository.NewAuthenticateUserRepository(db)
	findFamilyByIdRepository := family_repository.NewFindFamilyByIdRepository(db)
	createExpenseRepository := expense_repository.NewCreateExpenseRepository(db)
	attachExpenseToUserRepository := user_repository.NewAttachExpenseToUserRepository(db)
	attachExpenseToFamilyRepository := family_repository.NewAttachExpenseToFamilyRepository(db)

	return controllers.NewCreateExpenseController(
		authenticateUserRepository,
		findFamilyByIdRepository,
		createExpenseRepository,
		attachExpenseToUserRepository,
		attachExpenseToFamilyRepository,
		makeDeleteReportCacheRepository(cache),
	)
}

func MakeGetExpensesController(db *mongo.Database) *controllers.GetExpensesController {
	authenticateUserRepository := user_repository.NewAuthenticateUserRepository(db)
	findFamilyByIdRepository := family_repository.NewFindFamilyByIdRepository(db)
	findPersonalExpensesRepository := expense_repository.NewFindPersonalExpensesRepository(db)
	findFamilyExpensesRepository := expense_repository.NewFindFamilyExpensesRepository(db)
	findUsersByIdsRepository := user_repository.NewFindUsersByIdsRepository(db)

	return controllers.NewGetExpensesController(
		authenticateUserRepository,
		findFamilyByIdRepository,
		findPersonalExpensesRepository,
		findFamilyExpensesRepository,
		findUsersByIdsRepository,
	)
}

func MakeDeleteExpenseController(db *mongo.Database, cache *redis.Client) *controllers.DeleteExpenseController {
	authenticateUserRepository := user_repository.NewAuthenticateUserRepository(db)
	findExpenseByIdRepository := expense_repository.NewFindExpenseByIdRepository(db)
	deleteExpenseRepository := expense_repository.NewDeleteExpenseRepository(db)
	detachExpenseFromUserRepository := user_repository.NewDetachExpenseFromUserRepository(db)
	detachExpenseFromFamilyRepository := family_repository.NewDetachExpenseFromFamilyRepository(db)

	return controllers.NewDeleteExpenseController(
		authenticateUserRepository,
		findExpenseByIdRepository,
		deleteExpenseRepository,
		detachExpenseFromUserRepository,
		detachExpenseFromFamilyRepository,
		makeDeleteReportCacheRepository(cache),
	)
}

func MakeExportExpensesController(db *mongo.Database) *controllers.ExportExpensesController {
	authenticateUserRepository := user_repository.NewAuthenticateUserRepository(db)
	findFamilyByIdRepository := family_repository.NewFindFamilyByIdRepository(db)
	findPersonalExpensesRepository := expense_repository.NewFindPersonalExpensesRepository(db)
	findFamilyExpensesRepository := expense_repository.NewFindFamilyExpensesRepository(db)

	return controllers.NewExportExpensesController(
		authenticateUserRepository,
		findFamilyByIdRepository,
		findPersonalExpensesRepository,
		findFamilyExpensesRepository,
	)
}
