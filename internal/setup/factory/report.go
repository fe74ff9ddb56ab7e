package factory

import (
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/expense_repository"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/user_repository"
	"github.com/controledecontas/expenses-backend/internal/infra/db/redis/report_cache_repository"
	controllers "github.com/controledecontas/expenses-backend/internal/presentation/controllers/report"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func makeFindReportCacheRepository(cache *redis.Client) usecase.FindReportCacheRepository {
	if cache == nil {
		return nil
	}
	return report_cache_repository.NewFindReportCacheRepository(cache)
}

func makeSaveReportCacheRepository(cache *redis.Client) usecase.SaveReportCacheRepository {
	if cache == nil {
		return nil
	}
	return report_cache_repository.NewSaveReportCacheRepository(cache)
}

func MakeWeeklyReportController(db *mongo.Database, cache *redis.Client) *controllers.WeeklyReportController {
	authenticateUserRepository := user_repository.NewAuthenticateUserRepository(db)
	findExpensesByPeriodRepository := expense_repository.NewFindExpensesByPeriodRepository(db)

	return controllers.NewWeeklyReportController(
		authenticateUserRepository,
		findExpensesByPeriodRepository,
		makeFindReportCacheRepository(cache),
		makeSaveReportCacheRepository(cache),
	)
}

func MakeMonthlyReportController(db *mongo.Database, cache *redis.Client) *controllers.MonthlyReportController {
	authenticateUserRepository := user_repository.NewAuthenticateUserRepository(db)
	findExpensesByPeriodRepository := expense_repository.NewFindExpensesByPeriodRepository(db)

	return controllers.NewMonthlyReportController(
		authenticateUserRepository,
		findExpensesByPeriodRepository,
		makeFindReportCacheRepository(cache),
		makeSaveReportCacheRepository(cache),
	)
}
