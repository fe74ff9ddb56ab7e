package routes

import (
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/setup/adapters"
	"github.com/controledecontas/expenses-backend/internal/setup/factory"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func ReportRoutes(server *http.ServeMux, db *mongo.Database, cache *redis.Client) {
	server.Handle("GET /reports/weekly/{userId}", adapters.AdaptRoute(factory.MakeWeeklyReportController(db, cache)))
	server.Handle("GET /reports/monthly/{userId}", adapters.AdaptRoute(factory.MakeMonthlyReportController(db, cache)))
}
