package routes

import (
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/setup/adapters"
	"github.com/controledecontas/expenses-backend/internal/setup/factory"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func ExpenseRoutes(server *http.ServeMux, db *mongo.Database, cache *redis.Client) {
	server.Handle("POST /expenses", adapters.AdaptRoute(factory.MakeCreateExpenseController(db, cache)))
	server.Handle("GET /expenses/{userId}", adapters.AdaptRoute(factory.MakeGetExpensesController(db)))
	server.Handle("GET /expenses/{userId}/export", adapters.AdaptRoute(factory.MakeExportExpensesController(db)))
	server.Handle("DELETE /expenses/{id}", adapters.AdaptRoute(factory.MakeDeleteExpenseController(db, cache)))
}
