package routes

import (
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/setup/adapters"
	"github.com/controledecontas/expenses-backend/internal/setup/factory"
	"go.mongodb.org/mongo-driver/mongo"
)

func HistoryRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /history", adapters.AdaptRoute(factory.MakeCreateHistoryEntryController(db)))
	server.Handle("GET /history/{userId}", adapters.AdaptRoute(factory.MakeGetHistoryController(db)))
}
