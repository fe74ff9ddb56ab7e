package routes

import (
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/setup/adapters"
	"github.com/controledecontas/expenses-backend/internal/setup/factory"
	"go.mongodb.org/mongo-driver/mongo"
)

func ImportantDateRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /dates", adapters.AdaptRoute(factory.MakeCreateImportantDateController(db)))
	server.Handle("GET /dates/{userId}", adapters.AdaptRoute(factory.MakeGetImportantDatesController(db)))
	server.Handle("DELETE /dates/{id}", adapters.AdaptRoute(factory.MakeDeleteImportantDateController(db)))
}
