package routes

import (
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/setup/adapters"
	"github.com/controledecontas/expenses-backend/internal/setup/factory"
	"go.mongodb.org/mongo-driver/mongo"
)

func FamilyRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /families", adapters.AdaptRoute(factory.MakeCreateFamilyController(db)))
	server.Handle("POST /families/join", adapters.AdaptRoute(factory.MakeJoinFamilyController(db)))
}
