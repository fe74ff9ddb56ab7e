package routes

import (
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/setup/adapters"
	"github.com/controledecontas/expenses-backend/internal/setup/factory"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func SyncRoutes(server *http.ServeMux, db *mongo.Database, cache *redis.Client) {
	server.Handle("POST /sync-data", adapters.AdaptRoute(factory.MakeSyncDataController(db, cache)))
}
