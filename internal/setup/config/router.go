package config

import (
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/setup/routes"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(server *http.ServeMux, db *mongo.Database, cache *redis.Client, photoStorage usecase.SavePhotoStorage) {
	apiServer := http.NewServeMux()
	routes.UserRoutes(apiServer, db, photoStorage)
	routes.FamilyRoutes(apiServer, db)
	routes.ExpenseRoutes(apiServer, db, cache)
	routes.ReportRoutes(apiServer, db, cache)
	routes.ImportantDateRoutes(apiServer, db)
	routes.HistoryRoutes(apiServer, db)
	routes.SyncRoutes(apiServer, db, cache)

	server.Handle("/api/", http.StripPrefix("/api", apiServer))
}
