package routes

import (
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/setup/adapters"
	"github.com/controledecontas/expenses-backend/internal/setup/factory"
	"go.mongodb.org/mongo-driver/mongo"
)

func UserRoutes(server *http.ServeMux, db *mongo.Database, photoStorage usecase.SavePhotoStorage) {
	server.Handle("POST /users", adapters.AdaptRoute(factory.MakeCreateUserController(db, photoStorage)))
	server.Handle("GET /users/{username}", adapters.AdaptRoute(factory.MakeGetUserByUsernameController(db)))
	server.Handle("PATCH /users/{id}/last-login", adapters.AdaptRoute(factory.MakeUpdateLastLoginController(db)))
	server.Handle("PATCH /users/{id}/settings", adapters.AdaptRoute(factory.MakeUpdateUserSettingsController(db)))
}
