package setup

import (
	"log"
	"net/http"
	"os"

	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/helpers"
	redisHelpers "github.com/controledecontas/expenses-backend/internal/infra/db/redis/helpers"
	"github.com/controledecontas/expenses-backend/internal/infra/upload"
	"github.com/controledecontas/expenses-backend/internal/setup/config"
	"github.com/redis/go-redis/v9"
)

func Server() *http.ServeMux {
	mux := http.NewServeMux()

	db := helpers.MongoHelper(mongoURI(), databaseName())

	// Reports still work without Redis; caching is just skipped.
	var cache *redis.Client
	if redisUrl := os.Getenv("REDIS_URL"); redisUrl != "" {
		cache = redisHelpers.RedisHelper(redisUrl)
	}

	photoStorage, err := upload.NewLocalPhotoStorage(uploadsDir())
	if err != nil {
		log.Fatalf("could not prepare uploads directory: %v", err)
	}

	config.SetupRoutes(mux, db, cache, photoStorage)

	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(photoStorage.Dir))))

	return mux
}

func mongoURI() string {
	if uri := os.Getenv("MONGO_URL"); uri != "" {
		return uri
	}
	return "mongodb://localhost:27017"
}

func databaseName() string {
	if name := os.Getenv("MONGO_DB_NAME"); name != "" {
		return name
	}
	return "expenses"
}

func uploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}
