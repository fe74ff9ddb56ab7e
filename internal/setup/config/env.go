package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads the env file when present; deployed environments inject
// variables directly.
func LoadEnvFile(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("could not load %s: %v", path, err)
	}
}
