package utils

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv loads a .env file when one is present. A missing file is fine;
// the environment may already carry DATABASE_URL.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ️  No .env file found, continuing...")
	}
}
