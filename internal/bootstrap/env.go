package bootstrap

import (
	"log"

	"github.com/joho/godotenv"
)

// Loadenv pulls a local .env into the process environment before any fx
// provider reads configuration. Missing files are fine in deployment.
func Loadenv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}
