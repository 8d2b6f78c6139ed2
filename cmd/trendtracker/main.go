package main

import (
	"log"

	"github.com/joho/godotenv"

	"trendtracker/internal/cli"
)

func main() {
	// Load .env if present; environment variables win over file values
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		log.Fatalf("trendtracker: %v", err)
	}
}
