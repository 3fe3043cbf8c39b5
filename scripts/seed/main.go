// Script to seed the database with demo travelers and protocols.
// Usage: go run scripts/seed/main.go
package main

import (
	"log"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/config"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
}
