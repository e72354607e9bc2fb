// Command seed fills the configured database with demo data.
package main

import (
	"flag"
	"log"

	"newsline/internal/config"
	"newsline/internal/database"
	"newsline/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	users := flag.Int("users", 15, "number of users to create")
	articles := flag.Int("articles", 40, "number of articles to create")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{Users: *users, Articles: *articles}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d users and %d articles (password for all accounts: %s)", *users, *articles, seed.DefaultPassword)
}
