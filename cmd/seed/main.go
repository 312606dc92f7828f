// Seeds the postgres database with the demo dashboard dataset.
package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/TheTestGit/LinkedInPro/internal/database"
	"github.com/TheTestGit/LinkedInPro/internal/seed"
	"github.com/TheTestGit/LinkedInPro/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := database.InitDB()
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	if err := seed.Run(storage.NewGormStorage(db)); err != nil {
		logrus.Fatalf("Seeding failed: %v", err)
	}

	logrus.Info("Database seeded successfully")
}
