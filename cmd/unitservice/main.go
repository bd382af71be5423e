package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"unit-service/internal/app"
)

const envFilePath = ".env"

func main() {
	if err := godotenv.Load(envFilePath); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	log.SetOutput(os.Stderr)

	service, err := app.NewService()
	if err != nil {
		log.Fatalf("Failed to initialize service: %v", err)
	}

	if err := service.Run(); err != nil {
		log.Fatalf("Service error: %v", err)
	}
}
