package main

import (
	"fmt"
	"log"

	"mondaymagic/backend/internal/config"
	"mondaymagic/backend/internal/database"
	"mondaymagic/backend/internal/router"

	// Swagger imports
	_ "mondaymagic/backend/docs" // This is important for swag to find the generated docs
)

func init() {
	config.LoadConfig()
}

// @title           Monday Magic Tracker API
// @version         1.0
// @description     API for tracking Commander games, playgroups and player statistics.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	r := router.New()

	fmt.Println("Server is running on :8080")
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(r.Run(":8080"))
}
