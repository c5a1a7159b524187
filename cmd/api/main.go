package main

import (
	_ "lexintake/docs"
	"lexintake/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Lead Intake Service API
// @version         1.0
// @description     Lead intake and administration for a legal-marketing site (settlement estimates, lead lifecycle, staff roles).

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
