package main

import (
	_ "spayway_checkout/docs"
	"spayway_checkout/internal/adapter/http/routes"
	"spayway_checkout/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           S-PayWay Checkout API
// @version         1.0
// @description     Checkout service for the S-PayWay payment gateway, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run(config.Load())
}
