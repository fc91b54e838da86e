package main

import (
	_ "decormitra/docs"
	"decormitra/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           DecorMitra Quoting API
// @version         1.0
// @description     Interior-design quoting backend: price estimates, serviceability checks, lead capture and the persona design assistant.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@decormitra.in

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Tenant API key issued per client.

func main() {
	routes.Run()
}
