package routes

import (
	"os"
	"strconv"

	_ "decormitra/docs" // swag generated package
	"decormitra/internal/adapter/http/handlers"
	"decormitra/internal/adapter/http/middleware"
	"decormitra/internal/adapter/persistence/repository"
	"decormitra/internal/config"
	"decormitra/internal/domain/pricing"
	"decormitra/internal/domain/serviceability"
	"decormitra/internal/infrastructure/assistant"
	"decormitra/internal/infrastructure/database"
	"decormitra/internal/infrastructure/sheets"
	"decormitra/internal/logging"
	"decormitra/internal/usecase"
	"decormitra/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var router = gin.New()

// Run wires dependencies and starts the server.
func Run() {
	logging.InitializeFromEnv()
	defer logging.Sync()

	cfg := config.Load()

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		logging.Logger.Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB()

	leadRepo := repository.NewLeadDynamoRepository(ddb)
	sessionRepo := repository.NewSessionDynamoRepository(ddb)

	var exporter interfaces.ILeadExporter
	sheetExporter, err := sheets.NewWebhookExporter(os.Getenv("SHEET_WEBHOOK_URL"))
	if err != nil {
		logging.Logger.Warn("sheet exporter not configured", zap.Error(err))
	} else {
		exporter = sheetExporter
	}

	var gateway interfaces.IAssistantGateway
	assistantClient, err := assistant.NewClient(assistant.Config{
		APIKey:  os.Getenv("ASSISTANT_API_KEY"),
		BaseURL: os.Getenv("ASSISTANT_BASE_URL"),
		Model:   os.Getenv("ASSISTANT_MODEL"),
	})
	if err != nil {
		logging.Logger.Warn("assistant gateway not configured", zap.Error(err))
	} else {
		gateway = assistantClient
	}

	quoteUseCase := usecase.NewQuoteUseCase(pricing.NewEngine(pricing.DefaultTables()))
	serviceabilityUseCase := usecase.NewServiceabilityUseCase(serviceability.DefaultClassifier())
	leadUseCase := usecase.NewLeadUseCase(leadRepo, exporter)
	chatUseCase := usecase.NewChatUseCase(sessionRepo, gateway, quoteUseCase)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	serviceabilityHandler := handlers.NewServiceabilityHandler(serviceabilityUseCase)
	leadHandler := handlers.NewLeadHandler(leadUseCase)
	chatHandler := handlers.NewChatHandler(chatUseCase)

	// Public routes
	addPingRoutes(router.Group(""))

	// Tenant routes: API key auth, then a per-key token bucket.
	v1 := router.Group("/v1")
	v1.Use(middleware.APIKeyAuth(cfg.APIKeys))
	v1.Use(middleware.NewKeyRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst).RateLimit())

	addQuoteRoutes(v1, quoteHandler, serviceabilityHandler)
	addLeadRoutes(v1, leadHandler)
	addChatRoutes(v1, chatHandler)
}

func setMiddlewares(cfg config.Config) {
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, middleware.APIKeyHeader)
	router.Use(cors.New(corsCfg))
}
