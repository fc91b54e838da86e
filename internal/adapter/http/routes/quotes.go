package routes

import (
	"decormitra/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes         = "/quotes"
	PathPersonas       = "/personas"
	PathServiceability = "/serviceability"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, serviceabilityHandler *handlers.ServiceabilityHandler) {
	rg.POST(PathQuotes, quoteHandler.CreateQuote)
	rg.GET(PathPersonas, quoteHandler.ListPersonas)
	rg.GET(PathServiceability, serviceabilityHandler.CheckServiceability)
}
