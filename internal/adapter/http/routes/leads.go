package routes

import (
	"decormitra/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathLeads = "/leads"

func addLeadRoutes(rg *gin.RouterGroup, leadHandler *handlers.LeadHandler) {
	leads := rg.Group(PathLeads)
	{
		leads.POST("", leadHandler.CreateLead)
		leads.GET("", leadHandler.ListLeads)
		leads.GET("/:id", leadHandler.GetLead)
	}
}
