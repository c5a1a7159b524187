package routes

import (
	"lexintake/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads = "/leads"
	PathAuth  = "/auth"
	PathUsers = "/users"
)

func addLeadRoutes(rg *gin.RouterGroup, leadHandler *handlers.LeadHandler) {
	leads := rg.Group(PathLeads)
	{
		// Public intake: quote is stateless, submit persists the lead.
		leads.POST("/estimate", leadHandler.Quote)
		leads.POST("", leadHandler.Submit)
	}
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, leadHandler *handlers.LeadHandler, profileHandler *handlers.ProfileHandler) {
	leads := rg.Group(PathLeads)
	{
		leads.GET("", leadHandler.List)
		leads.PATCH("/:id/archive", leadHandler.Archive)
		leads.PATCH("/:id/unarchive", leadHandler.Unarchive)
		leads.DELETE("/:id", leadHandler.Delete)
	}

	// Separate segment: a static "archived" sibling of ":id" would
	// conflict in gin's route tree.
	rg.DELETE("/archived-leads", leadHandler.PurgeArchived)

	users := rg.Group(PathUsers)
	{
		users.GET("", profileHandler.ListUsers)
		users.POST("", profileHandler.CreateUser)
		users.PATCH("/:id/role", profileHandler.UpdateRole)
	}
}
