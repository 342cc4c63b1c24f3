package routes

import (
	"github.com/gin-gonic/gin"

	"sentag/internal/handlers"
	"sentag/internal/middleware"
	"sentag/internal/services"
)

func SetupRoutes(
	r *gin.Engine,
	authService services.AuthService,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	requestHandler *handlers.RequestHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	documentHandler *handlers.DocumentHandler,
	settingsHandler *handlers.SettingsHandler,
	uploadHandler *handlers.UploadHandler,
	seoHandler *handlers.SEOHandler,
) *gin.Engine {

	api := r.Group("/api")

	// ---- public
	api.POST("/auth", authHandler.Dispatch)
	api.GET("/auth/session", authHandler.VerifySession)
	api.POST("/requests", requestHandler.Save)
	api.POST("/track", analyticsHandler.Track)
	api.POST("/track/click", analyticsHandler.TrackClick)
	api.GET("/documents", documentHandler.List)
	api.GET("/settings", settingsHandler.GetAll)
	api.POST("/upload", uploadHandler.Upload)

	// ---- session required
	auth := api.Group("", middleware.SessionMiddleware(authService))
	{
		auth.GET("/requests", requestHandler.List)
		auth.DELETE("/requests/:id", requestHandler.Delete)
		auth.GET("/requests/:id/pdf", requestHandler.ExportPDF)

		auth.GET("/stats/clicks", analyticsHandler.ClickStats)
		auth.POST("/stats/telegram", analyticsHandler.SendWeeklyStats)

		auth.POST("/documents", documentHandler.Upload)
		auth.DELETE("/documents/:id", documentHandler.Delete)

		auth.POST("/settings", settingsHandler.Update)
		auth.POST("/seo/update-index", seoHandler.UpdateIndex)
		auth.POST("/notify-search-engines", seoHandler.NotifySearchEngines)

		// ---- admin only
		admin := auth.Group("", middleware.RequireAdmin())
		{
			admin.GET("/users", userHandler.ListUsers)
			admin.POST("/users", userHandler.CreateUser)
			admin.PUT("/users/:id", userHandler.UpdateUser)
			admin.DELETE("/stats/clicks", analyticsHandler.ClearStats)
		}
	}

	return r
}
