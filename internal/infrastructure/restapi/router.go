package restapi

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter configures and returns the Gin router for the verifier API.
func SetupRouter(h *Handler, zapLogger *zap.Logger) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // Adjust for production
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.Use(ZapLoggerMiddleware(zapLogger))
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")
	{
		v1.POST("/verify", h.VerifyHandler)
		v1.GET("/state", h.StateHandler)
		v1.POST("/discovery/:kind", h.DiscoveryHandler)

		v1.GET("/whitelist", h.WhitelistHandler)
		v1.POST("/whitelist/toggle", h.ToggleWhitelistHandler)

		v1.GET("/account", h.AccountHandler)

		v1.GET("/notes", h.ListNotesHandler)
		v1.POST("/notes", h.AddNoteHandler)
		v1.DELETE("/notes/:id", h.DeleteNoteHandler)
	}

	return router
}
