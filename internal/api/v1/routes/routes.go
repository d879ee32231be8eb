package routes

import (
	"github.com/gin-gonic/gin"

	"voice2site/internal/api/middleware"
	"voice2site/internal/api/v1/handlers"
	"voice2site/internal/api/v1/services"
)

// multipartOverhead is headroom for multipart framing on top of the audio limit
const multipartOverhead = 1 << 20

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	SiteService    services.SiteService
	MaxUploadBytes int64
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	siteHandler := handlers.NewSiteHandler(container.SiteService)

	sites := router.Group("/sites")
	{
		sites.POST("/audio", AudioBodyLimit(container.MaxUploadBytes), siteHandler.GenerateFromAudio)
		sites.POST("/text", middleware.BodyLimit(multipartOverhead), siteHandler.GenerateFromText)
	}
}

// RegisterLegacyRoutes registers the unversioned upload routes on the root router.
// /generate-website answers with HTML and /generate with the JSON envelope.
func RegisterLegacyRoutes(router gin.IRouter, container *ServiceContainer) {
	siteHandler := handlers.NewSiteHandler(container.SiteService)
	router.POST("/generate-website", AudioBodyLimit(container.MaxUploadBytes), siteHandler.GenerateWebsite)
	router.POST("/generate", AudioBodyLimit(container.MaxUploadBytes), siteHandler.GenerateFromAudio)
}

// AudioBodyLimit caps multipart uploads at the audio limit plus framing headroom
func AudioBodyLimit(maxUploadBytes int64) gin.HandlerFunc {
	return middleware.BodyLimit(maxUploadBytes + multipartOverhead)
}
