package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docnav/docnav/services"
)

// API holds dependencies for API handlers, primarily the document browser
// engine.
type API struct {
	browser services.DocBrowser
}

// NewAPI creates a new API handler structure.
func NewAPI(browser services.DocBrowser) *API {
	return &API{browser: browser}
}

// SetupRoutes defines all the API routes for the documentation browser.
func SetupRoutes(router *gin.Engine, browser services.DocBrowser) {
	apiHandler := NewAPI(browser)

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Analytics route
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)

	// Search routes
	router.POST("/search", apiHandler.SearchHandler)
	router.GET("/search", apiHandler.SearchQueryHandler)

	// Navigation routes
	navRoutes := router.Group("/navigation")
	{
		navRoutes.GET("", apiHandler.GetNavigationHandler)             // Full tree with expansion state
		navRoutes.GET("/flattened", apiHandler.GetFlattenedHandler)    // Breadcrumb-annotated leaf entries
		navRoutes.GET("/active", apiHandler.GetActiveRouteHandler)     // Currently active route
		navRoutes.PUT("/active", apiHandler.SetActiveRouteHandler)     // Set active route, expand ancestors
		navRoutes.POST("/toggle", apiHandler.ToggleHandler)            // Toggle a node's expansion
		navRoutes.POST("/reload", apiHandler.ReloadManifestHandler)    // Re-read the manifest
	}

	// Document routes. The wildcard keeps slashes inside routes intact.
	router.GET("/documents/*route", apiHandler.GetDocumentHandler)
}

// HealthCheckHandler provides a simple health check endpoint.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "docnav",
		"version": "1.0.0",
	})
}

// GetAnalyticsHandler returns aggregated search and diagnostic data.
func (api *API) GetAnalyticsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.browser.Analytics())
}
