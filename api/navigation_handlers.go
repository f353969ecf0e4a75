package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docnav/docnav/internal/engine"
	internalErrors "github.com/docnav/docnav/internal/errors"
)

// SetActiveRouteRequest is the body for PUT /navigation/active.
type SetActiveRouteRequest struct {
	Route string `json:"route" binding:"required"`
}

// ToggleRequest is the body for POST /navigation/toggle. Path is the chain
// of labels from the root down to the node to toggle; category nodes have
// no route, so labels are the only way to address every node.
type ToggleRequest struct {
	Path []string `json:"path" binding:"required"`
}

// GetNavigationHandler returns the full navigation tree, including the
// current expansion state.
func (api *API) GetNavigationHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": api.browser.Navigation()})
}

// GetFlattenedHandler returns the breadcrumb-annotated leaf entries.
func (api *API) GetFlattenedHandler(c *gin.Context) {
	entries, err := api.browser.Flattened()
	if err != nil {
		SendInternalError(c, "flattening navigation tree", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "total": len(entries)})
}

// GetActiveRouteHandler returns the currently tracked route, if any.
func (api *API) GetActiveRouteHandler(c *gin.Context) {
	route, ok := api.browser.ActiveRoute()
	c.JSON(http.StatusOK, gin.H{"route": route, "set": ok})
}

// SetActiveRouteHandler records the active route and expands its ancestors.
func (api *API) SetActiveRouteHandler(c *gin.Context) {
	var req SetActiveRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if result := ValidateRoute(req.Route); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.browser.SetActiveRoute(req.Route); err != nil {
		if errors.Is(err, internalErrors.ErrRouteNotFound) {
			SendRouteNotFoundError(c, req.Route)
			return
		}
		SendInternalError(c, "setting active route", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": req.Route})
}

// ToggleHandler flips the expansion state of one navigation node.
func (api *API) ToggleHandler(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if result := ValidateTogglePath(req.Path); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.browser.ToggleAt(req.Path); err != nil {
		if errors.Is(err, internalErrors.ErrNodeNotFound) {
			SendNodeNotFoundError(c)
			return
		}
		SendInternalError(c, "toggling navigation node", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": req.Path})
}

// ReloadManifestHandler re-reads the navigation manifest from disk.
func (api *API) ReloadManifestHandler(c *gin.Context) {
	concreteEngine, ok := api.browser.(*engine.Engine)
	if !ok {
		SendError(c, http.StatusNotImplemented, ErrorCodeInvalidRequest,
			"Manifest reload is not supported by this engine")
		return
	}
	if err := concreteEngine.ReloadManifest(); err != nil {
		log.Printf("Warning: Manifest reload failed: %v", err)
		SendError(c, http.StatusInternalServerError, ErrorCodeManifestReload,
			"Failed to reload manifest: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Manifest reloaded"})
}
