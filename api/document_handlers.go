package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/docnav/docnav/internal/errors"
)

// GetDocumentHandler serves a document's content. The default response is
// the raw markdown text; `?format=html` returns the rendered,
// syntax-highlighted HTML instead.
func (api *API) GetDocumentHandler(c *gin.Context) {
	// Gin's wildcard value starts with "/".
	route := strings.TrimPrefix(c.Param("route"), "/")

	if result := ValidateRoute(route); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	switch c.Query("format") {
	case "", "raw":
		content, err := api.browser.Document(c.Request.Context(), route)
		if err != nil {
			api.sendDocumentError(c, route, err)
			return
		}
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(content))
	case "html":
		html, err := api.browser.RenderedDocument(c.Request.Context(), route)
		if err != nil {
			api.sendDocumentError(c, route, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
	default:
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest,
			"Unknown format '"+c.Query("format")+"' (expected 'raw' or 'html')")
	}
}

func (api *API) sendDocumentError(c *gin.Context, route string, err error) {
	switch {
	case errors.Is(err, internalErrors.ErrRouteNotFound):
		SendRouteNotFoundError(c, route)
	case errors.Is(err, internalErrors.ErrDocumentFetch):
		SendError(c, http.StatusNotFound, ErrorCodeFetchFailed,
			"Content for route '"+route+"' is unavailable")
	default:
		SendError(c, http.StatusInternalServerError, ErrorCodeRenderFailed,
			"Failed to produce document for route '"+route+"': "+err.Error())
	}
}
