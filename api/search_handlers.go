package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SearchRequest defines the structure for search queries.
type SearchRequest struct {
	Query string `json:"query"`
}

// SearchHandler handles POST /search.
// Request Body: SearchRequest. Sub-minimum-length queries are not an
// error; they produce an empty result without touching any document.
func (api *API) SearchHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	api.runSearch(c, req.Query)
}

// SearchQueryHandler handles GET /search?q=... as a convenience form.
func (api *API) SearchQueryHandler(c *gin.Context) {
	api.runSearch(c, c.Query("q"))
}

func (api *API) runSearch(c *gin.Context, query string) {
	if result := ValidateQuery(query); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	results, err := api.browser.Search(c.Request.Context(), query)
	if err != nil {
		SendSearchError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
