package http

import (
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"

	"locallibrary/internal/database"
)

// --- JSON API response types ---

// ErrorResponse is the standard error shape for API endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondInternalError(c *gin.Context, context string, err error) {
	log.Printf("ERROR: %s: %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: context})
}

// --- HTML error boundary ---

// serverError renders the generic failure page. The underlying error is
// logged but never shown to the caller.
func serverError(c *gin.Context, context string, err error) {
	log.Printf("ERROR: %s: %v", context, err)
	c.HTML(http.StatusInternalServerError, "error", gin.H{
		"Title":   "Error",
		"Message": "Something went wrong. Please try again later.",
	})
}

// notFoundPage renders the apology page for a missing record.
func notFoundPage(c *gin.Context, message string) {
	c.HTML(http.StatusNotFound, "error", gin.H{
		"Title":   "Not Found",
		"Message": message,
	})
}

// renderLookupError maps a detail-view fetch failure: malformed ids get
// a 400, missing records the 404 apology page, anything else the
// generic failure page.
func renderLookupError(c *gin.Context, kind string, err error) {
	switch {
	case errors.Is(err, database.ErrInvalidID):
		c.String(http.StatusBadRequest, "Invalid %s ID", kind)
	case errors.Is(err, database.ErrNotFound):
		notFoundPage(c, kind+" not found")
	default:
		serverError(c, "failed to load "+kind, err)
	}
}

// notImplemented returns a handler for the update/delete placeholders.
// These answer 200 with a fixed body, not an error.
func notImplemented(what string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "NOT IMPLEMENTED: %s", what)
	}
}

// csrfField returns the hidden input for the create forms. Empty when
// CSRF protection is not enabled.
func csrfField(c *gin.Context) template.HTML {
	return csrf.TemplateField(c.Request)
}
