package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIController exposes the catalog as read-only JSON, mirroring the
// rendered list views. These routes sit behind the rate limiter.
type APIController struct {
	authors   AuthorStore
	genres    GenreStore
	books     BookStore
	instances BookInstanceStore
}

func NewAPIController(authors AuthorStore, genres GenreStore, books BookStore, instances BookInstanceStore) *APIController {
	return &APIController{authors: authors, genres: genres, books: books, instances: instances}
}

func (a *APIController) ListAuthors(c *gin.Context) {
	all, err := a.authors.All(c.Request.Context())
	if err != nil {
		respondInternalError(c, "failed to load authors", err)
		return
	}
	c.JSON(http.StatusOK, all)
}

func (a *APIController) ListGenres(c *gin.Context) {
	all, err := a.genres.All(c.Request.Context())
	if err != nil {
		respondInternalError(c, "failed to load genres", err)
		return
	}
	c.JSON(http.StatusOK, all)
}

func (a *APIController) ListBooks(c *gin.Context) {
	all, err := a.books.AllWithAuthors(c.Request.Context())
	if err != nil {
		respondInternalError(c, "failed to load books", err)
		return
	}
	c.JSON(http.StatusOK, all)
}

func (a *APIController) ListBookInstances(c *gin.Context) {
	all, err := a.instances.AllWithBooks(c.Request.Context())
	if err != nil {
		respondInternalError(c, "failed to load book instances", err)
		return
	}
	c.JSON(http.StatusOK, all)
}

// Counts returns the same summary the home page renders.
func (a *APIController) Counts(c *gin.Context) {
	counts, err := gatherCounts(c.Request.Context(), a.authors, a.genres, a.books, a.instances)
	if err != nil {
		respondInternalError(c, "failed to load catalog counts", err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
