package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"locallibrary/internal/entities"
)

// CatalogCounts is the home page summary: five independent counts, all
// of which must succeed before anything renders.
type CatalogCounts struct {
	Books              int64 `json:"book_count"`
	BookInstances      int64 `json:"book_instance_count"`
	AvailableInstances int64 `json:"book_instance_available_count"`
	Authors            int64 `json:"author_count"`
	Genres             int64 `json:"genre_count"`
}

func gatherCounts(ctx context.Context, authors AuthorStore, genres GenreStore, books BookStore, instances BookInstanceStore) (CatalogCounts, error) {
	var counts CatalogCounts

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts.Books, err = books.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		counts.BookInstances, err = instances.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		counts.AvailableInstances, err = instances.CountByStatus(ctx, entities.StatusAvailable)
		return err
	})
	g.Go(func() (err error) {
		counts.Authors, err = authors.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Genres, err = genres.Count(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return CatalogCounts{}, err
	}
	return counts, nil
}

type HomeController struct {
	authors   AuthorStore
	genres    GenreStore
	books     BookStore
	instances BookInstanceStore
}

func NewHomeController(authors AuthorStore, genres GenreStore, books BookStore, instances BookInstanceStore) *HomeController {
	return &HomeController{authors: authors, genres: genres, books: books, instances: instances}
}

// Index renders the dashboard with the catalog totals.
func (h *HomeController) Index(c *gin.Context) {
	counts, err := gatherCounts(c.Request.Context(), h.authors, h.genres, h.books, h.instances)
	if err != nil {
		serverError(c, "failed to load catalog counts", err)
		return
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"Title":  "Local Library Home",
		"Counts": counts,
	})
}
