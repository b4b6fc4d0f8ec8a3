package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"locallibrary/internal/database"
	"locallibrary/internal/entities"
	"locallibrary/internal/forms"
)

type GenresController struct {
	genres GenreStore
	books  BookStore
}

func NewGenresController(genres GenreStore, books BookStore) *GenresController {
	return &GenresController{genres: genres, books: books}
}

// List renders all genres sorted by name.
func (gc *GenresController) List(c *gin.Context) {
	all, err := gc.genres.All(c.Request.Context())
	if err != nil {
		serverError(c, "failed to load genres", err)
		return
	}

	c.HTML(http.StatusOK, "genre_list", gin.H{
		"Title":  "Genre List",
		"Genres": all,
	})
}

// Detail renders one genre and the books filed under it.
func (gc *GenresController) Detail(c *gin.Context) {
	id := c.Param("id")
	oid, err := database.ParseID(id)
	if err != nil {
		renderLookupError(c, "genre", err)
		return
	}

	var (
		genre        *entities.Genre
		booksInGenre []entities.Book
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		genre, err = gc.genres.GetByID(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		booksInGenre, err = gc.books.ByGenre(ctx, oid)
		return err
	})
	if err := g.Wait(); err != nil {
		renderLookupError(c, "genre", err)
		return
	}

	c.HTML(http.StatusOK, "genre_detail", gin.H{
		"Title": "Genre Detail",
		"Genre": genre,
		"Books": booksInGenre,
	})
}

// CreateGet renders the empty genre form.
func (gc *GenresController) CreateGet(c *gin.Context) {
	c.HTML(http.StatusOK, "genre_form", gin.H{
		"Title":     "Create Genre",
		"CSRFField": csrfField(c),
	})
}

// CreatePost validates the submitted name, then applies the duplicate
// policy: a case- and accent-insensitive match redirects to the existing
// genre instead of inserting a second record. The lookup and the insert
// are not atomic unless the unique genre-name index is enabled.
func (gc *GenresController) CreatePost(c *gin.Context) {
	form := forms.New()
	name := form.Field("name", c.PostForm("name")).
		Trim().
		MinLength(3, "Genre name must contain at least 3 characters.").
		Escape().
		Value()

	genre := entities.Genre{Name: name}

	if !form.Valid() {
		c.HTML(http.StatusOK, "genre_form", gin.H{
			"Title":     "Create Genre",
			"Genre":     genre,
			"Errors":    form.Errors(),
			"CSRFField": csrfField(c),
		})
		return
	}

	ctx := c.Request.Context()
	existing, err := gc.genres.GetByNameFold(ctx, name)
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, existing.URL())
	case errors.Is(err, database.ErrNotFound):
		if err := gc.genres.Create(ctx, &genre); err != nil {
			serverError(c, "failed to save genre", err)
			return
		}
		c.Redirect(http.StatusFound, genre.URL())
	default:
		serverError(c, "failed to check for existing genre", err)
	}
}
