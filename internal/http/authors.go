package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"locallibrary/internal/database"
	"locallibrary/internal/entities"
	"locallibrary/internal/forms"
)

type AuthorsController struct {
	authors AuthorStore
	books   BookStore
}

func NewAuthorsController(authors AuthorStore, books BookStore) *AuthorsController {
	return &AuthorsController{authors: authors, books: books}
}

// List renders all authors sorted by family name.
func (ac *AuthorsController) List(c *gin.Context) {
	all, err := ac.authors.All(c.Request.Context())
	if err != nil {
		serverError(c, "failed to load authors", err)
		return
	}

	c.HTML(http.StatusOK, "author_list", gin.H{
		"Title":   "Author List",
		"Authors": all,
	})
}

// Detail renders one author together with their books. The author fetch
// and the reverse join run concurrently; a missing author short-circuits
// to the 404 page and the joined results are discarded.
func (ac *AuthorsController) Detail(c *gin.Context) {
	id := c.Param("id")
	oid, err := database.ParseID(id)
	if err != nil {
		renderLookupError(c, "author", err)
		return
	}

	var (
		author      *entities.Author
		authorBooks []entities.Book
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		author, err = ac.authors.GetByID(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		authorBooks, err = ac.books.ByAuthor(ctx, oid)
		return err
	})
	if err := g.Wait(); err != nil {
		renderLookupError(c, "author", err)
		return
	}

	c.HTML(http.StatusOK, "author_detail", gin.H{
		"Title":  "Author Detail",
		"Author": author,
		"Books":  authorBooks,
	})
}

// CreateGet renders the empty author form.
func (ac *AuthorsController) CreateGet(c *gin.Context) {
	c.HTML(http.StatusOK, "author_form", gin.H{
		"Title":       "Create Author",
		"DateOfBirth": "",
		"DateOfDeath": "",
		"CSRFField":   csrfField(c),
	})
}

// CreatePost validates the submission and either persists the author
// and redirects to its page, or re-renders the form with every field
// error and the submitted values.
func (ac *AuthorsController) CreatePost(c *gin.Context) {
	form := forms.New()

	firstName := form.Field("first_name", c.PostForm("first_name")).
		Trim().
		Required("First name must be specified.").
		Alphanumeric("First name has non-alphanumeric characters.").
		Escape().
		Value()
	familyName := form.Field("family_name", c.PostForm("family_name")).
		Trim().
		Required("Family name must be specified.").
		Alphanumeric("Family name has non-alphanumeric characters.").
		Escape().
		Value()
	dateOfBirth := form.OptionalDate("date_of_birth", c.PostForm("date_of_birth"), "Invalid date of birth.")
	dateOfDeath := form.OptionalDate("date_of_death", c.PostForm("date_of_death"), "Invalid date of death.")

	author := entities.Author{
		FirstName:   firstName,
		FamilyName:  familyName,
		DateOfBirth: dateOfBirth,
		DateOfDeath: dateOfDeath,
	}

	if !form.Valid() {
		c.HTML(http.StatusOK, "author_form", gin.H{
			"Title":       "Create Author",
			"Author":      author,
			"DateOfBirth": c.PostForm("date_of_birth"),
			"DateOfDeath": c.PostForm("date_of_death"),
			"Errors":      form.Errors(),
			"CSRFField":   csrfField(c),
		})
		return
	}

	if err := ac.authors.Create(c.Request.Context(), &author); err != nil {
		serverError(c, "failed to save author", err)
		return
	}
	c.Redirect(http.StatusFound, author.URL())
}
