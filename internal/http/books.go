package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"locallibrary/internal/database"
	"locallibrary/internal/entities"
	"locallibrary/internal/forms"
)

type BooksController struct {
	books     BookStore
	authors   AuthorStore
	genres    GenreStore
	instances BookInstanceStore
}

func NewBooksController(books BookStore, authors AuthorStore, genres GenreStore, instances BookInstanceStore) *BooksController {
	return &BooksController{books: books, authors: authors, genres: genres, instances: instances}
}

// List renders all books sorted by title, each with its author resolved.
func (bc *BooksController) List(c *gin.Context) {
	all, err := bc.books.AllWithAuthors(c.Request.Context())
	if err != nil {
		serverError(c, "failed to load books", err)
		return
	}

	c.HTML(http.StatusOK, "book_list", gin.H{
		"Title": "Book List",
		"Books": all,
	})
}

// Detail renders one book (author and genres populated) together with
// its copies. Both fetches run concurrently.
func (bc *BooksController) Detail(c *gin.Context) {
	id := c.Param("id")
	oid, err := database.ParseID(id)
	if err != nil {
		renderLookupError(c, "book", err)
		return
	}

	var (
		book   *entities.Book
		copies []entities.BookInstance
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		book, err = bc.books.GetByID(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		copies, err = bc.instances.ByBook(ctx, oid)
		return err
	})
	if err := g.Wait(); err != nil {
		renderLookupError(c, "book", err)
		return
	}

	c.HTML(http.StatusOK, "book_detail", gin.H{
		"Title":  book.Title,
		"Book":   book,
		"Copies": copies,
	})
}

// genreOption is a genre plus its checked state for form re-renders.
type genreOption struct {
	entities.Genre
	Checked bool
}

// formOptions fetches the author and genre option lists concurrently.
func (bc *BooksController) formOptions(ctx context.Context, selectedGenres map[string]bool) ([]entities.Author, []genreOption, error) {
	var (
		allAuthors []entities.Author
		allGenres  []entities.Genre
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		allAuthors, err = bc.authors.All(ctx)
		return err
	})
	g.Go(func() (err error) {
		allGenres, err = bc.genres.All(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	options := make([]genreOption, 0, len(allGenres))
	for _, genre := range allGenres {
		options = append(options, genreOption{
			Genre:   genre,
			Checked: selectedGenres[genre.ID.Hex()],
		})
	}
	return allAuthors, options, nil
}

// CreateGet renders the book form with author and genre option lists.
func (bc *BooksController) CreateGet(c *gin.Context) {
	allAuthors, options, err := bc.formOptions(c.Request.Context(), nil)
	if err != nil {
		serverError(c, "failed to load book form options", err)
		return
	}

	c.HTML(http.StatusOK, "book_form", gin.H{
		"Title":          "Create Book",
		"Authors":        allAuthors,
		"Genres":         options,
		"SelectedAuthor": "",
		"CSRFField":      csrfField(c),
	})
}

// CreatePost validates the submission, verifies that the selected
// author and genres actually exist, and persists the book. On any
// failure the form is re-rendered with the option lists refetched and
// the submitted values preserved.
func (bc *BooksController) CreatePost(c *gin.Context) {
	ctx := c.Request.Context()
	form := forms.New()

	title := form.Field("title", c.PostForm("title")).
		Trim().Required("Title must not be empty.").Escape().Value()
	authorID := form.Field("author", c.PostForm("author")).
		Trim().Required("Author must not be empty.").Escape().Value()
	summary := form.Field("summary", c.PostForm("summary")).
		Trim().Required("Summary must not be empty.").Escape().Value()
	isbn := form.Field("isbn", c.PostForm("isbn")).
		Trim().Required("ISBN must not be empty.").Escape().Value()
	genreIDs := forms.EscapeAll(c.PostFormArray("genre"))

	book := entities.Book{
		Title:   title,
		Summary: summary,
		ISBN:    isbn,
	}

	// Reference checks: the form options come from the database, but the
	// submitted ids are still client input and must point at real records.
	if authorID != "" {
		author, err := bc.authors.GetByID(ctx, authorID)
		switch {
		case err == nil:
			book.AuthorID = author.ID
		case errors.Is(err, database.ErrInvalidID), errors.Is(err, database.ErrNotFound):
			form.AddError("author", "Author must be an existing author.")
		default:
			serverError(c, "failed to verify author reference", err)
			return
		}
	}
	selected := make(map[string]bool, len(genreIDs))
	for _, gid := range genreIDs {
		genre, err := bc.genres.GetByID(ctx, gid)
		switch {
		case err == nil:
			book.GenreIDs = append(book.GenreIDs, genre.ID)
			selected[gid] = true
		case errors.Is(err, database.ErrInvalidID), errors.Is(err, database.ErrNotFound):
			form.AddError("genre", "Genre selection is not a known genre.")
		default:
			serverError(c, "failed to verify genre reference", err)
			return
		}
	}

	if !form.Valid() {
		allAuthors, options, err := bc.formOptions(ctx, selected)
		if err != nil {
			serverError(c, "failed to load book form options", err)
			return
		}
		c.HTML(http.StatusOK, "book_form", gin.H{
			"Title":          "Create Book",
			"Authors":        allAuthors,
			"Genres":         options,
			"Book":           book,
			"SelectedAuthor": authorID,
			"Errors":         form.Errors(),
			"CSRFField":      csrfField(c),
		})
		return
	}

	if book.GenreIDs == nil {
		book.GenreIDs = []primitive.ObjectID{}
	}
	if err := bc.books.Create(ctx, &book); err != nil {
		serverError(c, "failed to save book", err)
		return
	}
	c.Redirect(http.StatusFound, book.URL())
}
