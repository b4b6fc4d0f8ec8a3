package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"locallibrary/internal/database"
	"locallibrary/internal/entities"
	"locallibrary/internal/forms"
)

type BookInstancesController struct {
	instances BookInstanceStore
	books     BookStore
}

func NewBookInstancesController(instances BookInstanceStore, books BookStore) *BookInstancesController {
	return &BookInstancesController{instances: instances, books: books}
}

// List renders all copies with their book references resolved.
func (ic *BookInstancesController) List(c *gin.Context) {
	all, err := ic.instances.AllWithBooks(c.Request.Context())
	if err != nil {
		serverError(c, "failed to load book instances", err)
		return
	}

	c.HTML(http.StatusOK, "bookinstance_list", gin.H{
		"Title":     "Book Instance List",
		"Instances": all,
	})
}

// Detail is a placeholder, kept deliberately unimplemented.
func (ic *BookInstancesController) Detail(c *gin.Context) {
	c.String(http.StatusOK, "NOT IMPLEMENTED: BookInstance detail: %s", c.Param("id"))
}

// CreateGet renders the copy form with the book option list.
func (ic *BookInstancesController) CreateGet(c *gin.Context) {
	allBooks, err := ic.books.All(c.Request.Context())
	if err != nil {
		serverError(c, "failed to load book options", err)
		return
	}

	c.HTML(http.StatusOK, "bookinstance_form", gin.H{
		"Title":        "Create BookInstance",
		"Books":        allBooks,
		"Statuses":     entities.InstanceStatuses,
		"SelectedBook": "",
		"DueBack":      "",
		"CSRFField":    csrfField(c),
	})
}

// CreatePost validates the submission, verifies the book reference and
// persists the copy. Status defaults to Maintenance and due_back to now
// when left unset.
func (ic *BookInstancesController) CreatePost(c *gin.Context) {
	ctx := c.Request.Context()
	form := forms.New()

	bookID := form.Field("book", c.PostForm("book")).
		Trim().Required("Book must be selected.").Escape().Value()
	imprint := form.Field("imprint", c.PostForm("imprint")).
		Trim().Required("Imprint must not be empty.").Escape().Value()
	dueBack := form.OptionalDate("due_back", c.PostForm("due_back"), "Invalid date.")
	status := form.Field("status", c.PostForm("status")).Trim().Escape().Value()

	inst := entities.BookInstance{
		Imprint: imprint,
		Status:  entities.InstanceStatus(status),
	}
	if dueBack != nil {
		inst.DueBack = *dueBack
	}
	if status != "" && !inst.Status.Valid() {
		form.AddError("status", "Status is not a known status.")
	}

	if bookID != "" {
		book, err := ic.books.GetByID(ctx, bookID)
		switch {
		case err == nil:
			inst.BookID = book.ID
		case errors.Is(err, database.ErrInvalidID), errors.Is(err, database.ErrNotFound):
			form.AddError("book", "Book must be an existing book.")
		default:
			serverError(c, "failed to verify book reference", err)
			return
		}
	}

	if !form.Valid() {
		allBooks, err := ic.books.All(ctx)
		if err != nil {
			serverError(c, "failed to load book options", err)
			return
		}
		c.HTML(http.StatusOK, "bookinstance_form", gin.H{
			"Title":        "Create BookInstance",
			"Books":        allBooks,
			"Statuses":     entities.InstanceStatuses,
			"Instance":     inst,
			"SelectedBook": bookID,
			"DueBack":      c.PostForm("due_back"),
			"Errors":       form.Errors(),
			"CSRFField":    csrfField(c),
		})
		return
	}

	if err := ic.instances.Create(ctx, &inst); err != nil {
		serverError(c, "failed to save book instance", err)
		return
	}
	c.Redirect(http.StatusFound, inst.URL())
}
