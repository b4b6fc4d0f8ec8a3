package http

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/database"
	"locallibrary/internal/entities"
	"locallibrary/internal/forms"
)

// fakeData is an in-memory catalog backing the store fakes. Setting err
// makes every store operation fail, for exercising the error boundary.
type fakeData struct {
	authors   []entities.Author
	genres    []entities.Genre
	books     []entities.Book
	instances []entities.BookInstance
	err       error
}

func (d *fakeData) addAuthor(a entities.Author) entities.Author {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	d.authors = append(d.authors, a)
	return a
}

func (d *fakeData) addGenre(g entities.Genre) entities.Genre {
	if g.ID.IsZero() {
		g.ID = primitive.NewObjectID()
	}
	d.genres = append(d.genres, g)
	return g
}

func (d *fakeData) addBook(b entities.Book) entities.Book {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	b.Author = nil
	b.Genres = nil
	d.books = append(d.books, b)
	return b
}

func (d *fakeData) addInstance(i entities.BookInstance) entities.BookInstance {
	if i.ID.IsZero() {
		i.ID = primitive.NewObjectID()
	}
	i.Book = nil
	d.instances = append(d.instances, i)
	return i
}

func (d *fakeData) authorByID(id primitive.ObjectID) *entities.Author {
	for i := range d.authors {
		if d.authors[i].ID == id {
			a := d.authors[i]
			return &a
		}
	}
	return nil
}

func (d *fakeData) bookByID(id primitive.ObjectID) *entities.Book {
	for i := range d.books {
		if d.books[i].ID == id {
			b := d.books[i]
			return &b
		}
	}
	return nil
}

type fakeAuthors struct{ d *fakeData }

func (f *fakeAuthors) Create(_ context.Context, author *entities.Author) error {
	if f.d.err != nil {
		return f.d.err
	}
	author.ID = primitive.NewObjectID()
	f.d.authors = append(f.d.authors, *author)
	return nil
}

func (f *fakeAuthors) GetByID(_ context.Context, id string) (*entities.Author, error) {
	if f.d.err != nil {
		return nil, f.d.err
	}
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}
	if a := f.d.authorByID(oid); a != nil {
		return a, nil
	}
	return nil, database.ErrNotFound
}

func (f *fakeAuthors) All(_ context.Context) ([]entities.Author, error) {
	if f.d.err != nil {
		return nil, f.d.err
	}
	all := append([]entities.Author(nil), f.d.authors...)
	sort.Slice(all, func(i, j int) bool { return all[i].FamilyName < all[j].FamilyName })
	return all, nil
}

func (f *fakeAuthors) Count(_ context.Context) (int64, error) {
	if f.d.err != nil {
		return 0, f.d.err
	}
	return int64(len(f.d.authors)), nil
}

type fakeGenres struct{ d *fakeData }

func (f *fakeGenres) Create(_ context.Context, genre *entities.Genre) error {
	if f.d.err != nil {
		return f.d.err
	}
	genre.ID = primitive.NewObjectID()
	f.d.genres = append(f.d.genres, *genre)
	return nil
}

func (f *fakeGenres) GetByID(_ context.Context, id string) (*entities.Genre, error) {
	if f.d.err != nil {
		return nil, f.d.err
	}
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}
	for i := range f.d.genres {
		if f.d.genres[i].ID == oid {
			g := f.d.genres[i]
			return &g, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeGenres) GetByNameFold(_ context.Context, name string) (*entities.Genre, error) {
	if f.d.err != nil {
		return nil, f.d.err
	}
	for i := range f.d.genres {
		if forms.Fold(f.d.genres[i].Name) == forms.Fold(name) {
			g := f.d.genres[i]
			return &g, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeGenres) All(_ context.Context) ([]entities.Genre, error) {
	if f.d.err != nil {
		return nil, f.d.err
	}
	all := append([]entities.Genre(nil), f.d.genres...)
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (f *fakeGenres) Count(_ context.Context) (int64, error) {
	if f.d.err != nil {
		return 0, f.d.err
	}
	return int64(len(f.d.genres)), nil
}

type fakeBooks struct{ d *fakeData }

func (f *fakeBooks) Create(_ context.Context, book *entities.Book) error {
	if f.d.err != nil {
		return f.d.err
	}
	book.ID = primitive.NewObjectID()
	if book.GenreIDs == nil {
		book.GenreIDs = []primitive.ObjectID{}
	}
	stored := *book
	stored.Author = nil
	stored.Genres = nil
	f.d.books = append(f.d.books, stored)
	return nil
}

func (f *fakeBooks) GetByID(_ context.Context, id string) (*entities.Book, error) {
	if f.d.err != nil {
		return nil, f.d.err
	}
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}
	book := f.d.bookByID(oid)
	if book == nil {
		return nil, database.ErrNotFound
	}
	book.Author = f.d.authorByID(book.AuthorID)
	for _, gid := range book.GenreIDs {
		for i := range f.d.genres {
			if f.d.genres[i].ID == gid {
				book.Genres = append(book.Genres, f.d.genres[i])
			}
		}
	}
	return book, nil
}

func (f *fakeBooks) All(_ context.Context) ([]entities.Book, error) {
	if f.d.err != nil {
		return nil, f.d.err
	}
	all := append([]entities.Book(nil), f.d.books...)
	sort.Slice(all, func(i, j int) bool { return all[i].Title < all[j].Title })
	return all, nil
}

func (f *fakeBooks) AllWithAuthors(ctx context.Context) ([]entities.Book, error) {
	all, err := f.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		all[i].Author = f.d.authorByID(all[i].AuthorID)
	}
	return all, nil
}

func (f *fakeBooks) ByAuthor(_ context.Context, authorID primitive.ObjectID) ([]entities.Book, error) {
	if f.d.err != nil {
		return nil, f.d.err
	}
	var found []entities.Book
	for _, b := range f.d.books {
		if b.AuthorID == authorID {
			found = append(found, b)
		}
	}
	return found, nil
}

func (f *fakeBooks) ByGenre(_ context.Context, genreID primitive.ObjectID) ([]entities.Book, error) {
	if f.d.err != nil {
		return nil, f.d.err
	}
	var found []entities.Book
	for _, b := range f.d.books {
		for _, gid := range b.GenreIDs {
			if gid == genreID {
				found = append(found, b)
				break
			}
		}
	}
	return found, nil
}

func (f *fakeBooks) Count(_ context.Context) (int64, error) {
	if f.d.err != nil {
		return 0, f.d.err
	}
	return int64(len(f.d.books)), nil
}

type fakeInstances struct{ d *fakeData }

func (f *fakeInstances) Create(_ context.Context, inst *entities.BookInstance) error {
	if f.d.err != nil {
		return f.d.err
	}
	inst.ID = primitive.NewObjectID()
	if inst.Status == "" {
		inst.Status = entities.StatusMaintenance
	}
	if inst.DueBack.IsZero() {
		inst.DueBack = time.Now()
	}
	stored := *inst
	stored.Book = nil
	f.d.instances = append(f.d.instances, stored)
	return nil
}

func (f *fakeInstances) AllWithBooks(_ context.Context) ([]entities.BookInstance, error) {
	if f.d.err != nil {
		return nil, f.d.err
	}
	all := append([]entities.BookInstance(nil), f.d.instances...)
	for i := range all {
		all[i].Book = f.d.bookByID(all[i].BookID)
	}
	return all, nil
}

func (f *fakeInstances) ByBook(_ context.Context, bookID primitive.ObjectID) ([]entities.BookInstance, error) {
	if f.d.err != nil {
		return nil, f.d.err
	}
	var found []entities.BookInstance
	for _, inst := range f.d.instances {
		if inst.BookID == bookID {
			found = append(found, inst)
		}
	}
	return found, nil
}

func (f *fakeInstances) Count(_ context.Context) (int64, error) {
	if f.d.err != nil {
		return 0, f.d.err
	}
	return int64(len(f.d.instances)), nil
}

func (f *fakeInstances) CountByStatus(_ context.Context, status entities.InstanceStatus) (int64, error) {
	if f.d.err != nil {
		return 0, f.d.err
	}
	var n int64
	for _, inst := range f.d.instances {
		if inst.Status == status {
			n++
		}
	}
	return n, nil
}
