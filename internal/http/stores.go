package http

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/entities"
)

// Store interfaces consumed by the controllers. The production
// implementations live in internal/database/<entity>; tests substitute
// in-memory fakes.

type AuthorStore interface {
	Create(ctx context.Context, author *entities.Author) error
	GetByID(ctx context.Context, id string) (*entities.Author, error)
	All(ctx context.Context) ([]entities.Author, error)
	Count(ctx context.Context) (int64, error)
}

type GenreStore interface {
	Create(ctx context.Context, genre *entities.Genre) error
	GetByID(ctx context.Context, id string) (*entities.Genre, error)
	GetByNameFold(ctx context.Context, name string) (*entities.Genre, error)
	All(ctx context.Context) ([]entities.Genre, error)
	Count(ctx context.Context) (int64, error)
}

type BookStore interface {
	Create(ctx context.Context, book *entities.Book) error
	GetByID(ctx context.Context, id string) (*entities.Book, error)
	All(ctx context.Context) ([]entities.Book, error)
	AllWithAuthors(ctx context.Context) ([]entities.Book, error)
	ByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]entities.Book, error)
	ByGenre(ctx context.Context, genreID primitive.ObjectID) ([]entities.Book, error)
	Count(ctx context.Context) (int64, error)
}

type BookInstanceStore interface {
	Create(ctx context.Context, inst *entities.BookInstance) error
	AllWithBooks(ctx context.Context) ([]entities.BookInstance, error)
	ByBook(ctx context.Context, bookID primitive.ObjectID) ([]entities.BookInstance, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entities.InstanceStatus) (int64, error)
}

// Pinger is the slice of the database the health endpoint needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterConfig carries every dependency the router wires into the
// controllers, keeping NewRouter's signature stable as concerns grow.
type RouterConfig struct {
	Authors       AuthorStore
	Genres        GenreStore
	Books         BookStore
	BookInstances BookInstanceStore

	DB      Pinger
	Version string

	TemplatesPath string
	StaticPath    string

	APIRateLimit  int
	APIRateWindow time.Duration
}
