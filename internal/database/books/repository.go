// Package books provides database operations for book records.
//
// Reference fields (author, genre) are stored as raw ObjectIDs; the
// populated variants resolve them with follow-up queries against the
// authors and genres collections.
package books

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"locallibrary/internal/database"
	"locallibrary/internal/entities"
)

// Repository handles book persistence and reference resolution.
type Repository struct {
	coll    *mongo.Collection
	authors *mongo.Collection
	genres  *mongo.Collection
}

func NewRepository(db *database.Database) *Repository {
	return &Repository{
		coll:    db.Collection(database.CollBooks),
		authors: db.Collection(database.CollAuthors),
		genres:  db.Collection(database.CollGenres),
	}
}

func (r *Repository) Create(ctx context.Context, book *entities.Book) error {
	if book.GenreIDs == nil {
		book.GenreIDs = []primitive.ObjectID{}
	}
	res, err := r.coll.InsertOne(ctx, book)
	if err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}
	book.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID retrieves one book with its author and genre references
// resolved. Returns database.ErrInvalidID / database.ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Book, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}

	var book entities.Book
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&book); err != nil {
		return nil, database.MapFindErr(err)
	}

	var author entities.Author
	if err := r.authors.FindOne(ctx, bson.M{"_id": book.AuthorID}).Decode(&author); err == nil {
		book.Author = &author
	} else if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to resolve book author: %w", err)
	}

	if len(book.GenreIDs) > 0 {
		cursor, err := r.genres.Find(ctx, bson.M{"_id": bson.M{"$in": book.GenreIDs}})
		if err != nil {
			return nil, fmt.Errorf("failed to resolve book genres: %w", err)
		}
		defer cursor.Close(ctx)
		if err := cursor.All(ctx, &book.Genres); err != nil {
			return nil, fmt.Errorf("failed to decode book genres: %w", err)
		}
	}

	return &book, nil
}

// All returns every book sorted by title ascending, references unresolved.
func (r *Repository) All(ctx context.Context) ([]entities.Book, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch books: %w", err)
	}
	defer cursor.Close(ctx)

	var all []entities.Book
	if err := cursor.All(ctx, &all); err != nil {
		return nil, fmt.Errorf("failed to decode books: %w", err)
	}
	return all, nil
}

// AllWithAuthors returns every book sorted by title ascending with the
// author reference resolved, for the book list view.
func (r *Repository) AllWithAuthors(ctx context.Context) ([]entities.Book, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return all, nil
	}

	ids := make([]primitive.ObjectID, 0, len(all))
	seen := make(map[primitive.ObjectID]bool, len(all))
	for _, b := range all {
		if !seen[b.AuthorID] {
			seen[b.AuthorID] = true
			ids = append(ids, b.AuthorID)
		}
	}

	cursor, err := r.authors.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve book authors: %w", err)
	}
	defer cursor.Close(ctx)

	var resolved []entities.Author
	if err := cursor.All(ctx, &resolved); err != nil {
		return nil, fmt.Errorf("failed to decode book authors: %w", err)
	}

	byID := make(map[primitive.ObjectID]*entities.Author, len(resolved))
	for i := range resolved {
		byID[resolved[i].ID] = &resolved[i]
	}
	for i := range all {
		all[i].Author = byID[all[i].AuthorID]
	}
	return all, nil
}

// ByAuthor returns title and summary of every book referencing the author.
func (r *Repository) ByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]entities.Book, error) {
	return r.findProjected(ctx, bson.M{"author": authorID})
}

// ByGenre returns title and summary of every book referencing the genre.
func (r *Repository) ByGenre(ctx context.Context, genreID primitive.ObjectID) ([]entities.Book, error) {
	return r.findProjected(ctx, bson.M{"genre": genreID})
}

func (r *Repository) findProjected(ctx context.Context, filter bson.M) ([]entities.Book, error) {
	cursor, err := r.coll.Find(ctx, filter,
		options.Find().SetProjection(bson.M{"title": 1, "summary": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch books: %w", err)
	}
	defer cursor.Close(ctx)

	var found []entities.Book
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("failed to decode books: %w", err)
	}
	return found, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
