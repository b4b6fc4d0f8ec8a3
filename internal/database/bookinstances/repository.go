// Package bookinstances provides database operations for book copies.
package bookinstances

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"locallibrary/internal/database"
	"locallibrary/internal/entities"
)

// Repository handles book-instance persistence.
type Repository struct {
	coll  *mongo.Collection
	books *mongo.Collection
}

func NewRepository(db *database.Database) *Repository {
	return &Repository{
		coll:  db.Collection(database.CollBookInstances),
		books: db.Collection(database.CollBooks),
	}
}

// Create inserts a copy, applying the schema defaults: status falls back
// to Maintenance, due_back to the current time.
func (r *Repository) Create(ctx context.Context, inst *entities.BookInstance) error {
	if inst.Status == "" {
		inst.Status = entities.StatusMaintenance
	}
	if inst.DueBack.IsZero() {
		inst.DueBack = time.Now()
	}
	res, err := r.coll.InsertOne(ctx, inst)
	if err != nil {
		return fmt.Errorf("failed to insert book instance: %w", err)
	}
	inst.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// AllWithBooks returns every copy with its book reference resolved.
func (r *Repository) AllWithBooks(ctx context.Context) ([]entities.BookInstance, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch book instances: %w", err)
	}
	defer cursor.Close(ctx)

	var all []entities.BookInstance
	if err := cursor.All(ctx, &all); err != nil {
		return nil, fmt.Errorf("failed to decode book instances: %w", err)
	}
	if len(all) == 0 {
		return all, nil
	}

	ids := make([]primitive.ObjectID, 0, len(all))
	seen := make(map[primitive.ObjectID]bool, len(all))
	for _, inst := range all {
		if !seen[inst.BookID] {
			seen[inst.BookID] = true
			ids = append(ids, inst.BookID)
		}
	}

	bookCursor, err := r.books.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve instance books: %w", err)
	}
	defer bookCursor.Close(ctx)

	var resolved []entities.Book
	if err := bookCursor.All(ctx, &resolved); err != nil {
		return nil, fmt.Errorf("failed to decode instance books: %w", err)
	}

	byID := make(map[primitive.ObjectID]*entities.Book, len(resolved))
	for i := range resolved {
		byID[resolved[i].ID] = &resolved[i]
	}
	for i := range all {
		all[i].Book = byID[all[i].BookID]
	}
	return all, nil
}

// ByBook returns every copy of the given book.
func (r *Repository) ByBook(ctx context.Context, bookID primitive.ObjectID) ([]entities.BookInstance, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"book": bookID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch book instances: %w", err)
	}
	defer cursor.Close(ctx)

	var found []entities.BookInstance
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("failed to decode book instances: %w", err)
	}
	return found, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

// CountByStatus counts copies in the given status, e.g. available ones
// for the home page summary.
func (r *Repository) CountByStatus(ctx context.Context, status entities.InstanceStatus) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"status": status})
}
