// Package authors provides database operations for author records.
package authors

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

// Repository handles author persistence.
type Repository struct {
	coll *mongo.Collection
}

func NewRepository(db *database.Database) *Repository {
	return &Repository{coll: db.Collection(database.CollAuthors)}
}

// Create inserts an author and assigns its generated ID.
func (r *Repository) Create(ctx context.Context, author *entities.Author) error {
	res, err := r.coll.InsertOne(ctx, author)
	if err != nil {
		return fmt.Errorf("failed to insert author: %w", err)
	}
	author.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID retrieves one author. Returns database.ErrInvalidID for a
// malformed identifier and database.ErrNotFound when no record matches.
func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Author, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}

	var author entities.Author
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&author); err != nil {
		return nil, database.MapFindErr(err)
	}
	return &author, nil
}

// All returns every author sorted by family name ascending.
func (r *Repository) All(ctx context.Context) ([]entities.Author, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "family_name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch authors: %w", err)
	}
	defer cursor.Close(ctx)

	var all []entities.Author
	if err := cursor.All(ctx, &all); err != nil {
		return nil, fmt.Errorf("failed to decode authors: %w", err)
	}
	return all, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
