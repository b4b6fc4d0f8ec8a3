// Package genres provides database operations for genre records.
package genres

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

// Repository handles genre persistence.
type Repository struct {
	coll *mongo.Collection
}

func NewRepository(db *database.Database) *Repository {
	return &Repository{coll: db.Collection(database.CollGenres)}
}

func (r *Repository) Create(ctx context.Context, genre *entities.Genre) error {
	res, err := r.coll.InsertOne(ctx, genre)
	if err != nil {
		return fmt.Errorf("failed to insert genre: %w", err)
	}
	genre.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Genre, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}

	var genre entities.Genre
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&genre); err != nil {
		return nil, database.MapFindErr(err)
	}
	return &genre, nil
}

// GetByNameFold looks a genre up by name ignoring case and diacritics.
// Returns database.ErrNotFound when no genre matches.
func (r *Repository) GetByNameFold(ctx context.Context, name string) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.coll.FindOne(ctx, bson.M{"name": name},
		options.FindOne().SetCollation(database.FoldCollation())).Decode(&genre)
	if err != nil {
		return nil, database.MapFindErr(err)
	}
	return &genre, nil
}

// All returns every genre sorted by name ascending.
func (r *Repository) All(ctx context.Context) ([]entities.Genre, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch genres: %w", err)
	}
	defer cursor.Close(ctx)

	var all []entities.Genre
	if err := cursor.All(ctx, &all); err != nil {
		return nil, fmt.Errorf("failed to decode genres: %w", err)
	}
	return all, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
