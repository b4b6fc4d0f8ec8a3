// Package database owns the MongoDB connection and the error taxonomy
// shared by the per-entity repositories.
package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when a lookup by identifier matches no record.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidID is returned when an identifier does not parse as an
	// ObjectID at all. Kept distinct from ErrNotFound so handlers can
	// answer 400 instead of 404.
	ErrInvalidID = errors.New("invalid identifier")
)

const connectTimeout = 10 * time.Second

// Collection names for the four top-level entity kinds.
const (
	CollAuthors       = "authors"
	CollGenres        = "genres"
	CollBooks         = "books"
	CollBookInstances = "bookinstances"
)

type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB at the given URI and pings it before returning.
func New(ctx context.Context, uri, dbName string) (*Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Printf("MongoDB connected successfully (database %q)", dbName)

	return &Database{client: client, db: client.Database(dbName)}, nil
}

func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *Database) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, nil)
}

// EnsureGenreNameIndex creates a unique index on genres.name using the
// same case- and accent-insensitive collation the duplicate lookup uses.
// Optional: with it the check-then-act duplicate policy is backed by an
// atomic constraint; without it concurrent identical submissions may race.
func (d *Database) EnsureGenreNameIndex(ctx context.Context) error {
	_, err := d.Collection(CollGenres).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetCollation(FoldCollation()),
	})
	if err != nil {
		return fmt.Errorf("failed to create genre name index: %w", err)
	}
	return nil
}

// FoldCollation is the collation used for genre-name comparisons:
// primary strength ignores both case and diacritics.
func FoldCollation() *options.Collation {
	return &options.Collation{Locale: "en", Strength: 1}
}

// ParseID converts a route parameter into an ObjectID, mapping parse
// failures onto ErrInvalidID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// MapFindErr normalizes driver errors from single-document lookups.
func MapFindErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
