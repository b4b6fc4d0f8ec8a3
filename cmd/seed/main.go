// Command seed wipes the catalog collections and loads sample data.
// Usage: go run ./cmd/seed [-uri mongodb://...] [-db local_library]
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/config"
	"locallibrary/internal/database"
	"locallibrary/internal/database/authors"
	"locallibrary/internal/database/bookinstances"
	"locallibrary/internal/database/books"
	"locallibrary/internal/database/genres"
	"locallibrary/internal/entities"
)

func main() {
	cfg := config.NewConfig()
	uri := flag.String("uri", cfg.Mongo.URI, "MongoDB connection string")
	dbName := flag.String("db", cfg.Mongo.DBName, "database name")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := database.New(ctx, *uri, *dbName)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer db.Close(context.Background())

	log.Println("Clearing database...")
	for _, coll := range []string{
		database.CollGenres,
		database.CollAuthors,
		database.CollBooks,
		database.CollBookInstances,
	} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s: %v", coll, err)
		}
	}

	genreRepo := genres.NewRepository(db)
	authorRepo := authors.NewRepository(db)
	bookRepo := books.NewRepository(db)
	instanceRepo := bookinstances.NewRepository(db)

	genreIDs := seedGenres(ctx, genreRepo)
	authorIDs := seedAuthors(ctx, authorRepo)
	bookIDs := seedBooks(ctx, bookRepo, authorIDs, genreIDs)
	seedInstances(ctx, instanceRepo, bookIDs)

	log.Println("Database populated successfully!")
}

func seedGenres(ctx context.Context, repo *genres.Repository) []primitive.ObjectID {
	names := []string{"Fantasy", "Science Fiction", "Romance"}

	ids := make([]primitive.ObjectID, 0, len(names))
	for _, name := range names {
		genre := entities.Genre{Name: name}
		if err := repo.Create(ctx, &genre); err != nil {
			log.Fatalf("Failed to add genre %s: %v", name, err)
		}
		log.Printf("Added genre: %s", name)
		ids = append(ids, genre.ID)
	}
	return ids
}

func seedAuthors(ctx context.Context, repo *authors.Repository) []primitive.ObjectID {
	seed := []entities.Author{
		{FirstName: "Patrick", FamilyName: "Rothfuss", DateOfBirth: date(1973, 6, 6)},
		{FirstName: "Brandon", FamilyName: "Sanderson", DateOfBirth: date(1975, 12, 19)},
		{FirstName: "Terry", FamilyName: "Pratchett", DateOfBirth: date(1948, 4, 28), DateOfDeath: date(2015, 3, 12)},
		{FirstName: "Marie", FamilyName: "Curie", DateOfBirth: date(1867, 11, 7), DateOfDeath: date(1934, 7, 4)},
		{FirstName: "Isaac", FamilyName: "Newton", DateOfBirth: date(1643, 1, 4), DateOfDeath: date(1727, 3, 31)},
		{FirstName: "Ben", FamilyName: "Bova", DateOfBirth: date(1932, 11, 8), DateOfDeath: date(2020, 3, 29)},
	}

	ids := make([]primitive.ObjectID, 0, len(seed))
	for i := range seed {
		if err := repo.Create(ctx, &seed[i]); err != nil {
			log.Fatalf("Failed to add author %s: %v", seed[i].Name(), err)
		}
		log.Printf("Added author: %s %s", seed[i].FirstName, seed[i].FamilyName)
		ids = append(ids, seed[i].ID)
	}
	return ids
}

func seedBooks(ctx context.Context, repo *books.Repository, authorIDs, genreIDs []primitive.ObjectID) []primitive.ObjectID {
	seed := []entities.Book{
		{
			Title:    "The Name of the Wind",
			AuthorID: authorIDs[0],
			GenreIDs: []primitive.ObjectID{genreIDs[0]},
			Summary:  "A tale of a gifted young musician and magician's rise to fame.",
			ISBN:     "123456789",
		},
		{
			Title:    "Mistborn",
			AuthorID: authorIDs[1],
			GenreIDs: []primitive.ObjectID{genreIDs[1]},
			Summary:  "A unique magical system and a gripping story of rebellion.",
			ISBN:     "987654321",
		},
		{
			Title:    "The Colour of Magic",
			AuthorID: authorIDs[2],
			GenreIDs: []primitive.ObjectID{genreIDs[2]},
			Summary:  "The first adventure of Discworld's Rincewind and Twoflower.",
			ISBN:     "555666777",
		},
		{
			Title:    "Marie Curie's Quest",
			AuthorID: authorIDs[3],
			GenreIDs: []primitive.ObjectID{genreIDs[0]},
			Summary:  "A dramatized exploration of the great scientist's life.",
			ISBN:     "444555666",
		},
		{
			Title:    "Principia Mathematica",
			AuthorID: authorIDs[4],
			GenreIDs: []primitive.ObjectID{genreIDs[1]},
			Summary:  "The groundbreaking work of Isaac Newton.",
			ISBN:     "333444555",
		},
		{
			Title:    "Wise Man's Fear",
			AuthorID: authorIDs[0],
			GenreIDs: []primitive.ObjectID{genreIDs[2]},
			Summary:  "The second part of Kvothe's journey in search of answers.",
			ISBN:     "222333444",
		},
		{
			Title:    "Stormlight Archive",
			AuthorID: authorIDs[1],
			GenreIDs: []primitive.ObjectID{genreIDs[0]},
			Summary:  "An epic story of knights, magic, and destiny.",
			ISBN:     "111222333",
		},
	}

	ids := make([]primitive.ObjectID, 0, len(seed))
	for i := range seed {
		if err := repo.Create(ctx, &seed[i]); err != nil {
			log.Fatalf("Failed to add book %s: %v", seed[i].Title, err)
		}
		log.Printf("Added book: %s", seed[i].Title)
		ids = append(ids, seed[i].ID)
	}
	return ids
}

func seedInstances(ctx context.Context, repo *bookinstances.Repository, bookIDs []primitive.ObjectID) {
	seed := []entities.BookInstance{
		{BookID: bookIDs[0], Imprint: "First Edition, Hardcover", Status: entities.StatusAvailable},
		{BookID: bookIDs[1], Imprint: "Collectors' Edition, Signed", Status: entities.StatusLoaned},
		{BookID: bookIDs[2], Imprint: "Paperback Edition", Status: entities.StatusReserved},
		{BookID: bookIDs[3], Imprint: "Library Copy, Special Edition", Status: entities.StatusAvailable},
		{BookID: bookIDs[4], Imprint: "Mass Market Edition", Status: entities.StatusLoaned},
		{BookID: bookIDs[5], Imprint: "Limited Print, Hardcover", Status: entities.StatusMaintenance},
		{BookID: bookIDs[6], Imprint: "Deluxe Edition", Status: entities.StatusAvailable},
		{BookID: bookIDs[0], Imprint: "Anniversary Edition", Status: entities.StatusLoaned},
		{BookID: bookIDs[1], Imprint: "Exclusive Cover Edition", Status: entities.StatusReserved},
		{BookID: bookIDs[2], Imprint: "Second Edition", Status: entities.StatusMaintenance},
		{BookID: bookIDs[3], Imprint: "Collector's Vault Edition", Status: entities.StatusAvailable},
	}

	for i := range seed {
		if err := repo.Create(ctx, &seed[i]); err != nil {
			log.Fatalf("Failed to add book instance %s: %v", seed[i].Imprint, err)
		}
		log.Printf("Added book instance: %s", seed[i].Imprint)
	}
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
