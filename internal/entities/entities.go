package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InstanceStatus tracks where a physical copy of a book currently is.
type InstanceStatus string

const (
	StatusAvailable   InstanceStatus = "Available"
	StatusMaintenance InstanceStatus = "Maintenance"
	StatusLoaned      InstanceStatus = "Loaned"
	StatusReserved    InstanceStatus = "Reserved"
)

// InstanceStatuses lists the accepted statuses in form-option order.
var InstanceStatuses = []InstanceStatus{
	StatusMaintenance,
	StatusAvailable,
	StatusLoaned,
	StatusReserved,
}

// Valid reports whether s is one of the known statuses.
func (s InstanceStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved:
		return true
	}
	return false
}

type Author struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName   string             `bson:"first_name" json:"first_name"`
	FamilyName  string             `bson:"family_name" json:"family_name"`
	DateOfBirth *time.Time         `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time         `bson:"date_of_death,omitempty" json:"date_of_death,omitempty"`
}

// Name returns the display name in "FamilyName, FirstName" form.
// Either half may be missing on legacy records; the comma is only
// emitted when both are present.
func (a Author) Name() string {
	switch {
	case a.FirstName != "" && a.FamilyName != "":
		return a.FamilyName + ", " + a.FirstName
	case a.FamilyName != "":
		return a.FamilyName
	default:
		return a.FirstName
	}
}

// Lifespan formats the birth and death dates as "birth – death".
// A missing date leaves its side of the dash empty; when both dates
// are missing the result is the empty string.
func (a Author) Lifespan() string {
	if a.DateOfBirth == nil && a.DateOfDeath == nil {
		return ""
	}
	var birth, death string
	if a.DateOfBirth != nil {
		birth = a.DateOfBirth.Format("Jan 2, 2006")
	}
	if a.DateOfDeath != nil {
		death = a.DateOfDeath.Format("Jan 2, 2006")
	}
	return birth + " – " + death
}

func (a Author) URL() string {
	return "/catalog/author/" + a.ID.Hex()
}

type Genre struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

func (g Genre) URL() string {
	return "/catalog/genre/" + g.ID.Hex()
}

type Book struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title    string               `bson:"title" json:"title"`
	AuthorID primitive.ObjectID   `bson:"author" json:"author_id"`
	Summary  string               `bson:"summary" json:"summary"`
	ISBN     string               `bson:"isbn" json:"isbn"`
	GenreIDs []primitive.ObjectID `bson:"genre" json:"genre_ids"`

	// Populated by the repositories via follow-up queries; never stored.
	Author *Author `bson:"-" json:"author,omitempty"`
	Genres []Genre `bson:"-" json:"genres,omitempty"`
}

func (b Book) URL() string {
	return "/catalog/book/" + b.ID.Hex()
}

type BookInstance struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookID  primitive.ObjectID `bson:"book" json:"book_id"`
	Imprint string             `bson:"imprint" json:"imprint"`
	Status  InstanceStatus     `bson:"status" json:"status"`
	DueBack time.Time          `bson:"due_back" json:"due_back"`

	// Populated by the repositories; never stored.
	Book *Book `bson:"-" json:"book,omitempty"`
}

func (bi BookInstance) URL() string {
	return "/catalog/bookinstance/" + bi.ID.Hex()
}

// DueBackFormatted renders the due date for list and detail pages.
func (bi BookInstance) DueBackFormatted() string {
	return bi.DueBack.Format("Jan 2, 2006")
}
