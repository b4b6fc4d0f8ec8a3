package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAuthor_Name(t *testing.T) {
	assert.Equal(t, "Austen, Jane", Author{FirstName: "Jane", FamilyName: "Austen"}.Name())
	assert.Equal(t, "Austen", Author{FamilyName: "Austen"}.Name())
	assert.Equal(t, "Jane", Author{FirstName: "Jane"}.Name())
	assert.Equal(t, "", Author{}.Name())
}

func TestAuthor_Lifespan(t *testing.T) {
	t.Run("both dates", func(t *testing.T) {
		a := Author{DateOfBirth: datePtr(1948, 4, 28), DateOfDeath: datePtr(2015, 3, 12)}
		assert.Equal(t, "Apr 28, 1948 – Mar 12, 2015", a.Lifespan())
	})

	t.Run("birth only leaves the death side open", func(t *testing.T) {
		a := Author{DateOfBirth: datePtr(1973, 6, 6)}
		assert.Equal(t, "Jun 6, 1973 – ", a.Lifespan())
	})

	t.Run("death only", func(t *testing.T) {
		a := Author{DateOfDeath: datePtr(1934, 7, 4)}
		assert.Equal(t, " – Jul 4, 1934", a.Lifespan())
	})

	t.Run("no dates yields empty string", func(t *testing.T) {
		assert.Equal(t, "", Author{}.Lifespan())
	})
}

func TestCanonicalURLs(t *testing.T) {
	id, err := primitive.ObjectIDFromHex("5f0aeeb2b3a1f53d9c2c0c5d")
	assert.NoError(t, err)

	assert.Equal(t, "/catalog/author/5f0aeeb2b3a1f53d9c2c0c5d", Author{ID: id}.URL())
	assert.Equal(t, "/catalog/genre/5f0aeeb2b3a1f53d9c2c0c5d", Genre{ID: id}.URL())
	assert.Equal(t, "/catalog/book/5f0aeeb2b3a1f53d9c2c0c5d", Book{ID: id}.URL())
	assert.Equal(t, "/catalog/bookinstance/5f0aeeb2b3a1f53d9c2c0c5d", BookInstance{ID: id}.URL())
}

func TestInstanceStatus_Valid(t *testing.T) {
	for _, s := range InstanceStatuses {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}
	assert.False(t, InstanceStatus("Lost").Valid())
	assert.False(t, InstanceStatus("").Valid())
}
