package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestParseIDValid(t *testing.T) {
	oid, err := ParseID("507f1f77bcf86cd799439011")

	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", oid.Hex())
}

func TestParseIDMalformed(t *testing.T) {
	cases := []string{"", "xyz", "507f1f77bcf86cd79943901", "507f1f77bcf86cd7994390111", "not-a-hex-id"}
	for _, id := range cases {
		oid, err := ParseID(id)

		assert.ErrorIs(t, err, ErrInvalidID, id)
		assert.Equal(t, primitive.NilObjectID, oid, id)
	}
}

func TestParseIDErrorIsNotNotFound(t *testing.T) {
	_, err := ParseID("xyz")

	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestMapFindErr(t *testing.T) {
	assert.ErrorIs(t, MapFindErr(mongo.ErrNoDocuments), ErrNotFound)

	other := errors.New("network error")
	assert.Equal(t, other, MapFindErr(other))
}

func TestFoldCollationIgnoresCaseAndDiacritics(t *testing.T) {
	c := FoldCollation()

	assert.Equal(t, "en", c.Locale)
	assert.Equal(t, 1, c.Strength)
}
