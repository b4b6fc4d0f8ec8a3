package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_TrimRequiredEscape(t *testing.T) {
	form := New()
	value := form.Field("title", "  The <b>Hobbit</b>  ").
		Trim().Required("Title must not be empty.").Escape().Value()

	assert.True(t, form.Valid())
	assert.Equal(t, "The &lt;b&gt;Hobbit&lt;/b&gt;", value)
}

func TestField_MissingRequiredField(t *testing.T) {
	form := New()
	form.Field("title", "   ").Trim().Required("Title must not be empty.").Escape()

	assert.False(t, form.Valid())
	require.Len(t, form.Errors(), 1)
	assert.Equal(t, "title", form.Errors()[0].Field)
	assert.Equal(t, "Title must not be empty.", form.Errors()[0].Message)
}

func TestField_NameCollectsLengthAndCharacterClassErrors(t *testing.T) {
	// An empty name violates both rules; both must be reported.
	form := New()
	form.Field("first_name", "").
		Trim().
		Required("First name must be specified.").
		Alphanumeric("First name has non-alphanumeric characters.").
		Escape()

	require.Len(t, form.Errors(), 2)
	assert.Equal(t, "First name must be specified.", form.Errors()[0].Message)
	assert.Equal(t, "First name has non-alphanumeric characters.", form.Errors()[1].Message)
}

func TestField_AlphanumericRejectsPunctuation(t *testing.T) {
	form := New()
	form.Field("family_name", "O'Brien").
		Trim().
		Required("required").
		Alphanumeric("non-alphanumeric").
		Escape()

	require.Len(t, form.Errors(), 1)
	assert.Equal(t, "non-alphanumeric", form.Errors()[0].Message)
}

func TestField_MinLength(t *testing.T) {
	form := New()
	form.Field("name", " Fa ").Trim().MinLength(3, "too short").Escape()

	assert.False(t, form.Valid())

	form = New()
	value := form.Field("name", " Fantasy ").Trim().MinLength(3, "too short").Escape().Value()
	assert.True(t, form.Valid())
	assert.Equal(t, "Fantasy", value)
}

func TestForm_OptionalDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		form := New()
		got := form.OptionalDate("date_of_birth", "1973-06-06", "invalid")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(1973, 6, 6, 0, 0, 0, 0, time.UTC), *got)
		assert.True(t, form.Valid())
	})

	t.Run("empty accepted as unset", func(t *testing.T) {
		form := New()
		assert.Nil(t, form.OptionalDate("date_of_birth", "", "invalid"))
		assert.Nil(t, form.OptionalDate("date_of_death", "   ", "invalid"))
		assert.True(t, form.Valid())
	})

	t.Run("ambiguous format rejected", func(t *testing.T) {
		form := New()
		assert.Nil(t, form.OptionalDate("due_back", "06/07/2024", "Invalid date."))
		require.Len(t, form.Errors(), 1)
		assert.Equal(t, "due_back", form.Errors()[0].Field)
	})
}

func TestEscapeAll(t *testing.T) {
	assert.Equal(t, []string{}, EscapeAll(nil))
	assert.Equal(t, []string{"a&amp;b"}, EscapeAll([]string{"a&b"}))
	assert.Equal(t, []string{"x", "y"}, EscapeAll([]string{"x", "y"}))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "fantasy", Fold("FANTASY"))
	assert.Equal(t, "fantasy", Fold("Fäntasy"))
	assert.Equal(t, Fold("Science Fiction"), Fold("SCIENCE FICTIÓN"))
	assert.Equal(t, "", Fold(""))
}
