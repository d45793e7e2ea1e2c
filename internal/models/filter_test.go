package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarbFilterAcceptsRiceAndNoodle(t *testing.T) {
	for _, c := range []Carb{CarbRice, CarbNoodle} {
		f, err := NewCarbFilter(c)
		require.NoError(t, err)
		assert.Equal(t, c, f.Carb)
	}
}

func TestNewCarbFilterRejectsEither(t *testing.T) {
	// "Either" is a property of menu items, not a selectable intent.
	_, err := NewCarbFilter(CarbEither)
	assert.Error(t, err)
}

func TestFilterDescribe(t *testing.T) {
	assert.Equal(t, "genre=洋食", GenreFilter{Genre: GenreWestern}.Describe())
	assert.Equal(t, "dessert", DessertFilter{}.Describe())
	assert.Equal(t, "carb=米", CarbFilter{Carb: CarbRice}.Describe())
	assert.Equal(t, "random", RandomFilter{}.Describe())
}
