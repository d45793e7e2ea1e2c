package factories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kondate/internal/models"
)

func TestCreateMenuRecordIsValid(t *testing.T) {
	mf := &MenuRecordFactory{}
	for i := 0; i < 100; i++ {
		r := mf.CreateMenuRecord()
		assert.NotEmpty(t, r.Name)

		_, err := models.ParseGenre(string(r.MainGenre))
		assert.NoError(t, err)
		_, err = models.ParseCarb(string(r.Carb))
		assert.NoError(t, err)

		assert.Equal(t, models.RecordID(r.Name, r.MainGenre, r.Carb), r.ID)
	}
}

func TestCreateMenuRecordForGenre(t *testing.T) {
	mf := &MenuRecordFactory{}
	for _, genre := range models.Genres() {
		r := mf.CreateMenuRecordForGenre(genre)
		assert.Equal(t, genre, r.MainGenre)
	}
}

func TestCreateCatalogCount(t *testing.T) {
	mf := &MenuRecordFactory{}
	records := mf.CreateCatalog(25)
	require.Len(t, records, 25)
}
