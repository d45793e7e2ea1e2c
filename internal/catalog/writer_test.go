package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kondate/internal/models"
)

func TestRenderParseRoundTrip(t *testing.T) {
	records := []models.MenuRecord{
		models.NewMenuRecord("カレー", models.GenreWestern, models.CarbRice),
		models.NewMenuRecord("チキン南蛮,タルタル添え", models.GenreJapanese, models.CarbRice),
		models.NewMenuRecord(`丼 "特盛"`, models.GenreJapanese, models.CarbRice),
		models.NewMenuRecord("プリン", models.GenreDessert, models.CarbEither),
	}

	parsed, err := Parse(Render(records))
	require.NoError(t, err)
	assert.Equal(t, records, parsed)
}

func TestRenderQuotesOnlyWhenNeeded(t *testing.T) {
	assert.Equal(t, "カレー", quoteField("カレー"))
	assert.Equal(t, `"a,b"`, quoteField("a,b"))
	assert.Equal(t, `"a""b"`, quoteField(`a"b`))
	assert.Equal(t, `" spaced "`, quoteField(" spaced "))
}
