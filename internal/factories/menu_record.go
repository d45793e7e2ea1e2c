package factories

import (
	"math/rand"

	"github.com/jaswdr/faker"

	"kondate/internal/models"
)

var fake = faker.New()

type MenuRecordFactory struct{}

// dishNames holds a plausible pool per genre; names outside the pools fall
// back to faker so large catalogs stay varied.
var dishNames = map[models.Genre][]string{
	models.GenreJapanese: {"肉じゃが", "鮭の塩焼き", "親子丼", "天ぷらそば", "カツ丼", "味噌煮込みうどん"},
	models.GenreWestern:  {"カレー", "ハンバーグ", "オムライス", "ナポリタン", "グラタン", "ビーフシチュー"},
	models.GenreChinese:  {"ラーメン", "チャーハン", "麻婆豆腐", "餃子", "担々麺", "回鍋肉"},
	models.GenreOther:    {"タコライス", "ガパオライス", "フォー", "ビビンバ", "ケバブ丼"},
	models.GenreDessert:  {"プリン", "ショートケーキ", "杏仁豆腐", "クレープ", "あんみつ"},
}

func (mf *MenuRecordFactory) CreateMenuRecord() models.MenuRecord {
	genres := models.Genres()
	genre := genres[rand.Intn(len(genres))]
	return mf.CreateMenuRecordForGenre(genre)
}

func (mf *MenuRecordFactory) CreateMenuRecordForGenre(genre models.Genre) models.MenuRecord {
	names := dishNames[genre]
	var name string
	if len(names) > 0 && rand.Intn(4) > 0 {
		name = names[rand.Intn(len(names))]
	} else {
		name = fake.Lorem().Word() + " " + fake.Lorem().Word()
	}

	carb := models.CarbEither
	if genre != models.GenreDessert {
		carbs := models.Carbs()
		carb = carbs[rand.Intn(len(carbs))]
	}
	return models.NewMenuRecord(name, genre, carb)
}

// CreateCatalog generates count records spread over every genre.
func (mf *MenuRecordFactory) CreateCatalog(count int) []models.MenuRecord {
	records := make([]models.MenuRecord, count)
	for i := range records {
		records[i] = mf.CreateMenuRecord()
	}
	return records
}
