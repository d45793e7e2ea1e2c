package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kondate/internal/models"
)

func testConfig() *models.Config {
	return &models.Config{Seed: 42, OutputFormat: "console"}
}

func testCatalog() []models.MenuRecord {
	return []models.MenuRecord{
		models.NewMenuRecord("カレー", models.GenreWestern, models.CarbRice),
		models.NewMenuRecord("ラーメン", models.GenreChinese, models.CarbNoodle),
		models.NewMenuRecord("プリン", models.GenreDessert, models.CarbEither),
	}
}

func TestNewSeedsFromConfig(t *testing.T) {
	a := New(testConfig(), testCatalog())
	b := New(testConfig(), testCatalog())

	// Same seed, same draw sequence.
	assert.Equal(t, a.Rng.Int63(), b.Rng.Int63())
}

func TestPickWithEmptyCandidateSetIsNotAnError(t *testing.T) {
	sess := New(testConfig(), []models.MenuRecord{
		models.NewMenuRecord("カレー", models.GenreWestern, models.CarbRice),
	})
	assert.NoError(t, sess.Pick(models.DessertFilter{}, 3))
}

func TestPickWithRerolls(t *testing.T) {
	sess := New(testConfig(), testCatalog())
	assert.NoError(t, sess.Pick(models.RandomFilter{}, 5))
}

func TestSimulateEmitsOneEventPerDraw(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig()
	cfg.OutputFormat = "json"
	cfg.OutputPath = dir
	cfg.OutputFolder = "events"

	sess := New(cfg, testCatalog())
	require.NoError(t, sess.Simulate(models.RandomFilter{}, 25))

	data, err := os.ReadFile(filepath.Join(dir, "events", models.TopicDecisionEvents, "data.json"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 25)

	seen := map[string]bool{}
	for _, line := range lines {
		var event models.DecisionEvent
		require.NoError(t, json.Unmarshal([]byte(line), &event))
		assert.Equal(t, "random", event.Filter)
		assert.Equal(t, int32(2), event.CandidateCount, "desserts never enter a random draw")
		assert.False(t, seen[event.EventID], "event ids must be unique")
		seen[event.EventID] = true
	}
}

func TestSimulatePropagatesInvalidFilter(t *testing.T) {
	sess := New(testConfig(), testCatalog())
	assert.Error(t, sess.Simulate(nil, 5))
}
