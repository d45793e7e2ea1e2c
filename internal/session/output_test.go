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

func sampleEvent(t *testing.T) []byte {
	t.Helper()
	pick := models.NewMenuRecord("カレー", models.GenreWestern, models.CarbRice)
	msg, err := json.Marshal(models.NewDecisionEvent(models.RandomFilter{}, &pick, 4))
	require.NoError(t, err)
	return msg
}

func TestJSONOutputWritesOneLinePerEvent(t *testing.T) {
	dir := t.TempDir()
	out := NewJSONOutput(dir, "events")

	require.NoError(t, out.WriteMessage(models.TopicDecisionEvents, sampleEvent(t)))
	require.NoError(t, out.WriteMessage(models.TopicDecisionEvents, sampleEvent(t)))
	require.NoError(t, out.Close())

	data, err := os.ReadFile(filepath.Join(dir, "events", models.TopicDecisionEvents, "data.json"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var event models.DecisionEvent
		require.NoError(t, json.Unmarshal([]byte(line), &event))
		assert.Equal(t, "カレー", event.PickName)
		assert.Equal(t, int32(4), event.CandidateCount)
		assert.NotEmpty(t, event.EventID)
	}
}

func TestCSVOutputWritesHeaderThenRows(t *testing.T) {
	dir := t.TempDir()
	out := NewCSVOutput(dir, "events")

	require.NoError(t, out.WriteMessage(models.TopicDecisionEvents, sampleEvent(t)))
	require.NoError(t, out.WriteMessage(models.TopicDecisionEvents, sampleEvent(t)))
	require.NoError(t, out.Close())

	data, err := os.ReadFile(filepath.Join(dir, "events", models.TopicDecisionEvents, "data.csv"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	// Headers come from the event keys, sorted.
	assert.Equal(t, "candidateCount,eventId,filter,pickId,pickName,timestamp", lines[0])
	assert.Contains(t, lines[1], "カレー")
}

func TestDetermineOutputDestination(t *testing.T) {
	newSession := func(format, path string) *Session {
		return New(&models.Config{OutputFormat: format, OutputPath: path}, nil)
	}

	dest, err := newSession("console", "").determineOutputDestination()
	require.NoError(t, err)
	assert.IsType(t, &ConsoleOutput{}, dest)

	dir := t.TempDir()
	dest, err = newSession("csv", dir).determineOutputDestination()
	require.NoError(t, err)
	assert.IsType(t, &CSVOutput{}, dest)

	dest, err = newSession("json", dir).determineOutputDestination()
	require.NoError(t, err)
	assert.IsType(t, &JSONOutput{}, dest)

	dest, err = newSession("parquet", dir).determineOutputDestination()
	require.NoError(t, err)
	assert.IsType(t, &ParquetOutput{}, dest)

	_, err = newSession("xml", dir).determineOutputDestination()
	assert.Error(t, err)
}
