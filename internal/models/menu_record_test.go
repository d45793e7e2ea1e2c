package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordIDIsDeterministic(t *testing.T) {
	a := RecordID("カレー", GenreWestern, CarbRice)
	b := RecordID("カレー", GenreWestern, CarbRice)
	assert.Equal(t, a, b)

	r1 := NewMenuRecord("カレー", GenreWestern, CarbRice)
	r2 := NewMenuRecord("カレー", GenreWestern, CarbRice)
	assert.Equal(t, r1.ID, r2.ID)
}

func TestRecordIDChangesWithAnyField(t *testing.T) {
	base := RecordID("カレー", GenreWestern, CarbRice)

	assert.NotEqual(t, base, RecordID("ハヤシライス", GenreWestern, CarbRice))
	assert.NotEqual(t, base, RecordID("カレー", GenreJapanese, CarbRice))
	assert.NotEqual(t, base, RecordID("カレー", GenreWestern, CarbNoodle))
}

func TestRecordIDIsFixedWidthHex(t *testing.T) {
	id := RecordID("カレー", GenreWestern, CarbRice)
	require.Len(t, id, 8)
	assert.Regexp(t, "^[0-9a-f]{8}$", id)
}

func TestParseGenre(t *testing.T) {
	tests := []struct {
		in      string
		want    Genre
		wantErr bool
	}{
		{"和食", GenreJapanese, false},
		{"洋食", GenreWestern, false},
		{"中華", GenreChinese, false},
		{"その他", GenreOther, false},
		{"デザート", GenreDessert, false},
		{"フレンチ", "", true},
		{"", "", true},
		{"japanese", "", true},
	}
	for _, tt := range tests {
		got, err := ParseGenre(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseCarb(t *testing.T) {
	tests := []struct {
		in      string
		want    Carb
		wantErr bool
	}{
		{"米", CarbRice, false},
		{"麺", CarbNoodle, false},
		{"どちらでもない", CarbEither, false},
		{"パン", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCarb(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}
