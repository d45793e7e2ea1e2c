package models

import (
	"fmt"
	"hash/fnv"
)

// Genre classifies a menu record into one of five closed categories.
type Genre string

const (
	GenreJapanese Genre = "和食"
	GenreWestern  Genre = "洋食"
	GenreChinese  Genre = "中華"
	GenreOther    Genre = "その他"
	GenreDessert  Genre = "デザート"
)

// Carb is the staple-carbohydrate classification of a menu record.
type Carb string

const (
	CarbRice   Carb = "米"
	CarbNoodle Carb = "麺"
	CarbEither Carb = "どちらでもない"
)

var allGenres = []Genre{GenreJapanese, GenreWestern, GenreChinese, GenreOther, GenreDessert}

var allCarbs = []Carb{CarbRice, CarbNoodle, CarbEither}

// Genres returns the closed genre vocabulary in canonical order.
func Genres() []Genre {
	out := make([]Genre, len(allGenres))
	copy(out, allGenres)
	return out
}

// Carbs returns the closed carb vocabulary in canonical order.
func Carbs() []Carb {
	out := make([]Carb, len(allCarbs))
	copy(out, allCarbs)
	return out
}

// ParseGenre validates a surface token against the closed genre vocabulary.
func ParseGenre(s string) (Genre, error) {
	for _, g := range allGenres {
		if s == string(g) {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown mainGenre %q", s)
}

// ParseCarb validates a surface token against the closed carb vocabulary.
func ParseCarb(s string) (Carb, error) {
	for _, c := range allCarbs {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown carb %q", s)
}

// MenuRecord is a single catalog entry. The ID is content-derived: two
// records with the same (name, genre, carb) always share it.
type MenuRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	MainGenre Genre  `json:"main_genre"`
	Carb      Carb   `json:"carb"`
}

func NewMenuRecord(name string, genre Genre, carb Carb) MenuRecord {
	return MenuRecord{
		ID:        RecordID(name, genre, carb),
		Name:      name,
		MainGenre: genre,
		Carb:      carb,
	}
}

// RecordID hashes the three content fields with FNV-32a and renders the sum
// as eight hex digits. A NUL separator keeps field boundaries from aliasing.
func RecordID(name string, genre Genre, carb Carb) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	h.Write([]byte{0})
	h.Write([]byte(genre))
	h.Write([]byte{0})
	h.Write([]byte(carb))
	return fmt.Sprintf("%08x", h.Sum32())
}
