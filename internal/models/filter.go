package models

import "fmt"

// Filter describes one user intent for narrowing the catalog before a draw.
// The union is closed: only the four types below implement it.
type Filter interface {
	// Describe renders the filter for logs and decision events.
	Describe() string

	isFilter()
}

// GenreFilter matches records of a single genre. This is the only filter
// through which dessert records are reachable besides DessertFilter.
type GenreFilter struct {
	Genre Genre
}

// DessertFilter matches dessert records only.
type DessertFilter struct{}

// CarbFilter matches non-dessert records by staple carbohydrate. A record
// classified as CarbEither matches either target.
type CarbFilter struct {
	Carb Carb
}

// RandomFilter matches every non-dessert record.
type RandomFilter struct{}

func (GenreFilter) isFilter()   {}
func (DessertFilter) isFilter() {}
func (CarbFilter) isFilter()    {}
func (RandomFilter) isFilter()  {}

func (f GenreFilter) Describe() string { return "genre=" + string(f.Genre) }

func (DessertFilter) Describe() string { return "dessert" }

func (f CarbFilter) Describe() string { return "carb=" + string(f.Carb) }

func (RandomFilter) Describe() string { return "random" }

// NewCarbFilter rejects CarbEither: "either" is a property of menu items,
// not a selectable intent.
func NewCarbFilter(c Carb) (CarbFilter, error) {
	if c != CarbRice && c != CarbNoodle {
		return CarbFilter{}, fmt.Errorf("carb filter must be %s or %s, got %q", CarbRice, CarbNoodle, c)
	}
	return CarbFilter{Carb: c}, nil
}
