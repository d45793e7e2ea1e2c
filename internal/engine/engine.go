package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"kondate/internal/models"
)

// ErrInvalidFilter marks a filter value outside the recognized union. That
// is a caller bug, not a user-facing condition, so it surfaces as an error
// rather than a silent empty result.
var ErrInvalidFilter = errors.New("invalid filter")

// Engine draws picks from an immutable catalog. The random source is
// injected so tests can pin it; production callers pass a time-seeded Rng.
type Engine struct {
	records []models.MenuRecord
	rng     *rand.Rand
}

func New(records []models.MenuRecord, rng *rand.Rand) *Engine {
	return &Engine{records: records, rng: rng}
}

// Decision is the outcome of one draw. CandidateCount is reported even when
// Pick is nil, so callers can tell "matched nothing" from "matched
// something".
type Decision struct {
	Pick           *models.MenuRecord
	CandidateCount int
}

// SelectCandidates computes the subset of the catalog matching the filter,
// preserving catalog order. Dessert records are only reachable through
// DessertFilter or GenreFilter{GenreDessert}.
func (e *Engine) SelectCandidates(f models.Filter) ([]models.MenuRecord, error) {
	var out []models.MenuRecord
	switch f := f.(type) {
	case models.RandomFilter:
		for _, r := range e.records {
			if r.MainGenre != models.GenreDessert {
				out = append(out, r)
			}
		}
	case models.CarbFilter:
		if f.Carb != models.CarbRice && f.Carb != models.CarbNoodle {
			return nil, fmt.Errorf("%w: carb filter carries %q", ErrInvalidFilter, f.Carb)
		}
		for _, r := range e.records {
			if r.MainGenre == models.GenreDessert {
				continue
			}
			if r.Carb == f.Carb || r.Carb == models.CarbEither {
				out = append(out, r)
			}
		}
	case models.GenreFilter:
		for _, r := range e.records {
			if r.MainGenre == f.Genre {
				out = append(out, r)
			}
		}
	case models.DessertFilter:
		for _, r := range e.records {
			if r.MainGenre == models.GenreDessert {
				out = append(out, r)
			}
		}
	case nil:
		return nil, ErrInvalidFilter
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidFilter, f)
	}
	return out, nil
}

// PickOne draws uniformly from candidates; nil when there is nothing to
// pick.
func (e *Engine) PickOne(candidates []models.MenuRecord) *models.MenuRecord {
	if len(candidates) == 0 {
		return nil
	}
	r := candidates[e.rng.Intn(len(candidates))]
	return &r
}

// Decide composes SelectCandidates and PickOne.
func (e *Engine) Decide(f models.Filter) (Decision, error) {
	candidates, err := e.SelectCandidates(f)
	if err != nil {
		return Decision{}, err
	}
	return Decision{Pick: e.PickOne(candidates), CandidateCount: len(candidates)}, nil
}

// Reroll draws again over the same candidate set. prevID is accepted for
// interface symmetry and deliberately ignored: repeats are allowed.
func (e *Engine) Reroll(f models.Filter, prevID string) (Decision, error) {
	_ = prevID
	return e.Decide(f)
}
