package session

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/schollz/progressbar/v3"

	"kondate/internal/engine"
	"kondate/internal/models"
)

// Session owns the loaded catalog, the engine and the random source for one
// run of the tool. The catalog is read-only once the session is built.
type Session struct {
	Config  *models.Config
	Records []models.MenuRecord
	Engine  *engine.Engine
	Rng     *rand.Rand
}

func New(cfg *models.Config, records []models.MenuRecord) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return &Session{
		Config:  cfg,
		Records: records,
		Engine:  engine.New(records, rng),
		Rng:     rng,
	}
}

// Pick runs one decision plus rerolls over the same candidate set, printing
// each draw.
func (s *Session) Pick(f models.Filter, rerolls int) error {
	d, err := s.Engine.Decide(f)
	if err != nil {
		return err
	}
	if d.Pick == nil {
		fmt.Printf("no menu matches %s (0 candidates)\n", f.Describe())
		return nil
	}
	printDecision("tonight", d)

	prevID := d.Pick.ID
	for i := 0; i < rerolls; i++ {
		d, err = s.Engine.Reroll(f, prevID)
		if err != nil {
			return err
		}
		printDecision("reroll ", d)
		prevID = d.Pick.ID
	}
	return nil
}

func printDecision(label string, d engine.Decision) {
	fmt.Printf("%s: %s  [%s / %s]  (%d candidates)\n",
		label, d.Pick.Name, d.Pick.MainGenre, d.Pick.Carb, d.CandidateCount)
}

// Simulate runs draws independent decisions with the same filter, emits one
// decision event per draw to the configured destination, and prints the
// observed pick distribution.
func (s *Session) Simulate(f models.Filter, draws int) error {
	dest, err := s.determineOutputDestination()
	if err != nil {
		return err
	}
	defer dest.Close()

	counts := make(map[string]int)
	bar := progressbar.Default(int64(draws), "drawing")
	for i := 0; i < draws; i++ {
		d, err := s.Engine.Decide(f)
		if err != nil {
			return err
		}
		if d.Pick != nil {
			counts[d.Pick.Name]++
		}

		event := models.NewDecisionEvent(f, d.Pick, d.CandidateCount)
		msg, err := json.Marshal(event)
		if err != nil {
			return err
		}
		if err := dest.WriteMessage(models.TopicDecisionEvents, msg); err != nil {
			return err
		}

		bar.Add(1)
		if s.Config.SimDelay > 0 {
			time.Sleep(s.Config.SimDelay)
		}
	}
	bar.Finish()

	s.printTally(f, draws, counts)
	return nil
}

func (s *Session) printTally(f models.Filter, draws int, counts map[string]int) {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	fmt.Printf("\n%d draws with filter %s:\n", draws, f.Describe())
	if len(names) == 0 {
		fmt.Println("  no candidates matched")
		return
	}
	for _, name := range names {
		fmt.Printf("  %6d  (%5.1f%%)  %s\n",
			counts[name], float64(counts[name])*100/float64(draws), name)
	}
}
