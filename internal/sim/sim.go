// Package sim drives full bot-vs-bot games through the public engine
// API. It exists for soak-testing the rules engine and strategy
// together and for eyeballing long-run point distributions.
package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/michal-laska/nazdar-baby/engine"
	"github.com/michal-laska/nazdar-baby/engine/bot"
)

// Config selects the table shape and run length.
type Config struct {
	Players int
	Games   int
	Seed    int64
	Shuffle bool // reshuffle the seating order before every Game
}

// SeatStats is the outcome of one simulated player across the run.
type SeatStats struct {
	Name    string
	Points  float64
	Pending int // times chosen as the disadvantaged last-bidder seat
}

// Result aggregates a finished run.
type Result struct {
	Games int
	Sets  int
	Seats []SeatStats
}

// Run plays cfg.Games consecutive Games on one table of bots and
// returns the aggregated outcome. Every move flows through the same
// submit path a human caller would use; any rejection aborts the run.
func Run(cfg Config, log *logrus.Logger) (*Result, error) {
	if cfg.Players < engine.MinPlayers || cfg.Players > engine.MaxPlayers {
		return nil, fmt.Errorf("sim: player count %d outside %d..%d", cfg.Players, engine.MinPlayers, engine.MaxPlayers)
	}
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	refs := make([]engine.PlayerRef, cfg.Players)
	for i := range refs {
		refs[i] = engine.PlayerRef{
			ID:    uuid.New(),
			Name:  fmt.Sprintf("bot-%d", i+1),
			IsBot: true,
		}
	}

	g := engine.New(uint64(cfg.Seed)+1, bot.New(cfg.Seed))

	pending := make(map[uuid.UUID]int, cfg.Players)
	points := make(map[uuid.UUID]float64, cfg.Players)
	res := &Result{}

	for game := 0; game < cfg.Games; game++ {
		if cfg.Shuffle {
			rng.Shuffle(len(refs), func(i, j int) {
				refs[i], refs[j] = refs[j], refs[i]
			})
		}
		g.StartGame(refs)

		for seat := 0; seat < g.PlayerCount(); seat++ {
			if g.FairnessOf(seat) == engine.FairnessPending {
				pending[g.PlayerAt(seat).ID]++
			}
		}

		sets := 0
		for {
			err := g.StartSet()
			if errors.Is(err, engine.ErrGameExhausted) {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("sim: game %d set %d: %w", game+1, sets, err)
			}
			// An all-bot Set plays out inside StartSet.
			if g.Phase() != engine.PhaseSetDone && g.Phase() != engine.PhaseGameOver {
				return nil, fmt.Errorf("sim: game %d set %d stalled in phase %s", game+1, sets, g.Phase())
			}
			sets++
			log.WithFields(logrus.Fields{
				"game":     game + 1,
				"set":      sets,
				"handSize": g.HandSize(),
			}).Debug("set scored")
		}

		for seat := 0; seat < g.PlayerCount(); seat++ {
			points[g.PlayerAt(seat).ID] = g.Points(seat)
		}
		res.Games++
		res.Sets += sets
		log.WithFields(logrus.Fields{
			"game": game + 1,
			"sets": sets,
		}).Info("game finished")
	}

	for _, ref := range refs {
		res.Seats = append(res.Seats, SeatStats{
			Name:    ref.Name,
			Points:  points[ref.ID],
			Pending: pending[ref.ID],
		})
	}
	return res, nil
}
