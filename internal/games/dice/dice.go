package dice

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/ilankog99/gamesuite/internal/console"
)

// Roll - rolls a die with the given number of sides, returning 1..sides.
func Roll(rng *rand.Rand, sides int) int {
	return rng.Intn(sides) + 1
}

type Roller struct {
	logger   *slog.Logger
	term     *console.Console
	rng      *rand.Rand
	minSides int
}

func New(logger *slog.Logger, term *console.Console, rng *rand.Rand, minSides int) *Roller {
	return &Roller{
		logger:   logger.With("component", "dice"),
		term:     term,
		rng:      rng,
		minSides: minSides,
	}
}

func (that *Roller) Run() error {
	that.term.Clear()
	that.term.Printf("Dice Roller\n\n")

	for {
		sides, err := that.term.ReadInt("Enter number of sides on the dice: ", that.minSides, math.MaxInt)
		if err != nil {
			return fmt.Errorf("failed to read sides: %w", err)
		}

		roll := Roll(that.rng, sides)
		that.term.Printf("You rolled a %d!\n", roll)
		that.logger.Info("die rolled", "sides", sides, "result", roll)

		again, err := that.term.ReadYesNo("\nDo you want to roll again?")
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}

		if !again {
			return nil
		}
	}
}
