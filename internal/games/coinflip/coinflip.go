package coinflip

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/ilankog99/gamesuite/internal/console"
)

type Side string

const (
	Heads Side = "Heads"
	Tails Side = "Tails"
)

// Flip - flips a fair coin.
func Flip(rng *rand.Rand) Side {
	if rng.Intn(2) == 0 {
		return Heads
	}

	return Tails
}

type Game struct {
	logger *slog.Logger
	term   *console.Console
	rng    *rand.Rand
	delay  time.Duration
}

func New(logger *slog.Logger, term *console.Console, rng *rand.Rand, delay time.Duration) *Game {
	return &Game{
		logger: logger.With("component", "coinflip"),
		term:   term,
		rng:    rng,
		delay:  delay,
	}
}

func (that *Game) Run() error {
	that.term.Clear()
	that.term.Printf("Coin Flip\n")

	for {
		if _, err := that.term.ReadLine("\nPress Enter to flip a coin..."); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		that.term.Printf("Flipping coin...\n")
		time.Sleep(that.delay)

		result := Flip(that.rng)
		that.term.Printf("The coin landed on: %s!\n", result)
		that.logger.Info("coin flipped", "result", string(result))

		again, err := that.term.ReadYesNo("\nDo you want to flip again?")
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}

		if !again {
			return nil
		}

		that.term.Clear()
	}
}
