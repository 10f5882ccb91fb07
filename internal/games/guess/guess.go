package guess

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/ilankog99/gamesuite/internal/console"
)

// Setup bounds keep the round playable: the range width stays well inside
// int so picking the target cannot overflow, and the attempt count stays
// small enough to show in a summary.
const (
	maxAttempts   = 1000
	minRangeValue = -1000000
	maxRangeValue = 1000000
)

type Feedback string

const (
	FeedbackCorrect Feedback = "correct"
	FeedbackTooLow  Feedback = "too low"
	FeedbackTooHigh Feedback = "too high"
)

// Check - compares a guess against the target.
func Check(guess, target int) Feedback {
	switch {
	case guess == target:
		return FeedbackCorrect
	case guess < target:
		return FeedbackTooLow
	default:
		return FeedbackTooHigh
	}
}

// SplitParity - partitions guesses into even and odd, preserving order.
func SplitParity(guesses []int) (even, odd []int) {
	for _, guess := range guesses {
		if guess%2 == 0 {
			even = append(even, guess)
		} else {
			odd = append(odd, guess)
		}
	}

	return even, odd
}

// Game - the number guessing game. The target and guesses live only for
// the duration of one round.
type Game struct {
	logger *slog.Logger
	term   *console.Console
	rng    *rand.Rand
}

func New(logger *slog.Logger, term *console.Console, rng *rand.Rand) *Game {
	return &Game{
		logger: logger.With("component", "guess"),
		term:   term,
		rng:    rng,
	}
}

func (that *Game) Run() error {
	that.term.Clear()
	that.term.Printf("Number Guessing Game\n\n")

	for {
		if err := that.playRound(); err != nil {
			return err
		}

		again, err := that.term.ReadYesNo("\nDo you want to play again?")
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}

		if !again {
			return nil
		}

		that.term.Clear()
	}
}

func (that *Game) playRound() error {
	attempts, err := that.term.ReadInt("Enter the number of attempts you would like to have: ", 1, maxAttempts)
	if err != nil {
		return fmt.Errorf("failed to read attempts: %w", err)
	}

	high, err := that.term.ReadInt("Enter the highest number for the range: ", minRangeValue, maxRangeValue)
	if err != nil {
		return fmt.Errorf("failed to read range: %w", err)
	}

	low, err := that.term.ReadInt("Enter the lowest number for the range: ", minRangeValue, high)
	if err != nil {
		return fmt.Errorf("failed to read range: %w", err)
	}

	target := low + that.rng.Intn(high-low+1)

	that.term.Printf("\nI'm thinking of a number between %d and %d.\n", low, high)
	that.term.Printf("You have %d attempts to guess it.\n", attempts)

	guesses := make([]int, 0, attempts)
	win := false
	used := 0

	for attempt := 1; attempt <= attempts; attempt++ {
		guess, err := that.term.ReadInt(fmt.Sprintf("\nAttempt %d: ", attempt), low, high)
		if err != nil {
			return fmt.Errorf("failed to read guess: %w", err)
		}

		guesses = append(guesses, guess)
		used = attempt

		switch Check(guess, target) {
		case FeedbackCorrect:
			that.term.Printf("Correct! You guessed the number in %d attempts.\n", attempt)
			win = true
		case FeedbackTooLow:
			that.term.Printf("Too low!\n")
		case FeedbackTooHigh:
			that.term.Printf("Too high!\n")
		}

		if win {
			break
		}

		if attempt == attempts {
			that.term.Printf("\nYou've run out of attempts!\n")
			that.term.Printf("The number was %d.\n", target)
		}
	}

	that.printSummary(target, guesses, used, win)
	that.logger.Info("round finished", "win", win, "attempts", used, "target", target)

	return nil
}

func (that *Game) printSummary(target int, guesses []int, used int, win bool) {
	even, odd := SplitParity(guesses)

	outcome := "You did not guess correctly!"
	if win {
		outcome = "You guessed correctly!"
	}

	that.term.Printf("\nGame Summary\n")
	that.term.Printf("- Result: %s\n", outcome)
	that.term.Printf("- Target number: %d\n", target)
	that.term.Printf("- Number of attempts used: %d\n", used)
	that.term.Printf("- Your guesses: %v\n", guesses)
	that.term.Printf("- Even guesses: %v\n", even)
	that.term.Printf("- Odd guesses: %v\n", odd)
}
