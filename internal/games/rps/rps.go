package rps

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/ilankog99/gamesuite/internal/console"
)

type Choice string

const (
	Rock     Choice = "rock"
	Paper    Choice = "paper"
	Scissors Choice = "scissors"
)

var ErrUnknownChoice = errors.New("unknown choice")

var choices = [3]Choice{Rock, Paper, Scissors}

// beats - maps each choice to the choice it defeats.
var beats = map[Choice]Choice{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

var aliases = map[string]Choice{
	"1": Rock, "rock": Rock, "r": Rock,
	"2": Paper, "paper": Paper, "p": Paper,
	"3": Scissors, "scissors": Scissors, "s": Scissors,
}

// ParseChoice - resolves a number, word, or letter alias to a choice.
func ParseChoice(input string) (Choice, error) {
	choice, ok := aliases[strings.ToLower(strings.TrimSpace(input))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownChoice, input)
	}

	return choice, nil
}

// Beats - reports whether choice a defeats choice b.
func Beats(a, b Choice) bool {
	return beats[a] == b
}

// Game - one rock-paper-scissors session. Scores live for the duration of
// a single Run call and are never persisted.
type Game struct {
	logger *slog.Logger
	term   *console.Console
	rng    *rand.Rand
}

func New(logger *slog.Logger, term *console.Console, rng *rand.Rand) *Game {
	return &Game{
		logger: logger.With("component", "rps"),
		term:   term,
		rng:    rng,
	}
}

func (that *Game) Run() error {
	that.term.Clear()
	that.term.Printf("Rock, Paper, Scissors!\n")
	that.term.Printf("The game where Rock beats Scissors, Scissors beats Paper, and Paper beats Rock!\n")
	that.term.Printf("Pro tip: you can use the numbers to choose.\n\n")

	twoPlayer, err := that.term.ReadYesNo("Two player mode?")
	if err != nil {
		return fmt.Errorf("failed to read game mode: %w", err)
	}

	names, err := that.readNames(twoPlayer)
	if err != nil {
		return err
	}

	scores := [2]int{}
	rounds := 0

	for {
		if err = that.playRound(twoPlayer, names, &scores); err != nil {
			return err
		}
		rounds++

		again, err := that.term.ReadYesNo("\nDo you want to play another round?")
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}

		if !again {
			that.logger.Info("session finished", "rounds", rounds, "scores", scores)
			return nil
		}

		that.term.Clear()
	}
}

func (that *Game) readNames(twoPlayer bool) ([2]string, error) {
	names := [2]string{"Player 1", "The Bot"}

	name, err := that.term.ReadLine("Player 1, enter your name: ")
	if err != nil {
		return names, fmt.Errorf("failed to read name: %w", err)
	}

	if name != "" {
		names[0] = name
	}

	if !twoPlayer {
		that.term.Printf("Hello %s. You'll be playing against %s.\n\n", names[0], names[1])
		return names, nil
	}

	names[1] = "Player 2"

	name, err = that.term.ReadLine("Player 2, enter your name: ")
	if err != nil {
		return names, fmt.Errorf("failed to read name: %w", err)
	}

	if name != "" {
		names[1] = name
	}

	that.term.Printf("Hello %s and %s!\n\n", names[0], names[1])

	return names, nil
}

func (that *Game) playRound(twoPlayer bool, names [2]string, scores *[2]int) error {
	first, err := that.readChoice(names[0])
	if err != nil {
		return err
	}

	var second Choice
	if twoPlayer {
		if second, err = that.readChoice(names[1]); err != nil {
			return err
		}
	} else {
		second = choices[that.rng.Intn(len(choices))]
	}

	that.term.Printf("\n%s chose %s\n", names[0], first)
	that.term.Printf("%s chose %s\n", names[1], second)

	switch {
	case first == second:
		that.term.Printf("It's a tie!\n")
	case Beats(first, second):
		that.term.Printf("%s wins!\n", names[0])
		scores[0]++
	default:
		that.term.Printf("%s wins!\n", names[1])
		scores[1]++
	}

	that.term.Printf("\n%s's score: %d\n", names[0], scores[0])
	that.term.Printf("%s's score: %d\n", names[1], scores[1])

	return nil
}

func (that *Game) readChoice(name string) (Choice, error) {
	prompt := fmt.Sprintf("%s, please choose:\n1. Rock\n2. Paper\n3. Scissors\n", name)

	for {
		line, err := that.term.ReadLine(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read choice: %w", err)
		}

		choice, err := ParseChoice(line)
		if err != nil {
			that.term.Printf("Invalid choice. Please try again.\n")
			continue
		}

		return choice, nil
	}
}
