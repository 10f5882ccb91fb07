package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ilankog99/gamesuite/internal/console"
)

// Option - a menu choice. Options map to handlers through a static table
// built at startup, never through name lookup.
type Option int

const (
	OptionTicTacToe Option = iota + 1
	OptionRockPaperScissors
	OptionNumberGuessing
	OptionCoinFlip
	OptionTemperature
	OptionCalculator
	OptionDiceRoller
	OptionQuit
)

// Entry - one launchable game: its display name and its run function.
// Each run call is a fresh session; games keep no state between calls.
type Entry struct {
	Name string
	Run  func() error
}

type Menu struct {
	logger  *slog.Logger
	term    *console.Console
	entries map[Option]Entry
}

func New(logger *slog.Logger, term *console.Console, entries map[Option]Entry) *Menu {
	return &Menu{
		logger:  logger.With("component", "menu"),
		term:    term,
		entries: entries,
	}
}

// Run - displays the menu and dispatches choices until the user quits or
// the context is canceled. A closed input stream counts as quitting.
func (that *Menu) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			that.logger.Info("menu loop canceled")
			return nil
		}

		that.term.Clear()
		that.term.Printf("Welcome to the All-In-One Game Suite!\n")
		that.term.Printf("Please choose an option:\n")

		for option := OptionTicTacToe; option < OptionQuit; option++ {
			entry, ok := that.entries[option]
			if !ok {
				continue
			}
			that.term.Printf("%d. %s\n", option, entry.Name)
		}
		that.term.Printf("%d. Quit\n", OptionQuit)

		choice, err := that.term.ReadInt("\nEnter your choice: ", 1, int(OptionQuit))
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read choice: %w", err)
		}

		if Option(choice) == OptionQuit {
			that.term.Clear()
			that.term.Printf("Thank you for playing. Goodbye!\n")
			return nil
		}

		entry, ok := that.entries[Option(choice)]
		if !ok {
			that.term.Printf("Invalid option. Please try again.\n")
			if err = that.term.Pause(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			continue
		}

		sessionID := uuid.NewString()
		log := that.logger.With("session_id", sessionID, "game", entry.Name)
		log.Info("launching game")

		if err = entry.Run(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("game %s failed: %w", entry.Name, err)
		}

		log.Info("game ended")
	}
}
