package application

import (
	"context"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ilankog99/gamesuite/internal/config"
	"github.com/ilankog99/gamesuite/internal/console"
	"github.com/ilankog99/gamesuite/internal/games/calculator"
	"github.com/ilankog99/gamesuite/internal/games/coinflip"
	"github.com/ilankog99/gamesuite/internal/games/dice"
	"github.com/ilankog99/gamesuite/internal/games/guess"
	"github.com/ilankog99/gamesuite/internal/games/rps"
	"github.com/ilankog99/gamesuite/internal/games/tempconv"
	"github.com/ilankog99/gamesuite/internal/menu"
	"github.com/ilankog99/gamesuite/internal/tictactoe"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("received signal, shutting down", "signal", sig.String())
		cancel()
	}()

	term := console.New(os.Stdin, os.Stdout)
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // games only need casual randomness

	entries := map[menu.Option]menu.Entry{
		menu.OptionTicTacToe: {
			Name: "Tic-Tac-Toe",
			Run:  tictactoe.NewSession(logger, term).Run,
		},
		menu.OptionRockPaperScissors: {
			Name: "Rock-Paper-Scissors",
			Run:  rps.New(logger, term, rng).Run,
		},
		menu.OptionNumberGuessing: {
			Name: "Number Guessing Game",
			Run:  guess.New(logger, term, rng).Run,
		},
		menu.OptionCoinFlip: {
			Name: "Coin Flip",
			Run:  coinflip.New(logger, term, rng, conf.Games.CoinFlipDelay).Run,
		},
		menu.OptionTemperature: {
			Name: "Temperature Converter",
			Run:  tempconv.New(logger, term).Run,
		},
		menu.OptionCalculator: {
			Name: "Simple Calculator",
			Run:  calculator.New(logger, term).Run,
		},
		menu.OptionDiceRoller: {
			Name: "Dice Roller",
			Run:  dice.New(logger, term, rng, conf.Games.MinDiceSides).Run,
		},
	}

	mainMenu := menu.New(logger, term, entries)

	return mainMenu.Run(ctx)
}
