package calculator

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ilankog99/gamesuite/internal/console"
)

var (
	ErrDivideByZero     = errors.New("cannot divide by zero")
	ErrUnknownOperation = errors.New("unknown operation")
)

// Apply - applies a binary arithmetic operation.
func Apply(operation string, a, b float64) (float64, error) {
	switch operation {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, operation)
	}
}

type Calculator struct {
	logger *slog.Logger
	term   *console.Console
}

func New(logger *slog.Logger, term *console.Console) *Calculator {
	return &Calculator{
		logger: logger.With("component", "calculator"),
		term:   term,
	}
}

func (that *Calculator) Run() error {
	that.term.Clear()
	that.term.Printf("Simple Calculator\n\n")

	for {
		first, err := that.term.ReadFloat("Enter first number: ")
		if err != nil {
			return fmt.Errorf("failed to read number: %w", err)
		}

		operation, err := that.readOperation()
		if err != nil {
			return err
		}

		second, err := that.term.ReadFloat("Enter second number: ")
		if err != nil {
			return fmt.Errorf("failed to read number: %w", err)
		}

		result, err := Apply(operation, first, second)
		if errors.Is(err, ErrDivideByZero) {
			that.term.Printf("Error: %v\n", err)

			retry, err := that.term.ReadYesNo("Do you want to try again?")
			if err != nil {
				return fmt.Errorf("failed to read answer: %w", err)
			}

			if !retry {
				return nil
			}

			continue
		}
		if err != nil {
			return fmt.Errorf("failed to calculate: %w", err)
		}

		that.term.Printf("Result: %g\n", result)

		again, err := that.term.ReadYesNo("\nDo you want to perform another calculation?")
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}

		if !again {
			return nil
		}
	}
}

func (that *Calculator) readOperation() (string, error) {
	for {
		operation, err := that.term.ReadLine("Enter operation (+, -, *, /): ")
		if err != nil {
			return "", fmt.Errorf("failed to read operation: %w", err)
		}

		switch operation {
		case "+", "-", "*", "/":
			return operation, nil
		default:
			that.term.Printf("Please enter a valid operation: +, -, *, or /\n")
		}
	}
}
