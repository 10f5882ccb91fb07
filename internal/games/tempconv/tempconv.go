package tempconv

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ilankog99/gamesuite/internal/console"
)

// CelsiusToFahrenheit - converts degrees Celsius to degrees Fahrenheit.
func CelsiusToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

// FahrenheitToCelsius - converts degrees Fahrenheit to degrees Celsius.
func FahrenheitToCelsius(fahrenheit float64) float64 {
	return (fahrenheit - 32) * 5 / 9
}

type Converter struct {
	logger *slog.Logger
	term   *console.Console
}

func New(logger *slog.Logger, term *console.Console) *Converter {
	return &Converter{
		logger: logger.With("component", "tempconv"),
		term:   term,
	}
}

func (that *Converter) Run() error {
	that.term.Clear()
	that.term.Printf("Temperature Converter\n\n")

	for {
		temperature, err := that.term.ReadFloat("Enter temperature: ")
		if err != nil {
			return fmt.Errorf("failed to read temperature: %w", err)
		}

		unit, err := that.readUnit()
		if err != nil {
			return err
		}

		if unit == "C" {
			converted := FahrenheitToCelsius(temperature)
			that.term.Printf("%.2f°F is %.2f°C\n", temperature, converted)
		} else {
			converted := CelsiusToFahrenheit(temperature)
			that.term.Printf("%.2f°C is %.2f°F\n", temperature, converted)
		}

		again, err := that.term.ReadYesNo("\nDo you want to convert another temperature?")
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}

		if !again {
			return nil
		}
	}
}

// readUnit - reads the target unit, C or F.
func (that *Converter) readUnit() (string, error) {
	for {
		unit, err := that.term.ReadLine("Convert to (C/F): ")
		if err != nil {
			return "", fmt.Errorf("failed to read unit: %w", err)
		}

		unit = strings.ToUpper(unit)
		if unit == "C" || unit == "F" {
			return unit, nil
		}

		that.term.Printf("Please enter either 'C' for Celsius or 'F' for Fahrenheit.\n")
	}
}
