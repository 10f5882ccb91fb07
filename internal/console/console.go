package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console - collects validated input from an interactive terminal.
// Malformed or out-of-range input is answered with a visible message
// and a re-prompt; an error is returned only when the underlying
// stream fails.
type Console struct {
	reader *bufio.Reader
	writer io.Writer
}

func New(reader io.Reader, writer io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// Printf - writes a formatted message to the terminal.
func (that *Console) Printf(format string, args ...any) {
	fmt.Fprintf(that.writer, format, args...)
}

// ReadLine - prompts and returns one line of input with whitespace trimmed.
func (that *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(that.writer, prompt)

	line, err := that.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// ReadInt - reads an integer in [minValue, maxValue], re-prompting until the
// input parses and fits the range.
func (that *Console) ReadInt(prompt string, minValue, maxValue int) (int, error) {
	for {
		line, err := that.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(line)
		if err != nil {
			that.Printf("Please enter a valid number.\n")
			continue
		}

		if value < minValue {
			that.Printf("Value must be at least %d.\n", minValue)
			continue
		}

		if value > maxValue {
			that.Printf("Value must be at most %d.\n", maxValue)
			continue
		}

		return value, nil
	}
}

// ReadFloat - reads a floating point number, re-prompting until the input parses.
func (that *Console) ReadFloat(prompt string) (float64, error) {
	for {
		line, err := that.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			that.Printf("Please enter a valid number.\n")
			continue
		}

		return value, nil
	}
}

// ReadYesNo - reads a yes/no answer, re-prompting until one is given.
func (that *Console) ReadYesNo(prompt string) (bool, error) {
	for {
		line, err := that.ReadLine(prompt + " (yes/no): ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			that.Printf("Please enter 'yes' or 'no'.\n")
		}
	}
}

// Pause - waits for the user to press Enter.
func (that *Console) Pause() error {
	_, err := that.ReadLine("Press Enter to continue...")
	return err
}

// Clear - clears the terminal screen.
func (that *Console) Clear() {
	fmt.Fprint(that.writer, "\033[H\033[2J")
}
