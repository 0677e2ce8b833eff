package console

import (
	"fmt"
	"strconv"
	"strings"
)

// readLine returns the next trimmed input line; ok is false once the
// input stream ends.
func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// readInt re-prompts until a number in [min, max] arrives.
func (m *Menu) readInt(prompt string, min, max int) (int, bool) {
	for {
		line, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		if line == "" {
			fmt.Fprintln(m.out, "Input cannot be empty!")
			continue
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(m.out, "Invalid number format: %q\n", line)
			continue
		}
		if value < min || value > max {
			fmt.Fprintf(m.out, "Please enter a number between %d and %d\n", min, max)
			continue
		}
		return value, true
	}
}

// readPositiveFloat re-prompts until a positive number arrives.
func (m *Menu) readPositiveFloat(prompt string) (float64, bool) {
	for {
		line, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.ParseFloat(line, 64)
		if err != nil || value <= 0 {
			fmt.Fprintln(m.out, "Enter a positive number")
			continue
		}
		return value, true
	}
}

// readNonEmpty re-prompts until a non-empty line arrives.
func (m *Menu) readNonEmpty(prompt string) (string, bool) {
	for {
		line, ok := m.readLine(prompt)
		if !ok {
			return "", false
		}
		if line != "" {
			return line, true
		}
		fmt.Fprintln(m.out, "Please enter a non-empty string")
	}
}

// readYesNo re-prompts until y/yes/n/no arrives.
func (m *Menu) readYesNo(prompt string) (bool, bool) {
	for {
		line, ok := m.readLine(prompt + " (y/n): ")
		if !ok {
			return false, false
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, true
		case "n", "no":
			return false, true
		}
		fmt.Fprintln(m.out, "Please type 'y' or 'n'")
	}
}
