// Package textinput splits raw puzzle text into lines.
package textinput

import "strings"

// Lines splits input on '\n', dropping a trailing '\r' from each line.
// A single trailing newline does not produce an extra empty line, and empty
// input has no lines.
func Lines(input string) []string {
	if input == "" {
		return nil
	}
	input = strings.TrimSuffix(input, "\n")
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
