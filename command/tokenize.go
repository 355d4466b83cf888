package command

import "strings"

// Tokenize splits line on runs of whitespace. Blank lines produce no tokens.
// There is no quoting or escaping.
func Tokenize(line string) []string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
