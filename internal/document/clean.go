package document

import (
	"strings"
	"unicode"
)

// CleanText scrubs raw extracted page text for model consumption.
// Control characters become spaces, digit-only lines (usually page
// numbers) and very short lines (formatting artifacts) are dropped,
// and the surviving lines are rejoined with normalized spacing.
// It is conservative: doubtful text is kept rather than removed.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	var lines []string
	for _, line := range strings.Split(stripControl(text), "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= 3 {
			continue
		}
		if isDigitsOnly(line) {
			continue
		}
		lines = append(lines, line)
	}

	// Rejoin and collapse any runs of whitespace left behind.
	return strings.Join(strings.Fields(strings.Join(lines, " ")), " ")
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// stripControl replaces control and non-printable characters with
// spaces, preserving newlines so line-level filtering still works.
func stripControl(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' {
			return r
		}
		if r == '\t' {
			return ' '
		}
		if unicode.IsControl(r) || (r >= 0x7f && r <= 0x9f) {
			return ' '
		}
		return r
	}, text)
}

func isDigitsOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
