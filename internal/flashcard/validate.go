package flashcard

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const optionCount = 4

// ValidateOptions tunes candidate validation.
type ValidateOptions struct {
	MinQuestionLength int
	DefaultDifficulty int
}

// Validate converts a candidate into a Flashcard, or rejects it.
// Rejection is per candidate: one bad record never discards a batch.
func Validate(c *Candidate, opts ValidateOptions) (Flashcard, bool) {
	if c == nil {
		return Flashcard{}, false
	}

	question := strings.TrimSpace(c.Question)
	if question == "" || len(question) < opts.MinQuestionLength {
		return Flashcard{}, false
	}

	kind := Kind(strings.TrimSpace(c.Kind))
	card := Flashcard{
		Question:    question,
		Kind:        kind,
		Difficulty:  coerceDifficulty(c.Difficulty, opts.DefaultDifficulty),
		Explanation: strings.TrimSpace(c.Explanation),
	}

	switch kind {
	case KindMultipleChoice:
		answer, ok := resolveChoiceAnswer(c)
		if !ok {
			return Flashcard{}, false
		}
		card.Answer = answer
		card.Options = trimmedOptions(c.Options)

	case KindTrueFalse:
		answer, ok := normalizeBoolAnswer(c.Answer)
		if !ok {
			return Flashcard{}, false
		}
		card.Answer = answer

	case KindOpen:
		answer, ok := answerText(c.Answer)
		if !ok || answer == "" {
			return Flashcard{}, false
		}
		card.Answer = answer
		// Open cards carry neither options nor a rationale.
		card.Explanation = ""

	default:
		return Flashcard{}, false
	}

	return card, true
}

// resolveChoiceAnswer checks the option list and resolves the answer
// to option text. A JSON number is a zero-based option index;
// a string (even a numeric-looking one) must match an option verbatim.
func resolveChoiceAnswer(c *Candidate) (string, bool) {
	options := trimmedOptions(c.Options)
	if options == nil {
		return "", false
	}

	if idx, ok := answerIndex(c.Answer); ok {
		if idx < 0 || idx >= len(options) {
			return "", false
		}
		return options[idx], true
	}

	answer, ok := answerText(c.Answer)
	if !ok {
		return "", false
	}
	for _, opt := range options {
		if answer == opt {
			return answer, true
		}
	}
	return "", false
}

// trimmedOptions returns the cleaned option list, or nil unless there
// are exactly four distinct non-empty options.
func trimmedOptions(options []string) []string {
	if len(options) != optionCount {
		return nil
	}
	out := make([]string, optionCount)
	seen := make(map[string]bool, optionCount)
	for i, opt := range options {
		opt = strings.TrimSpace(opt)
		if opt == "" || seen[opt] {
			return nil
		}
		seen[opt] = true
		out[i] = opt
	}
	return out
}

// answerIndex extracts a JSON-number answer as an option index.
func answerIndex(raw json.RawMessage) (int, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// answerText extracts the answer as text. Strings pass through;
// numbers are rendered, which keeps usable open answers like "42".
func answerText(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s), true
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}

// normalizeBoolAnswer maps a true/false answer onto the canonical
// tokens, accepting strings in any case and JSON booleans.
func normalizeBoolAnswer(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case AnswerTrue:
			return AnswerTrue, true
		case AnswerFalse:
			return AnswerFalse, true
		}
		return "", false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		if b {
			return AnswerTrue, true
		}
		return AnswerFalse, true
	}
	return "", false
}

// coerceDifficulty accepts numbers and numeric strings, clamping to
// [1,5]; anything else falls back to the default.
func coerceDifficulty(raw json.RawMessage, fallback int) int {
	d := fallback
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		d = int(f)
	} else {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
				d = n
			}
		}
	}
	if d < 1 {
		d = 1
	}
	if d > 5 {
		d = 5
	}
	return d
}
