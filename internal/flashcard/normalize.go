package flashcard

import (
	"encoding/json"
	"regexp"
	"strings"
)

var codeBlockRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

// NormalizeResponse recovers JSON array text from free-form model
// output. Each step is a fallback for the previous: strip a fenced
// code block, accept valid array text as-is, wrap a lone object in an
// array, carve out the outermost bracketed substring, and finally give
// up with an empty array. It never fails, so downstream validation has
// a uniform input shape, and it is idempotent on valid array text.
func NormalizeResponse(raw string) string {
	s := stripCodeBlock(raw)

	if json.Valid([]byte(s)) {
		switch firstByte(s) {
		case '[':
			return s
		case '{':
			return "[" + s + "]"
		}
	}

	if start, end := strings.Index(s, "["), strings.LastIndex(s, "]"); start >= 0 && end > start {
		if sub := s[start : end+1]; json.Valid([]byte(sub)) {
			return sub
		}
	}
	if start, end := strings.Index(s, "{"), strings.LastIndex(s, "}"); start >= 0 && end > start {
		if sub := s[start : end+1]; json.Valid([]byte(sub)) {
			return "[" + sub + "]"
		}
	}

	return "[]"
}

// ParseCandidates decodes normalized array text element by element, so
// one malformed element discards itself rather than the whole batch.
func ParseCandidates(jsonText string) []Candidate {
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(jsonText), &elements); err != nil {
		return nil
	}

	candidates := make([]Candidate, 0, len(elements))
	for _, el := range elements {
		var c Candidate
		if err := json.Unmarshal(el, &c); err != nil {
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates
}

func stripCodeBlock(s string) string {
	s = strings.TrimSpace(s)
	if m := codeBlockRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return s
}

func firstByte(s string) byte {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0
	}
	return t[0]
}
