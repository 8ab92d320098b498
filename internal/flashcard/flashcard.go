package flashcard

import "encoding/json"

// Kind classifies a flashcard.
type Kind string

const (
	KindMultipleChoice Kind = "multiple_choice"
	KindTrueFalse      Kind = "true_false"
	KindOpen           Kind = "open"
)

// Canonical true/false answer tokens.
const (
	AnswerTrue  = "true"
	AnswerFalse = "false"
)

// Flashcard is a validated study question. For multiple choice the
// answer always equals one of the options verbatim; for true/false it
// is one of the canonical tokens. Never mutated after validation.
type Flashcard struct {
	Question    string   `json:"question"`
	Answer      string   `json:"answer"`
	Kind        Kind     `json:"type"`
	Options     []string `json:"options,omitempty"`
	Difficulty  int      `json:"difficulty"`
	Explanation string   `json:"explanation,omitempty"`
}

// Candidate is an unvalidated record decoded from model output.
// Answer and Difficulty stay raw because models emit them as strings,
// numbers or booleans interchangeably.
type Candidate struct {
	Question    string          `json:"question"`
	Answer      json.RawMessage `json:"answer"`
	Kind        string          `json:"type"`
	Options     []string        `json:"options"`
	Difficulty  json.RawMessage `json:"difficulty"`
	Explanation string          `json:"explanation"`
}
