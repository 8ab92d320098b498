package pipeline

import "github.com/fdemusso/FlashCardIA/internal/flashcard"

// Event kinds carried on the generation stream.
const (
	EventProgress = "progress"
	EventComplete = "complete"
	EventError    = "error"
)

// Event is one line of the generation stream. Data holds a Progress
// for progress events, a Result for complete events, and a plain
// message string for error events.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Progress reports one finished chunk.
type Progress struct {
	CurrentPart int `json:"current_part"`
	TotalParts  int `json:"total_parts"`
	Percentage  int `json:"percentage"`
}

// Statistics summarizes a finished run.
type Statistics struct {
	PagesProcessed      int `json:"pages_processed"`
	TotalWords          int `json:"total_words"`
	FlashcardsGenerated int `json:"flashcards_generated"`
}

// Result is the payload of the terminal complete event.
type Result struct {
	Flashcards []flashcard.Flashcard `json:"flashcards"`
	Statistics Statistics            `json:"statistics"`
}

func progressEvent(done, total int) Event {
	return Event{Type: EventProgress, Data: Progress{
		CurrentPart: done,
		TotalParts:  total,
		Percentage:  100 * done / total,
	}}
}

func completeEvent(cards []flashcard.Flashcard, stats Statistics) Event {
	if cards == nil {
		cards = []flashcard.Flashcard{}
	}
	return Event{Type: EventComplete, Data: Result{Flashcards: cards, Statistics: stats}}
}

func errorEvent(message string) Event {
	return Event{Type: EventError, Data: message}
}
