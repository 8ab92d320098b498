package chunker

import (
	"fmt"
	"strings"

	"github.com/fdemusso/FlashCardIA/internal/document"
)

// Config controls how pages are merged into model-sized chunks.
type Config struct {
	MaxWords      int // Target maximum words per chunk.
	MinChunkWords int // A chunk is never closed below this size.
	MinTotalWords int // Documents below this total are rejected.
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxWords:      800,
		MinChunkWords: 50,
		MinTotalWords: 50,
	}
}

// InsufficientContentError reports a document whose total word count
// is too small for meaningful flashcard generation.
type InsufficientContentError struct {
	Words   int
	Minimum int
}

func (e *InsufficientContentError) Error() string {
	return fmt.Sprintf("document has %d words, below the %d-word minimum for processing", e.Words, e.Minimum)
}

// Merge groups cleaned pages, in order, into chunks bounded by
// cfg.MaxWords. The running chunk is only closed once it holds at
// least cfg.MinChunkWords, so short pages keep merging rather than
// producing tiny chunks. A single page larger than cfg.MaxWords
// becomes its own oversized chunk instead of being dropped.
func Merge(pages []document.Page, cfg Config) ([]document.TextChunk, error) {
	if cfg.MaxWords <= 0 {
		cfg.MaxWords = 800
	}
	if cfg.MinChunkWords <= 0 {
		cfg.MinChunkWords = 50
	}

	total := 0
	counts := make([]int, len(pages))
	for i, p := range pages {
		counts[i] = document.WordCount(p.Text)
		total += counts[i]
	}
	if total < cfg.MinTotalWords {
		return nil, &InsufficientContentError{Words: total, Minimum: cfg.MinTotalWords}
	}

	var chunks []document.TextChunk
	var current strings.Builder
	var currentPages []int
	currentWords := 0

	flush := func() {
		text := strings.TrimSpace(current.String())
		if text == "" {
			return
		}
		chunks = append(chunks, document.TextChunk{
			Ordinal:   len(chunks),
			Text:      text,
			WordCount: currentWords,
			Pages:     currentPages,
		})
		current.Reset()
		currentPages = nil
		currentWords = 0
	}

	for i, page := range pages {
		if currentWords+counts[i] > cfg.MaxWords && currentWords >= cfg.MinChunkWords {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(page.Text)
		currentPages = append(currentPages, page.Number)
		currentWords += counts[i]
	}
	flush()

	return chunks, nil
}
