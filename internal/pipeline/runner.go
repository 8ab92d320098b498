package pipeline

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"log/slog"
	"strings"
	"time"

	"github.com/fdemusso/FlashCardIA/internal/chunker"
	"github.com/fdemusso/FlashCardIA/internal/config"
	"github.com/fdemusso/FlashCardIA/internal/document"
	"github.com/fdemusso/FlashCardIA/internal/flashcard"
	"github.com/fdemusso/FlashCardIA/internal/genai"
	"github.com/fdemusso/FlashCardIA/internal/parser"
)

// Runner drives a document through parsing, chunking and generation,
// reporting progress as a stream of events.
type Runner struct {
	model  genai.Completer
	cfg    config.Config
	logger *slog.Logger
}

func NewRunner(model genai.Completer, cfg config.Config, logger *slog.Logger) *Runner {
	return &Runner{model: model, cfg: cfg, logger: logger}
}

// Run processes one uploaded document. The returned sequence yields
// zero or more progress events followed by exactly one complete or
// error event. Breaking out of the sequence stops the run before the
// next model call.
func (r *Runner) Run(ctx context.Context, filename string, data []byte) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		e := &emitter{yield: yield}
		defer e.finish()
		r.run(ctx, filename, data, e)
	}
}

func (r *Runner) run(ctx context.Context, filename string, data []byte, e *emitter) {
	p, err := parser.ForFile(filename, parser.Options{PDFFallbackPdftotext: r.cfg.PDFFallbackPdftotext})
	if err != nil {
		e.fail(err.Error())
		return
	}

	rawPages, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		r.logger.Error("document parse failed", "file", filename, "error", err)
		e.fail("failed to extract text from document")
		return
	}

	pages, totalWords := r.cleanPages(rawPages)
	if len(pages) == 0 {
		e.fail("document contains no usable text")
		return
	}

	chunks, err := chunker.Merge(pages, chunker.Config{
		MaxWords:      r.cfg.MaxWordsPerChunk,
		MinChunkWords: r.cfg.MinChunkWords,
		MinTotalWords: r.cfg.MinWordsForProcessing,
	})
	if err != nil {
		var insufficient *chunker.InsufficientContentError
		if errors.As(err, &insufficient) {
			e.fail(err.Error())
			return
		}
		e.fail("failed to prepare document text")
		return
	}

	r.logger.Info("generation started",
		"file", filename,
		"pages", len(pages),
		"words", totalWords,
		"chunks", len(chunks))

	var cards []flashcard.Flashcard
	for i, chunk := range chunks {
		if ctx.Err() != nil {
			e.fail("generation cancelled")
			return
		}

		generated, err := r.generateForChunk(ctx, chunk)
		if err != nil {
			if ctx.Err() != nil {
				e.fail("generation cancelled")
				return
			}
			// A failed chunk contributes no cards but never aborts the run.
			r.logger.Warn("chunk generation failed", "chunk", chunk.Ordinal, "error", err)
		}
		for _, card := range generated {
			if len(cards) >= r.cfg.MaxFlashcards {
				break
			}
			cards = append(cards, card)
		}

		if !e.progress(i+1, len(chunks)) {
			return
		}
	}

	e.complete(cards, Statistics{
		PagesProcessed:      len(pages),
		TotalWords:          totalWords,
		FlashcardsGenerated: len(cards),
	})
}

// cleanPages normalizes page text, dropping pages with too little raw
// content and pages whose cleaned text is too short to be useful.
func (r *Runner) cleanPages(raw []document.Page) ([]document.Page, int) {
	pages := make([]document.Page, 0, len(raw))
	totalWords := 0
	for _, page := range raw {
		if len(strings.TrimSpace(page.Text)) < r.cfg.MinPageContentLength {
			continue
		}
		cleaned := document.CleanText(page.Text)
		if len(cleaned) < r.cfg.MinTextLength {
			continue
		}
		pages = append(pages, document.Page{Number: page.Number, Text: cleaned})
		totalWords += document.WordCount(cleaned)
	}
	return pages, totalWords
}

// generateForChunk runs one model call for a chunk, retrying once on a
// retryable failure, and returns the validated flashcards.
func (r *Runner) generateForChunk(ctx context.Context, chunk document.TextChunk) ([]flashcard.Flashcard, error) {
	prompt := genai.BuildPrompt(chunk.Text, r.cfg.CardsPerChunk, r.cfg.Language)

	var raw string
	var err error
	for attempt := 0; ; attempt++ {
		raw, err = r.complete(ctx, prompt)
		if err == nil {
			break
		}
		if attempt >= MaxRetries || !IsRetryable(err) {
			return nil, err
		}
		r.logger.Warn("model call failed, retrying",
			"chunk", chunk.Ordinal,
			"attempt", attempt+1,
			"error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(Backoff(attempt)):
		}
	}

	candidates := flashcard.ParseCandidates(flashcard.NormalizeResponse(raw))
	opts := flashcard.ValidateOptions{
		MinQuestionLength: r.cfg.MinQuestionLength,
		DefaultDifficulty: r.cfg.DefaultDifficulty,
	}
	cards := make([]flashcard.Flashcard, 0, len(candidates))
	for i := range candidates {
		if card, ok := flashcard.Validate(&candidates[i], opts); ok {
			cards = append(cards, card)
		}
	}
	return cards, nil
}

func (r *Runner) complete(ctx context.Context, prompt string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, r.cfg.ModelTimeout)
	defer cancel()
	return r.model.Complete(cctx, prompt, r.cfg.MaxCompletionTokens, r.cfg.Temperature)
}

// emitter serializes events onto the consumer and guarantees that at
// most one terminal event is delivered, even on an early return.
type emitter struct {
	yield    func(Event) bool
	terminal bool
	stopped  bool
}

func (e *emitter) progress(done, total int) bool {
	if e.stopped || e.terminal {
		return false
	}
	if !e.yield(progressEvent(done, total)) {
		e.stopped = true
		return false
	}
	return true
}

func (e *emitter) fail(message string) {
	if e.stopped || e.terminal {
		return
	}
	e.terminal = true
	e.yield(errorEvent(message))
}

func (e *emitter) complete(cards []flashcard.Flashcard, stats Statistics) {
	if e.stopped || e.terminal {
		return
	}
	e.terminal = true
	e.yield(completeEvent(cards, stats))
}

// finish covers any path that returned without a terminal event.
func (e *emitter) finish() {
	e.fail("generation aborted unexpectedly")
}
