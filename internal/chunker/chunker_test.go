package chunker

import (
	"errors"
	"strings"
	"testing"

	"github.com/fdemusso/FlashCardIA/internal/document"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestMerge_PagesCombineUpToLimit(t *testing.T) {
	// 3 pages x 300 words with an 800-word limit: pages 1+2 merge,
	// page 3 starts a second chunk.
	pages := []document.Page{
		{Number: 1, Text: words(300)},
		{Number: 2, Text: words(300)},
		{Number: 3, Text: words(300)},
	}

	cfg := Config{MaxWords: 800, MinChunkWords: 50, MinTotalWords: 50}
	chunks, err := Merge(pages, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0].WordCount != 600 {
		t.Errorf("chunk 0: expected 600 words, got %d", chunks[0].WordCount)
	}
	if chunks[1].WordCount != 300 {
		t.Errorf("chunk 1: expected 300 words, got %d", chunks[1].WordCount)
	}
	if got, want := chunks[0].Pages, []int{1, 2}; !equalInts(got, want) {
		t.Errorf("chunk 0 pages: expected %v, got %v", want, got)
	}
	if got, want := chunks[1].Pages, []int{3}; !equalInts(got, want) {
		t.Errorf("chunk 1 pages: expected %v, got %v", want, got)
	}
}

func TestMerge_OrdinalsAreDense(t *testing.T) {
	pages := []document.Page{
		{Number: 1, Text: words(500)},
		{Number: 2, Text: words(500)},
		{Number: 3, Text: words(500)},
		{Number: 4, Text: words(500)},
	}
	chunks, err := Merge(pages, Config{MaxWords: 600, MinChunkWords: 50, MinTotalWords: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, c := range chunks {
		if c.Ordinal != i {
			t.Errorf("chunk %d: expected ordinal %d, got %d", i, i, c.Ordinal)
		}
	}
}

func TestMerge_OversizedPageBecomesOwnChunk(t *testing.T) {
	pages := []document.Page{
		{Number: 1, Text: words(100)},
		{Number: 2, Text: words(1200)},
		{Number: 3, Text: words(100)},
	}
	chunks, err := Merge(pages, Config{MaxWords: 800, MinChunkWords: 50, MinTotalWords: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if chunks[1].WordCount != 1200 {
		t.Errorf("expected oversized middle chunk of 1200 words, got %d", chunks[1].WordCount)
	}
	if len(chunks[1].Pages) != 1 || chunks[1].Pages[0] != 2 {
		t.Errorf("oversized chunk should contain only page 2, got %v", chunks[1].Pages)
	}
}

func TestMerge_TinyPagesKeepMerging(t *testing.T) {
	// Pages of 30 words each never justify closing a chunk before the
	// 50-word floor, even when the limit is tight.
	var pages []document.Page
	for i := 1; i <= 6; i++ {
		pages = append(pages, document.Page{Number: i, Text: words(30)})
	}
	chunks, err := Merge(pages, Config{MaxWords: 70, MinChunkWords: 50, MinTotalWords: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, c := range chunks {
		if i == len(chunks)-1 {
			continue // the trailing chunk may be small
		}
		if c.WordCount < 50 {
			t.Errorf("chunk %d closed below floor: %d words", i, c.WordCount)
		}
	}
}

func TestMerge_InsufficientContent(t *testing.T) {
	pages := []document.Page{{Number: 1, Text: words(20)}}
	_, err := Merge(pages, Config{MaxWords: 800, MinChunkWords: 50, MinTotalWords: 50})
	if err == nil {
		t.Fatal("expected error for 20-word document")
	}
	var ice *InsufficientContentError
	if !errors.As(err, &ice) {
		t.Fatalf("expected InsufficientContentError, got %T: %v", err, err)
	}
	if ice.Words != 20 || ice.Minimum != 50 {
		t.Errorf("expected words=20 minimum=50, got %+v", ice)
	}
}

func TestMerge_NoPages(t *testing.T) {
	_, err := Merge(nil, DefaultConfig())
	if err == nil {
		t.Fatal("expected error for empty page list")
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
