package document

import "testing"

func TestCleanText_ControlCharactersRemoved(t *testing.T) {
	in := "Proper sentence with\x00 control\x1f characters inside it."
	out := CleanText(in)
	for _, r := range out {
		if r < 0x20 {
			t.Fatalf("control character %q survived cleaning: %q", r, out)
		}
	}
	if out != "Proper sentence with control characters inside it." {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestCleanText_PageNumberLinesDropped(t *testing.T) {
	in := "This is the body of the page with enough words.\n1 2 3 4 5\nAnd this is the continuation of the text."
	out := CleanText(in)
	if want := "This is the body of the page with enough words. And this is the continuation of the text."; out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestCleanText_ShortArtifactLinesDropped(t *testing.T) {
	in := "A real paragraph of extracted content.\nab\n-\nAnother real paragraph follows here."
	out := CleanText(in)
	if want := "A real paragraph of extracted content. Another real paragraph follows here."; out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestCleanText_WhitespaceCollapsed(t *testing.T) {
	in := "Spaced    out\ttext     with   gaps everywhere."
	out := CleanText(in)
	if want := "Spaced out text with gaps everywhere."; out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestCleanText_Empty(t *testing.T) {
	if out := CleanText(""); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
	if out := CleanText("\n\n  \n12\n"); out != "" {
		t.Errorf("expected artifacts-only input to clean to empty, got %q", out)
	}
}

func TestWordCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"one", 1},
		{"two words", 2},
		{"  padded   words  here ", 3},
	}
	for _, c := range cases {
		if got := WordCount(c.in); got != c.want {
			t.Errorf("WordCount(%q): expected %d, got %d", c.in, c.want, got)
		}
	}
}
