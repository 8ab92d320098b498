package flashcard

import "testing"

func TestNormalizeResponse_ValidArrayUnchanged(t *testing.T) {
	in := `[{"question":"Q?","answer":"A","type":"open"}]`
	if out := NormalizeResponse(in); out != in {
		t.Errorf("valid array text should pass through unchanged, got %q", out)
	}
	// Idempotence: normalizing twice is the same as once.
	if out := NormalizeResponse(NormalizeResponse(in)); out != in {
		t.Errorf("normalization is not idempotent, got %q", out)
	}
}

func TestNormalizeResponse_StripsFencedBlock(t *testing.T) {
	in := "```json\n[{\"question\":\"Q?\"}]\n```"
	if out := NormalizeResponse(in); out != `[{"question":"Q?"}]` {
		t.Errorf("expected fenced block stripped, got %q", out)
	}

	in = "```\n[1,2]\n```"
	if out := NormalizeResponse(in); out != "[1,2]" {
		t.Errorf("expected plain fence stripped, got %q", out)
	}
}

func TestNormalizeResponse_WrapsSingleObject(t *testing.T) {
	in := `{"question":"Q?","answer":"A","type":"open"}`
	want := `[{"question":"Q?","answer":"A","type":"open"}]`
	if out := NormalizeResponse(in); out != want {
		t.Errorf("expected object wrapped in array, got %q", out)
	}
}

func TestNormalizeResponse_ExtractsEmbeddedArray(t *testing.T) {
	in := "Here are your flashcards:\n[{\"question\":\"Q?\"}]\nHope this helps!"
	if out := NormalizeResponse(in); out != `[{"question":"Q?"}]` {
		t.Errorf("expected embedded array extracted, got %q", out)
	}
}

func TestNormalizeResponse_ExtractsEmbeddedObject(t *testing.T) {
	in := "Sure! {\"question\":\"Q?\"} Done."
	if out := NormalizeResponse(in); out != `[{"question":"Q?"}]` {
		t.Errorf("expected embedded object wrapped, got %q", out)
	}
}

func TestNormalizeResponse_GarbageYieldsEmptyArray(t *testing.T) {
	for _, in := range []string{"", "no json here at all", "[broken", "{]}"} {
		if out := NormalizeResponse(in); out != "[]" {
			t.Errorf("NormalizeResponse(%q): expected %q, got %q", in, "[]", out)
		}
	}
}

func TestParseCandidates_SkipsMalformedElements(t *testing.T) {
	in := `[{"question":"Good","answer":"A","type":"open"},"not an object",{"question":"Also good","answer":"B","type":"open"}]`
	cands := ParseCandidates(in)
	if len(cands) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(cands))
	}
	if cands[0].Question != "Good" || cands[1].Question != "Also good" {
		t.Errorf("unexpected candidates: %+v", cands)
	}
}

func TestParseCandidates_EmptyArray(t *testing.T) {
	if cands := ParseCandidates("[]"); len(cands) != 0 {
		t.Errorf("expected no candidates, got %d", len(cands))
	}
	if cands := ParseCandidates("not json"); cands != nil {
		t.Errorf("expected nil for invalid input, got %v", cands)
	}
}
