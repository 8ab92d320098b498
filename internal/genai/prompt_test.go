package genai

import (
	"strings"
	"testing"
)

func TestBuildPrompt_EmbedsChunkAndConstraints(t *testing.T) {
	chunk := "Photosynthesis converts light energy into chemical energy."
	prompt := BuildPrompt(chunk, 3, "English")

	if !strings.Contains(prompt, chunk) {
		t.Error("prompt should embed the chunk text")
	}
	if !strings.Contains(prompt, "create 3 study flashcards") {
		t.Error("prompt should name the target card count")
	}
	if !strings.Contains(prompt, "written in English") {
		t.Error("prompt should name the output language")
	}
	for _, kind := range []string{"open", "true_false", "multiple_choice"} {
		if !strings.Contains(prompt, kind) {
			t.Errorf("prompt should describe the %q type", kind)
		}
	}
}
