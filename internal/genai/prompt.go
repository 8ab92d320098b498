package genai

import (
	"fmt"
	"strings"
)

const promptRules = `Each flashcard must be one of these types:
- "open": a question requiring a free-form answer
- "true_false": a statement to verify (answer must be "true" or "false")
- "multiple_choice": a question with exactly 4 options (answer must be the INDEX of the correct option: 0, 1, 2, or 3)

Respond with ONLY a JSON array, no markdown, for example:
[
  {
    "question": "What is the capital of Italy?",
    "answer": "Rome",
    "type": "open",
    "difficulty": 3
  },
  {
    "question": "The Earth is flat",
    "answer": "false",
    "type": "true_false",
    "difficulty": 2,
    "explanation": "The Earth is spherical, as demonstrated by centuries of astronomical observation"
  },
  {
    "question": "Which of these is a planet?",
    "answer": 0,
    "type": "multiple_choice",
    "options": ["Mars", "Moon", "Sun", "Star"],
    "difficulty": 3,
    "explanation": "Mars is the only planet among the options: the Moon is a satellite and the Sun is a star"
  }
]

IMPORTANT RULES:
1. For type "multiple_choice":
   - "answer" MUST be a number (0, 1, 2, or 3) giving the index of the correct option
   - "options" must contain exactly 4 distinct entries
   - ALWAYS add an "explanation" field justifying the correct answer
2. For type "true_false":
   - "answer" MUST be exactly "true" or "false"
   - ALWAYS add an "explanation" field
3. For type "open":
   - "answer" may be any text
   - do NOT add an "explanation" field
4. "difficulty" is an integer from 1 (easy) to 5 (hard).`

// BuildPrompt assembles the generation prompt for one chunk of
// document text.
func BuildPrompt(chunkText string, cardCount int, language string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Analyze the following text and create %d study flashcards in JSON format, written in %s.\n", cardCount, language))
	sb.WriteString(promptRules)
	sb.WriteString("\n\n---\n")
	sb.WriteString(chunkText)
	sb.WriteString("\n---\n")
	return sb.String()
}
