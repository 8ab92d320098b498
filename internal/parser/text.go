package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/fdemusso/FlashCardIA/internal/document"
)

// TextParser handles plain text files. Each blank-line separated
// paragraph becomes one page.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) ([]document.Page, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var pages []document.Page
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			pages = append(pages, document.Page{
				Number: len(pages) + 1,
				Text:   current.String(),
			})
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pages, nil
}
