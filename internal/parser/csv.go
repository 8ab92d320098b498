package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/fdemusso/FlashCardIA/internal/document"
)

// CSVParser handles CSV files. Rows are grouped into batches, each
// batch rendered as header-labelled lines on its own page.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) ([]document.Page, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// First row is headers.
	headers := records[0]
	dataRows := records[1:]

	const batchSize = 20
	var pages []document.Page

	for i := 0; i < len(dataRows); i += batchSize {
		end := i + batchSize
		if end > len(dataRows) {
			end = len(dataRows)
		}

		var text strings.Builder
		for _, row := range dataRows[i:end] {
			for j, cell := range row {
				if j < len(headers) {
					text.WriteString(headers[j] + ": " + cell)
				} else {
					text.WriteString(cell)
				}
				if j < len(row)-1 {
					text.WriteString(", ")
				}
			}
			text.WriteString("\n")
		}

		pages = append(pages, document.Page{
			Number: len(pages) + 1,
			Text:   text.String(),
		})
	}

	return pages, nil
}
