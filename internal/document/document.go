package document

// Page is one unit of extracted document text: a physical page for
// PDFs, a paragraph or section for other formats.
type Page struct {
	Number int    // 1-based position within the document
	Text   string // Extracted text, raw until CleanText is applied
}

// TextChunk is a bounded span of contiguous page text, sized for a
// single model call. Ordinals are dense and define processing order.
type TextChunk struct {
	Ordinal   int    // Sequence number within the document, from 0
	Text      string // Merged page text
	WordCount int
	Pages     []int // Source page numbers, in order
}
