package pdftext

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Document is the text of one PDF with page boundaries preserved. Pages are
// concatenated into a single searchable string with a <<PAGE_N>> marker
// inserted before each page, so a regex match position can be attributed
// back to a page number.
type Document struct {
	Path  string
	Text  string
	pages []pageSpan
}

type pageSpan struct {
	number int // printed report page number when detected, else physical index
	offset int // byte offset of the page's text within Document.Text
}

var pageMarkerRe = regexp.MustCompile(`<<PAGE_(\d+)>>`)

// footer page number: "Page 3 of 12" anywhere, or a bare "3 of 12" trailer.
var (
	footerPageRe   = regexp.MustCompile(`Page\s+(\d+)\s+of\s+(\d+)`)
	trailerPageRe  = regexp.MustCompile(`(\d+)\s+of\s+(\d+)\s*$`)
	footerTailSize = 500
)

// NewDocument assembles a Document from per-page text. Page numbering
// prefers the printed "Page X of Y" footer over the physical index, since
// combined CoStar exports restart their printed numbering per report.
func NewDocument(path string, pageTexts []string) *Document {
	var buf strings.Builder
	d := &Document{Path: path}
	for i, text := range pageTexts {
		number := printedPageNumber(text)
		if number == 0 {
			number = i + 1
		}
		d.pages = append(d.pages, pageSpan{number: number, offset: buf.Len()})
		fmt.Fprintf(&buf, "<<PAGE_%d>>\n", number)
		buf.WriteString(text)
		buf.WriteString("\n")
	}
	d.Text = buf.String()
	return d
}

// PageAt returns the page number for a byte position in Text by scanning
// backward to the nearest <<PAGE_N>> marker. Positions before the first
// marker report page 1.
func (d *Document) PageAt(pos int) int {
	if d == nil || pos < 0 || pos > len(d.Text) {
		return 0
	}
	best := 1
	for _, span := range d.pages {
		if span.offset > pos {
			break
		}
		best = span.number
	}
	return best
}

// PageText returns the raw text of the page with the given printed number,
// or "" when the document has no such page.
func (d *Document) PageText(number int) string {
	for i, span := range d.pages {
		if span.number != number {
			continue
		}
		start := span.offset
		end := len(d.Text)
		if i+1 < len(d.pages) {
			end = d.pages[i+1].offset
		}
		text := d.Text[start:end]
		// Drop the marker line.
		if idx := strings.IndexByte(text, '\n'); idx >= 0 {
			text = text[idx+1:]
		}
		return text
	}
	return ""
}

// NumPages reports how many pages the document carries.
func (d *Document) NumPages() int {
	return len(d.pages)
}

// StripMarkers removes <<PAGE_N>> markers, for output not meant to be
// position-resolved.
func StripMarkers(text string) string {
	return pageMarkerRe.ReplaceAllString(text, "")
}

// printedPageNumber looks for the report's own footer numbering in the tail
// of a page. A candidate is rejected when it exceeds the page count the
// footer itself claims, which filters table cells that happen to read like
// "12 of 48".
func printedPageNumber(pageText string) int {
	tail := pageText
	if len(tail) > footerTailSize {
		tail = tail[len(tail)-footerTailSize:]
	}

	if m := footerPageRe.FindStringSubmatch(tail); m != nil {
		if n := parseFooterPair(m[1], m[2]); n > 0 {
			return n
		}
	}
	for _, line := range strings.Split(tail, "\n") {
		if m := trailerPageRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			if n := parseFooterPair(m[1], m[2]); n > 0 {
				return n
			}
		}
	}
	return 0
}

func parseFooterPair(pageStr, totalStr string) int {
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return 0
	}
	total, err := strconv.Atoi(totalStr)
	if err != nil {
		return 0
	}
	if page < 1 || total < 1 || page > total {
		return 0
	}
	return page
}
