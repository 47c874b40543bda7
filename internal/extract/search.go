package extract

import (
	"regexp"

	"github.com/sells-group/screener-cli/internal/pdftext"
)

// match is one regex hit with its capture groups and the page the hit
// position resolves to.
type match struct {
	groups []string
	page   int
	start  int
	end    int
}

// searchDoc finds the first hit of re in the whole document.
func searchDoc(doc *pdftext.Document, re *regexp.Regexp) (match, bool) {
	return searchAt(doc, doc.Text, 0, re)
}

// searchAt finds the first hit of re within a slice of the document's text.
// base is the slice's offset into doc.Text, so page attribution stays
// anchored to the full document.
func searchAt(doc *pdftext.Document, text string, base int, re *regexp.Regexp) (match, bool) {
	idx := re.FindStringSubmatchIndex(text)
	if idx == nil {
		return match{}, false
	}
	m := match{start: base + idx[0], end: base + idx[1], page: doc.PageAt(base + idx[0])}
	for g := 0; g*2 < len(idx); g++ {
		if idx[g*2] < 0 {
			m.groups = append(m.groups, "")
			continue
		}
		m.groups = append(m.groups, text[idx[g*2]:idx[g*2+1]])
	}
	return m, true
}

// searchAll finds every hit of re within a slice of the document's text.
func searchAll(doc *pdftext.Document, text string, base int, re *regexp.Regexp) []match {
	var out []match
	for _, idx := range re.FindAllStringSubmatchIndex(text, -1) {
		m := match{start: base + idx[0], end: base + idx[1], page: doc.PageAt(base + idx[0])}
		for g := 0; g*2 < len(idx); g++ {
			if idx[g*2] < 0 {
				m.groups = append(m.groups, "")
				continue
			}
			m.groups = append(m.groups, text[idx[g*2]:idx[g*2+1]])
		}
		out = append(out, m)
	}
	return out
}

// group returns capture group n, or "" when the group did not participate.
func (m match) group(n int) string {
	if n < 0 || n >= len(m.groups) {
		return ""
	}
	return m.groups[n]
}

// firstMatch tries an ordered list of patterns and returns the first hit.
// Callers list patterns from most to least specific.
func firstMatch(doc *pdftext.Document, text string, base int, patterns []*regexp.Regexp) (match, bool) {
	for _, re := range patterns {
		if m, ok := searchAt(doc, text, base, re); ok {
			return m, true
		}
	}
	return match{}, false
}
