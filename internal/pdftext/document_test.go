package pdftext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentInsertsMarkers(t *testing.T) {
	d := NewDocument("x.pdf", []string{"first page", "second page"})

	assert.Contains(t, d.Text, "<<PAGE_1>>")
	assert.Contains(t, d.Text, "<<PAGE_2>>")
	assert.Equal(t, 2, d.NumPages())
}

func TestPageAt(t *testing.T) {
	d := NewDocument("x.pdf", []string{"alpha content", "beta content", "gamma content"})

	tests := []struct {
		name   string
		needle string
		want   int
	}{
		{"first page", "alpha", 1},
		{"second page", "beta", 2},
		{"third page", "gamma", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := strings.Index(d.Text, tt.needle)
			require.GreaterOrEqual(t, pos, 0)
			assert.Equal(t, tt.want, d.PageAt(pos))
		})
	}
}

func TestPrintedFooterPreferredOverPhysicalIndex(t *testing.T) {
	// Combined exports restart printed numbering per report: physical page 3
	// may print as "Page 1 of 8" for the next report.
	pages := []string{
		"report A body\nPage 1 of 2",
		"report A more\nPage 2 of 2",
		"report B body\nPage 1 of 8",
	}
	d := NewDocument("combined.pdf", pages)

	pos := strings.Index(d.Text, "report B body")
	require.GreaterOrEqual(t, pos, 0)
	assert.Equal(t, 1, d.PageAt(pos))
}

func TestPrintedPageNumberSanity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"footer style", "body\nPage 3 of 12", 3},
		{"bare trailer", "body\n7 of 10", 7},
		{"page exceeds total rejected", "body\nPage 15 of 12", 0},
		{"no footer", "body only", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, printedPageNumber(tt.text))
		})
	}
}

func TestPageText(t *testing.T) {
	d := NewDocument("x.pdf", []string{"one", "two"})
	assert.Equal(t, "one\n", d.PageText(1))
	assert.Equal(t, "two\n", d.PageText(2))
	assert.Equal(t, "", d.PageText(9))
}

func TestStripMarkers(t *testing.T) {
	d := NewDocument("x.pdf", []string{"hello"})
	assert.NotContains(t, StripMarkers(d.Text), "<<PAGE_")
}
