package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{name: "single page collapses", current: 1, total: 1, want: nil},
		{name: "no items", current: 1, total: 0, want: nil},
		{name: "small set lists every page", current: 2, total: 4, want: []int{1, 2, 3, 4}},
		{name: "window around middle page", current: 5, total: 9, want: []int{1, 3, 4, 5, 6, 7, 9}},
		{name: "window at start", current: 1, total: 9, want: []int{1, 2, 3, 9}},
		{name: "window at end", current: 9, total: 9, want: []int{1, 7, 8, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pageNumbers(tt.current, tt.total))
		})
	}
}

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	b := NewBuilder(BuilderParams{})

	assert.Empty(t, b.renderMarkdown(""))

	html := string(b.renderMarkdown("# Judul\n\nParagraf *penting*."))
	assert.Contains(t, html, "<h1>Judul</h1>")
	assert.Contains(t, html, "<em>penting</em>")
}
