// ABOUTME: Tests for manuscript export
// ABOUTME: Covers chapter ordering, fallbacks, and the HTML shell

package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillworks/storywizard/internal/story"
)

func TestMarkdownOrdersChapters(t *testing.T) {
	st := &story.Story{
		Title:  "The Long Night",
		Author: "R. Vance",
		Chapters: []story.Chapter{
			{Title: "Dusk", Content: "It began at dusk.", TensionLevel: story.TensionLow},
			{Title: "Midnight", Content: "By midnight the lights failed.", TensionLevel: story.TensionClimax},
		},
	}

	md := Markdown(st, "A city that never sees dawn.")
	assert.Contains(t, md, "# The Long Night")
	assert.Contains(t, md, "*by R. Vance*")
	assert.Contains(t, md, "A city that never sees dawn.")
	assert.Less(t, strings.Index(md, "## Dusk"), strings.Index(md, "## Midnight"))
	assert.Contains(t, md, "*Tension: climax*")
}

func TestMarkdownFallbackTitles(t *testing.T) {
	st := &story.Story{Chapters: []story.Chapter{{Content: "text"}}}

	md := Markdown(st, "")
	assert.Contains(t, md, "# Untitled Story")
	assert.Contains(t, md, "## Chapter 1")
}

func TestHTMLShell(t *testing.T) {
	st := &story.Story{
		Title:    "Waves",
		Chapters: []story.Chapter{{Title: "One", Content: "Some *emphasis* here."}},
	}

	out, err := HTML(st, "", "en", false)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, `lang="en"`)
	assert.Contains(t, html, `dir="ltr"`)
	assert.Contains(t, html, "<title>Waves</title>")
	assert.Contains(t, html, "<em>emphasis</em>")
}

func TestHTMLRightToLeft(t *testing.T) {
	out, err := HTML(&story.Story{Title: "قصة"}, "", "ar", true)
	require.NoError(t, err)
	assert.Contains(t, string(out), `dir="rtl"`)
}
