// ABOUTME: Manuscript export: renders a story to Markdown or standalone HTML
// ABOUTME: Chapter content is treated as Markdown and converted via goldmark

package export

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/quillworks/storywizard/internal/story"
)

// Markdown renders the story as a single Markdown manuscript: front matter,
// then chapters in narrative order. synopsis is optional prose placed before
// the first chapter, typically produced by the AI gateway.
func Markdown(st *story.Story, synopsis string) string {
	var b strings.Builder

	title := st.Title
	if title == "" {
		title = "Untitled Story"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if st.Author != "" {
		fmt.Fprintf(&b, "*by %s*\n\n", st.Author)
	}
	if st.Genre != "" || st.Tone != "" {
		fmt.Fprintf(&b, "> %s\n\n", strings.TrimSpace(st.Genre+" · "+st.Tone))
	}
	if synopsis != "" {
		fmt.Fprintf(&b, "%s\n\n", synopsis)
	}

	for i, ch := range st.Chapters {
		chTitle := ch.Title
		if chTitle == "" {
			chTitle = fmt.Sprintf("Chapter %d", i+1)
		}
		fmt.Fprintf(&b, "## %s\n\n", chTitle)
		if ch.TensionLevel != "" {
			fmt.Fprintf(&b, "*Tension: %s*\n\n", ch.TensionLevel)
		}
		if ch.Content != "" {
			b.WriteString(strings.TrimSpace(ch.Content))
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

var htmlShell = template.Must(template.New("manuscript").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}" dir="{{.Dir}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// HTML renders the story as a standalone HTML document. lang selects the
// document language; right-to-left locales get dir="rtl".
func HTML(st *story.Story, synopsis, lang string, rtl bool) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(st, synopsis)), &body); err != nil {
		return nil, fmt.Errorf("rendering manuscript: %w", err)
	}

	dir := "ltr"
	if rtl {
		dir = "rtl"
	}
	title := st.Title
	if title == "" {
		title = "Untitled Story"
	}

	var out bytes.Buffer
	err := htmlShell.Execute(&out, struct {
		Lang  string
		Dir   string
		Title string
		Body  template.HTML
	}{Lang: lang, Dir: dir, Title: title, Body: template.HTML(body.String())})
	if err != nil {
		return nil, fmt.Errorf("rendering manuscript shell: %w", err)
	}
	return out.Bytes(), nil
}
