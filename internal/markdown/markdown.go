// Package markdown turns upstream-generated markdown into HTML that is safe to
// embed in a page.
package markdown

import (
	"html/template"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

// Generated quizzes put each answer option on its own line, so single
// newlines are kept as line breaks.
const extensions = blackfriday.CommonExtensions | blackfriday.HardLineBreak

var policy = bluemonday.UGCPolicy()

// htmlRenderer drops the hard break a trailing newline would leave at the end
// of a block, e.g. after every list item.
type htmlRenderer struct {
	*blackfriday.HTMLRenderer
}

func (r htmlRenderer) RenderNode(w io.Writer, node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
	if node.Type == blackfriday.Hardbreak && node.Next == nil {
		return blackfriday.GoToNext
	}
	return r.HTMLRenderer.RenderNode(w, node, entering)
}

// ToHTML renders text as markdown and strips anything that is not plain
// user-generated-content markup (scripts, styles, event handlers).
func ToHTML(text string) template.HTML {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	renderer := htmlRenderer{blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.UseXHTML,
	})}
	unsafe := blackfriday.Run([]byte(normalizeNewlines(text)),
		blackfriday.WithExtensions(extensions),
		blackfriday.WithRenderer(renderer),
	)
	return template.HTML(policy.SanitizeBytes(unsafe))
}

func normalizeNewlines(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}
