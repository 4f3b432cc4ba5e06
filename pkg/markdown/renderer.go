package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Renderer turns a post body into HTML. Links, images, code and headings go
// through the site's own node renderers; everything else uses goldmark's
// defaults.
type Renderer struct {
	engine goldmark.Markdown
}

func NewRenderer() *Renderer {
	engine := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(util.Prioritized(nodeRenderer{}, 100)),
		),
	)

	return &Renderer{engine: engine}
}

func (r *Renderer) Render(source string) (string, error) {
	var buf bytes.Buffer

	if err := r.engine.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("error rendering markdown: %w", err)
	}

	return buf.String(), nil
}

// IsExternalLink reports whether href leaves the site. Root relative paths
// and fragments stay internal.
func IsExternalLink(href string) bool {
	href = strings.TrimSpace(href)

	return !strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "#")
}

type nodeRenderer struct{}

func (n nodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindLink, n.renderLink)
	reg.Register(ast.KindImage, n.renderImage)
	reg.Register(ast.KindCodeSpan, n.renderCodeSpan)
	reg.Register(ast.KindFencedCodeBlock, n.renderFencedCodeBlock)
	reg.Register(ast.KindHeading, n.renderHeading)
}

func (n nodeRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</a>")

		return ast.WalkContinue, nil
	}

	link := node.(*ast.Link)

	_, _ = w.WriteString(`<a href="`)
	writeURL(w, link.Destination)
	_ = w.WriteByte('"')
	writeTitle(w, link.Title)

	if IsExternalLink(string(link.Destination)) {
		_, _ = w.WriteString(` target="_blank" rel="noopener noreferrer"`)
	}

	_, _ = w.WriteString(` class="link">`)

	return ast.WalkContinue, nil
}

func (n nodeRenderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	image := node.(*ast.Image)
	alt := plainText(image, source)

	_, _ = w.WriteString(`<img src="`)
	writeURL(w, image.Destination)
	_, _ = w.WriteString(`" alt="`)
	_, _ = w.Write(util.EscapeHTML(alt))
	_ = w.WriteByte('"')
	writeTitle(w, image.Title)
	_, _ = w.WriteString(` loading="lazy" class="image">`)

	if len(alt) > 0 {
		_, _ = w.WriteString(`<span class="image-caption">`)
		_, _ = w.Write(util.EscapeHTML(alt))
		_, _ = w.WriteString(`</span>`)
	}

	return ast.WalkSkipChildren, nil
}

func (n nodeRenderer) renderCodeSpan(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</code>")

		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString(`<code class="inline-code">`)
	_, _ = w.Write(util.EscapeHTML(plainText(node, source)))

	return ast.WalkSkipChildren, nil
}

func (n nodeRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	block := node.(*ast.FencedCodeBlock)

	_, _ = w.WriteString(`<pre class="code-block"><code`)

	if language := block.Language(source); len(language) > 0 {
		_, _ = w.WriteString(` class="language-`)
		_, _ = w.Write(util.EscapeHTML(language))
		_ = w.WriteByte('"')
	}

	_ = w.WriteByte('>')

	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		_, _ = w.Write(util.EscapeHTML(line.Value(source)))
	}

	_, _ = w.WriteString("</code></pre>\n")

	return ast.WalkSkipChildren, nil
}

func (n nodeRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	heading := node.(*ast.Heading)

	if !entering {
		_, _ = fmt.Fprintf(w, "</h%d>\n", heading.Level)

		return ast.WalkContinue, nil
	}

	_, _ = fmt.Fprintf(w, "<h%d", heading.Level)

	if id, ok := heading.AttributeString("id"); ok {
		if value, ok := id.([]byte); ok {
			_, _ = w.WriteString(` id="`)
			_, _ = w.Write(util.EscapeHTML(value))
			_ = w.WriteByte('"')
		}
	}

	_, _ = fmt.Fprintf(w, ` class="heading-%d">`, heading.Level)

	return ast.WalkContinue, nil
}

func writeURL(w util.BufWriter, destination []byte) {
	if html.IsDangerousURL(destination) {
		return
	}

	_, _ = w.Write(util.EscapeHTML(util.URLEscape(destination, true)))
}

func writeTitle(w util.BufWriter, title []byte) {
	if len(title) == 0 {
		return
	}

	_, _ = w.WriteString(` title="`)
	_, _ = w.Write(util.EscapeHTML(title))
	_ = w.WriteByte('"')
}

func plainText(node ast.Node, source []byte) []byte {
	var buf bytes.Buffer

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch current := child.(type) {
		case *ast.Text:
			buf.Write(current.Segment.Value(source))

			if current.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(current.Value)
		default:
			buf.Write(plainText(child, source))
		}
	}

	return buf.Bytes()
}
