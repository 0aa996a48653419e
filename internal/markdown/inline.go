package markdown

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// allowedInline maps permitted elements to their permitted attributes.
var allowedInline = map[string][]string{
	"a":      {"href", "title", "target", "rel"},
	"strong": nil,
	"em":     nil,
	"b":      nil,
	"i":      nil,
	"code":   nil,
	"del":    nil,
	"span":   {"class"},
	"br":     nil,
}

// droppedElements are removed together with their content.
var droppedElements = map[string]bool{
	"script": true, "style": true, "iframe": true, "object": true, "template": true,
}

var inlineRenderer = goldmark.New(goldmark.WithRendererOptions(gmhtml.WithUnsafe()))

// RenderInline renders a short markdown snippet to inline HTML.
//
// Paragraph wrappers are removed (consecutive paragraphs are joined with
// <br>) and any element outside a small inline allow-list is unwrapped, so the
// result is safe to place inside a footer or a tooltip.
func RenderInline(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := inlineRenderer.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	nodes, err := html.ParseFragment(&buf, &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div})
	if err != nil {
		return "", fmt.Errorf("parse rendered markdown: %w", err)
	}

	var out strings.Builder
	paragraphs := 0
	for _, n := range nodes {
		if n.Type == html.TextNode && strings.TrimSpace(n.Data) == "" {
			continue
		}
		if n.Type == html.ElementNode && n.Data == "p" {
			if paragraphs > 0 {
				out.WriteString("<br>")
			}
			paragraphs++
			writeChildren(&out, n)
			continue
		}
		writeInline(&out, n)
	}
	return strings.TrimSpace(out.String()), nil
}

func writeChildren(out *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeInline(out, c)
	}
}

func writeInline(out *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		out.WriteString(html.EscapeString(n.Data))
	case html.ElementNode:
		if droppedElements[n.Data] {
			return
		}
		attrs, ok := allowedInline[n.Data]
		if !ok {
			writeChildren(out, n)
			return
		}
		out.WriteString("<" + n.Data)
		for _, a := range n.Attr {
			if !slices.Contains(attrs, a.Key) || !safeAttr(a) {
				continue
			}
			out.WriteString(" " + a.Key + `="` + html.EscapeString(a.Val) + `"`)
		}
		out.WriteString(">")
		if n.Data == "br" {
			return
		}
		writeChildren(out, n)
		out.WriteString("</" + n.Data + ">")
	default:
		// comments and doctype nodes carry nothing worth keeping
	}
}

func safeAttr(a html.Attribute) bool {
	if a.Key != "href" {
		return true
	}
	v := strings.ToLower(strings.TrimSpace(a.Val))
	return !strings.HasPrefix(v, "javascript:") && !strings.HasPrefix(v, "data:")
}
