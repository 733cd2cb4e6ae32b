package preview

import (
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rohanthewiz/serr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowStyles("text-align").Matching(bluemonday.CellAlign).OnElements("p", "li")
	return p
}

// Sanitize strips everything from mirror HTML that is not safe user content.
func Sanitize(mirror string) string {
	return policy.Sanitize(mirror)
}

type inlineStyle uint8

const (
	styleBold inlineStyle = 1 << iota
	styleItalic
	styleUnderline
	styleLink
)

type span struct {
	text  string
	style inlineStyle
}

type blockKind uint8

const (
	kindParagraph blockKind = iota
	kindBullet
	kindNumbered
)

type block struct {
	kind    blockKind
	ordinal int
	align   string
	spans   []span
}

// parseBlocks sanitizes mirror and flattens it into renderable blocks.
func parseBlocks(mirror string) ([]block, error) {
	doc, err := html.Parse(strings.NewReader(Sanitize(mirror)))
	if err != nil {
		return nil, serr.Wrap(err, "parse mirror html")
	}
	body := findBody(doc)
	if body == nil {
		return nil, nil
	}

	var (
		blocks []block
		loose  *block // inline content outside any block element
	)
	flush := func() {
		if loose != nil {
			blocks = append(blocks, *loose)
			loose = nil
		}
	}
	for n := body.FirstChild; n != nil; n = n.NextSibling {
		switch {
		case n.Type == html.ElementNode && n.DataAtom == atom.P:
			flush()
			blocks = append(blocks, block{kind: kindParagraph, align: alignOf(n), spans: collectSpans(n, 0)})
		case n.Type == html.ElementNode && (n.DataAtom == atom.Ul || n.DataAtom == atom.Ol):
			flush()
			blocks = append(blocks, listBlocks(n)...)
		default:
			spans := collectSpans(n, 0)
			if blankSpans(spans) {
				continue
			}
			if loose == nil {
				loose = &block{kind: kindParagraph}
			}
			loose.spans = append(loose.spans, spans...)
		}
	}
	flush()
	return blocks, nil
}

func blankSpans(spans []span) bool {
	for _, s := range spans {
		if strings.TrimSpace(s.text) != "" {
			return false
		}
	}
	return true
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

func listBlocks(list *html.Node) []block {
	kind := kindBullet
	ordinal := 0
	if list.DataAtom == atom.Ol {
		kind = kindNumbered
		if v, err := strconv.Atoi(attr(list, "start")); err == nil {
			ordinal = v - 1
		}
	}
	var out []block
	for li := list.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.DataAtom != atom.Li {
			continue
		}
		ordinal++
		out = append(out, block{kind: kind, ordinal: ordinal, align: alignOf(li), spans: collectSpans(li, 0)})
	}
	return out
}

func collectSpans(n *html.Node, style inlineStyle) []span {
	switch n.Type {
	case html.TextNode:
		if n.Data == "" {
			return nil
		}
		return []span{{text: n.Data, style: style}}
	case html.ElementNode:
	default:
		return nil
	}

	switch n.DataAtom {
	case atom.Strong, atom.B:
		style |= styleBold
	case atom.Em, atom.I:
		style |= styleItalic
	case atom.U:
		style |= styleUnderline
	case atom.A:
		style |= styleLink
	case atom.Br:
		return nil
	}
	var out []span
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, collectSpans(c, style)...)
	}
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// alignOf reads text-align from the inline style attribute.
func alignOf(n *html.Node) string {
	for _, decl := range strings.Split(attr(n, "style"), ";") {
		k, v, ok := strings.Cut(decl, ":")
		if ok && strings.TrimSpace(strings.ToLower(k)) == "text-align" {
			return strings.TrimSpace(strings.ToLower(v))
		}
	}
	return ""
}
