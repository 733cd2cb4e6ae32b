package richtext

import (
	"html"

	"github.com/rohanthewiz/element"
)

// HTML serializes the surface into its mirror form. Consecutive list items of
// one kind share a <ul> or <ol>; empty blocks hold a <br> so they keep their
// height when rendered.
func (s *Surface) HTML() string {
	b := element.NewBuilder()
	blocks := s.Blocks()

	for i := 0; i < len(blocks); {
		blk := blocks[i]
		if blk.Kind == Paragraph {
			b.P(alignAttrs(blk.Align)...).R(within(func() { writeRuns(b, blk.Runs) }))
			i++
			continue
		}

		j := i
		for j < len(blocks) && blocks[j].Kind == blk.Kind {
			j++
		}
		list := b.Ul
		if blk.Kind == NumberedItem {
			list = b.Ol
		}
		list().R(
			element.ForEach(blocks[i:j], func(item Block) {
				b.Li(alignAttrs(item.Align)...).R(within(func() { writeRuns(b, item.Runs) }))
			}),
		)
		i = j
	}

	return b.String()
}

func alignAttrs(a Align) []string {
	if a == AlignLeft {
		return nil
	}
	return []string{"style", "text-align: " + a.String()}
}

func writeRuns(b *element.Builder, runs []Run) {
	if len(runs) == 0 {
		b.Br()
		return
	}
	for _, r := range runs {
		writeLayers(runLayers(b, r), html.EscapeString(r.Text), b)
	}
}

// runLayers lists the wrappers of a run from outermost to innermost:
// link, bold, italic, underline.
func runLayers(b *element.Builder, r Run) []func(inner func()) {
	var layers []func(inner func())
	if r.Link != "" {
		href := html.EscapeString(r.Link)
		layers = append(layers, func(inner func()) { b.A("href", href).R(within(inner)) })
	}
	if r.Style.Has(Bold) {
		layers = append(layers, func(inner func()) { b.Strong().R(within(inner)) })
	}
	if r.Style.Has(Italic) {
		layers = append(layers, func(inner func()) { b.Em().R(within(inner)) })
	}
	if r.Style.Has(Underline) {
		layers = append(layers, func(inner func()) { b.U().R(within(inner)) })
	}
	return layers
}

func writeLayers(layers []func(inner func()), text string, b *element.Builder) {
	if len(layers) == 0 {
		b.T(text)
		return
	}
	layers[0](func() { writeLayers(layers[1:], text, b) })
}

// within runs fn while the enclosing element is open. The builder writes the
// opening tag when the element is created, so children are emitted by
// evaluating R's arguments.
func within(fn func()) (x any) {
	fn()
	return
}
