// Package richtext implements the editable surface of the composer: a small
// structured rich-text model of blocks (paragraphs and list items) holding
// grapheme cells with inline styles and optional link targets.
//
// Coordinates are 0-based (Block, Col) where Col counts grapheme clusters.
// Ranges are half-open selections in document coordinates: [Start, End).
//
// The surface is the source of truth. Its HTML mirror (see Surface.HTML) is
// derived on demand and never parsed back.
package richtext
