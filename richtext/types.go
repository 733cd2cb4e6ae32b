package richtext

// Pos points into the document by (block, col) in grapheme clusters.
type Pos struct {
	Block int
	Col   int
}

// Range is a half-open selection in document coordinates: [Start, End).
// Start <= End in document order.
type Range struct {
	Start Pos
	End   Pos
}

// InlineStyle is a bit set of character-level emphasis.
type InlineStyle uint8

const (
	Bold InlineStyle = 1 << iota
	Italic
	Underline
)

func (s InlineStyle) Has(o InlineStyle) bool { return o != 0 && s&o == o }

// Align is the horizontal alignment of a block.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// BlockKind identifies the structural role of a block.
type BlockKind uint8

const (
	Paragraph BlockKind = iota
	BulletItem
	NumberedItem
)

// ListKind selects the list structure toggled by ToggleList.
type ListKind uint8

const (
	BulletList ListKind = iota
	NumberedList
)

func (k ListKind) blockKind() BlockKind {
	if k == NumberedList {
		return NumberedItem
	}
	return BulletItem
}

// Run is a maximal span of text sharing one style and link target.
type Run struct {
	Text  string
	Style InlineStyle
	Link  string
}

// Block is a read-only snapshot of one block.
type Block struct {
	Kind  BlockKind
	Align Align
	Runs  []Run
}

// Text returns the plain text of the block.
func (b Block) Text() string {
	n := 0
	for _, r := range b.Runs {
		n += len(r.Text)
	}
	buf := make([]byte, 0, n)
	for _, r := range b.Runs {
		buf = append(buf, r.Text...)
	}
	return string(buf)
}

func ComparePos(a, b Pos) int {
	if a.Block < b.Block {
		return -1
	}
	if a.Block > b.Block {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by blockCount and blockLen.
//
// The returned Pos always satisfies:
// - 0 <= Block < blockCount (with blockCount treated as at least 1)
// - 0 <= Col <= blockLen(Block)
func ClampPos(p Pos, blockCount int, blockLen func(block int) int) Pos {
	if blockCount <= 0 {
		blockCount = 1
	}
	bi := clampInt(p.Block, 0, blockCount-1)

	maxCol := 0
	if blockLen != nil {
		maxCol = max(blockLen(bi), 0)
	}
	return Pos{Block: bi, Col: clampInt(p.Col, 0, maxCol)}
}

func ClampRange(r Range, blockCount int, blockLen func(block int) int) Range {
	return Range{
		Start: ClampPos(r.Start, blockCount, blockLen),
		End:   ClampPos(r.End, blockCount, blockLen),
	}
}
