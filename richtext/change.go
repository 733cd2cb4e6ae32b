package richtext

// ChangeKind classifies a content mutation.
type ChangeKind uint8

const (
	ChangeEdit ChangeKind = iota
	ChangeFormat
	ChangeAppend
	ChangeReplace
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeFormat:
		return "format"
	case ChangeAppend:
		return "append"
	case ChangeReplace:
		return "replace"
	default:
		return "edit"
	}
}

// Change describes the most recent content mutation.
type Change struct {
	Kind          ChangeKind
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  Pos
	CursorAfter   Pos
}

// LastChange returns the most recent effective content change.
func (s *Surface) LastChange() (Change, bool) {
	return s.lastChange, s.hasLastChange
}

type changeBuilder struct {
	kind          ChangeKind
	versionBefore uint64
	cursorBefore  Pos
}

func (s *Surface) beginChange(kind ChangeKind) changeBuilder {
	return changeBuilder{kind: kind, versionBefore: s.version, cursorBefore: s.cursor}
}

func (s *Surface) commitChange(cb changeBuilder) {
	if s.version == cb.versionBefore {
		return
	}
	s.lastChange = Change{
		Kind:          cb.kind,
		VersionBefore: cb.versionBefore,
		VersionAfter:  s.version,
		CursorBefore:  cb.cursorBefore,
		CursorAfter:   s.cursor,
	}
	s.hasLastChange = true
}
