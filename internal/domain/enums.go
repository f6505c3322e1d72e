package domain

// MemoType distinguishes free-text memos from checklists.
type MemoType string

const (
	MemoTypeMemo      MemoType = "memo"
	MemoTypeChecklist MemoType = "checklist"
)

func (t MemoType) String() string { return string(t) }

func (t MemoType) IsValid() bool {
	switch t {
	case MemoTypeMemo, MemoTypeChecklist:
		return true
	}
	return false
}

// Color is a presentation hint for a memo card. It carries no behaviour and
// the store accepts any value; the constants are the palette the client offers.
type Color string

const (
	ColorNone   Color = ""
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
)

func (c Color) String() string { return string(c) }

// InPalette reports whether c is one of the colors the client knows how to draw.
func (c Color) InPalette() bool {
	switch c {
	case ColorNone, ColorRed, ColorYellow, ColorGreen, ColorBlue, ColorPurple:
		return true
	}
	return false
}
