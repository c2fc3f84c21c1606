package display

import "github.com/gdamore/tcell/v2"

// Emphasis selects how a panel's text is highlighted
type Emphasis uint8

const (
	EmphasisIdle   Emphasis = iota // waiting for input
	EmphasisActive                 // value is changing
	EmphasisHeld                   // value is frozen
)

// Theme holds the styles used for a frame
type Theme struct {
	Border LineType
	Frame  tcell.Style
	Title  tcell.Style
	Text   [3]tcell.Style // indexed by Emphasis
}

// DefaultTheme returns the standard palette
func DefaultTheme() Theme {
	base := tcell.StyleDefault
	return Theme{
		Border: LineSingle,
		Frame:  base,
		Title:  base.Bold(true),
		Text: [3]tcell.Style{
			EmphasisIdle:   base,
			EmphasisActive: base.Foreground(tcell.ColorGreen).Bold(true),
			EmphasisHeld:   base.Foreground(tcell.ColorYellow).Bold(true),
		},
	}
}

// TextStyle returns the text style for e, falling back to idle
func (t Theme) TextStyle(e Emphasis) tcell.Style {
	if int(e) >= len(t.Text) {
		return t.Text[EmphasisIdle]
	}
	return t.Text[e]
}
