package display

import "github.com/gdamore/tcell/v2"

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Box draws border around region edge
func (r Region) Box(line LineType, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}

	chars := boxChars[line]

	r.Cell(0, 0, chars[boxTL], style)
	r.Cell(r.W-1, 0, chars[boxTR], style)
	r.Cell(0, r.H-1, chars[boxBL], style)
	r.Cell(r.W-1, r.H-1, chars[boxBR], style)

	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, chars[boxH], style)
		r.Cell(x, r.H-1, chars[boxH], style)
	}

	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, chars[boxV], style)
		r.Cell(r.W-1, y, chars[boxV], style)
	}
}

// PaneOpts configures pane rendering
type PaneOpts struct {
	Title       string
	Border      LineType
	BorderStyle tcell.Style
	TitleStyle  tcell.Style
}

// Pane draws a bordered pane with its title on the top edge, returns the content region inside the border
func (r Region) Pane(opts PaneOpts) Region {
	if r.W < 2 || r.H < 2 {
		return r.Sub(0, 0, 0, 0)
	}

	r.Box(opts.Border, opts.BorderStyle)

	if opts.Title != "" && r.W > 2 {
		title := Truncate(opts.Title, r.W-2)
		r.Text(1, 0, title, opts.TitleStyle)
	}

	return r.Inset(1)
}
