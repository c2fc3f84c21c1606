package display

import "github.com/gdamore/tcell/v2"

// Region represents a rectangular area of a screen
// All coordinates are relative to the region's origin
type Region struct {
	Screen tcell.Screen
	X, Y   int // Absolute position on screen
	W, H   int // Region dimensions
}

// NewRegion creates a region covering the given screen area
func NewRegion(screen tcell.Screen, x, y, w, h int) Region {
	return Region{
		Screen: screen,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
	}
}

// ScreenRegion returns a region covering the whole screen
func ScreenRegion(screen tcell.Screen) Region {
	w, h := screen.Size()
	return NewRegion(screen, 0, 0, w, h)
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Screen: r.Screen,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.Screen.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Text draws s starting at (x, y), clipped at the region's right edge
// Returns number of cells written
func (r Region) Text(x, y int, s string, style tcell.Style) int {
	if y < 0 || y >= r.H {
		return 0
	}
	n := 0
	for _, ch := range s {
		if x+n >= r.W {
			break
		}
		r.Cell(x+n, y, ch, style)
		n++
	}
	return n
}

// Empty reports whether the region has no drawable cells
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
