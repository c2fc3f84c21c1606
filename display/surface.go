package display

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/splitclock/constants"
)

// ErrClosed is returned when rendering after Close
var ErrClosed = errors.New("display surface closed")

// Panel is one labeled text block
type Panel struct {
	Title    string
	Text     string
	Emphasis Emphasis
}

// Frame is the full content of one redraw: two panels side by side
type Frame struct {
	Left  Panel
	Right Panel
}

// Surface owns a tcell screen for the lifetime of the render loop
type Surface struct {
	screen tcell.Screen
	theme  Theme
	closed bool
}

// NewSurface acquires the controlling terminal
func NewSurface() (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("display init: %w", err)
	}
	return NewSurfaceWithScreen(screen)
}

// NewSurfaceWithScreen initializes and wraps an existing screen
func NewSurfaceWithScreen(screen tcell.Screen) (*Surface, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("display init: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	return &Surface{
		screen: screen,
		theme:  DefaultTheme(),
	}, nil
}

// Screen returns the underlying screen, shared with the input source
func (s *Surface) Screen() tcell.Screen {
	return s.screen
}

// Render clears the screen and draws frame in two equal horizontal halves
func (s *Surface) Render(frame Frame) error {
	if s.closed {
		return ErrClosed
	}

	s.screen.Clear()

	root := ScreenRegion(s.screen)
	halves := SplitH(root, constants.PanelSplit, 1-constants.PanelSplit)
	s.drawPanel(halves[0], frame.Left)
	s.drawPanel(halves[1], frame.Right)

	s.screen.Show()
	return nil
}

// drawPanel draws a bordered titled panel with its text in the top-left of the content area
func (s *Surface) drawPanel(r Region, p Panel) {
	content := r.Pane(PaneOpts{
		Title:       p.Title,
		Border:      s.theme.Border,
		BorderStyle: s.theme.Frame,
		TitleStyle:  s.theme.Title,
	})
	if content.Empty() {
		return
	}
	content.Text(0, 0, p.Text, s.theme.TextStyle(p.Emphasis))
}

// Resync redraws the physical terminal from scratch, used after resize
func (s *Surface) Resync() {
	if s.closed {
		return
	}
	s.screen.Sync()
}

// Close restores the terminal, safe to call more than once
func (s *Surface) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.screen.Fini()
}
