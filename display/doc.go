// Package display draws the two-panel clock frame on a tcell screen.
//
// Region is a rectangular, clipped view of the screen. Box, Pane and SplitH
// compose regions into bordered titled panels; Surface owns the screen and
// redraws a whole Frame at a time.
//
// Usage pattern:
//
//	surface, err := display.NewSurface()
//	if err != nil {
//	    return err
//	}
//	defer surface.Close()
//
//	err = surface.Render(display.Frame{
//	    Left:  display.Panel{Title: "Stopwatch", Text: "0:0:0"},
//	    Right: display.Panel{Title: "UTC Time", Text: "2024/01/01 00:00:00"},
//	})
package display
