// Package term draws the drifting leaves in a terminal using tcell.
//
// Each character cell stands in for a CellWidth×CellHeight block of pixels,
// so the drift engine runs in the same pixel space as the windowed overlay
// and keeps the same speeds. Hovering the mouse over a leaf pauses it.
//
//	screen, err := term.NewScreen()
//	if err != nil {
//		log.Fatal(err)
//	}
//	r := term.New(screen, term.Options{Count: 12})
//	if err := r.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
package term
