package main

import (
	"fmt"
	"io"
)

// consoleWinDisplay prints the win message once.
type consoleWinDisplay struct {
	out   io.Writer
	shown bool
}

func (d *consoleWinDisplay) ShowWin() {
	if d == nil || d.shown {
		return
	}
	d.shown = true
	fmt.Fprintln(d.out, "*** YOU WIN! ***")
}
