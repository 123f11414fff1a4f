package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// ANSI: move cursor home and clear the screen
	clearSequence = "\033[H\033[2J"
)

// CellReader is the read-only surface a renderer needs
type CellReader interface {
	Width() int
	Height() int
	CellAt(x, y int) (Cell, error)
}

// TerminalRenderer draws generations as block characters
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{Out: out}
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g CellReader) error {
	w := bufio.NewWriter(r.Out)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			cell, err := g.CellAt(x, y)
			if err != nil {
				return errors.Wrap(err, "[Display] failed to read cell")
			}
			if cell.IsAlive() {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "[Display] failed to flush frame")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, clearSequence)
	return errors.Wrap(err, "[Clear] failed to clear terminal")
}
