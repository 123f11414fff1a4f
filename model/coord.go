package model

import "fmt"

// Coordinate identifies a grid position; X is the column, Y is the row
type Coordinate struct {
	X, Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
