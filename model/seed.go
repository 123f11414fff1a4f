package model

import "math/rand"

// DefaultSeed marks index i alive when i%2 == 0 or i%7 == 0
func DefaultSeed(index int) Cell {
	return cellOf(index%2 == 0 || index%7 == 0)
}

// RandomSeed fills cells alive with the given probability.
// The returned func is not safe for concurrent use since it shares src.
func RandomSeed(density float64, src rand.Source) SeedFunc {
	rng := rand.New(src)
	return func(int) Cell {
		return cellOf(rng.Float64() < density)
	}
}

// PatternSeed marks only the listed coordinates alive on a grid of the given width.
// Coordinates outside the row are ignored.
func PatternSeed(width int, alive ...Coordinate) SeedFunc {
	set := make(map[int]struct{}, len(alive))
	for _, c := range alive {
		if c.X < 0 || c.X >= width || c.Y < 0 {
			continue
		}
		set[c.X+width*c.Y] = struct{}{}
	}
	return func(index int) Cell {
		_, ok := set[index]
		return cellOf(ok)
	}
}

// OverlaySeed marks a cell alive when any of seeds does. Every seed sees every
// index so stateful seeds such as RandomSeed draw the same stream in any order.
func OverlaySeed(seeds ...SeedFunc) SeedFunc {
	return func(index int) Cell {
		cell := Dead
		for _, seed := range seeds {
			if seed != nil && seed(index) == Alive {
				cell = Alive
			}
		}
		return cell
	}
}

// Glider returns the cells of a glider whose bounding box starts at (startX, startY)
func Glider(startX, startY int) []Coordinate {
	return []Coordinate{
		{startX + 1, startY},
		{startX + 2, startY + 1},
		{startX, startY + 2},
		{startX + 1, startY + 2},
		{startX + 2, startY + 2},
	}
}

// Blinker returns the cells of a horizontal blinker starting at (startX, startY)
func Blinker(startX, startY int) []Coordinate {
	return []Coordinate{
		{startX, startY},
		{startX + 1, startY},
		{startX + 2, startY},
	}
}

// Block returns the cells of a 2x2 block starting at (startX, startY)
func Block(startX, startY int) []Coordinate {
	return []Coordinate{
		{startX, startY},
		{startX + 1, startY},
		{startX, startY + 1},
		{startX + 1, startY + 1},
	}
}

// InterestingPatterns places gliders and blinkers sized to the grid, as the terminal demo does
func InterestingPatterns(width, height int) []Coordinate {
	var cells []Coordinate
	if width < 10 || height < 10 {
		return cells
	}
	cells = append(cells, Glider(5, 5)...)
	if width >= 20 && height >= 15 {
		cells = append(cells, Glider(width-8, 5)...)
	}
	cells = append(cells, Blinker(width/4, height/4)...)
	if width >= 30 {
		cells = append(cells, Blinker(3*width/4, 3*height/4)...)
	}
	return cells
}
