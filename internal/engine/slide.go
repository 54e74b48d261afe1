package engine

import "fmt"

// Direction represents a swipe direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid swipe direction.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a lowercase name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four swipe directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection maps a name ("up", "down", "left", "right") to a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidArgument, s)
}

// lineCell maps position k along line i to a grid cell. Position 0 is the
// wall the tiles move towards.
type lineCell func(i, k int) (row, col int)

func lineMapper(dir Direction, n int) lineCell {
	switch dir {
	case DirLeft:
		return func(i, k int) (int, int) { return i, k }
	case DirRight:
		return func(i, k int) (int, int) { return i, n - 1 - k }
	case DirUp:
		return func(i, k int) (int, int) { return k, i }
	case DirDown:
		return func(i, k int) (int, int) { return n - 1 - k, i }
	default:
		return nil
	}
}

// slideLine compacts and merges one line in place towards position 0.
// Each tile slides through the empty run in front of it, then merges into
// its neighbor if the values match and the neighbor has not already
// absorbed a tile this pass. Returns the merge score and whether anything moved.
func slideLine(g Grid, at func(k int) *int) (score int, changed bool) {
	n := len(g)
	merged := make([]bool, n)

	for k := 1; k < n; k++ {
		val := *at(k)
		if val == 0 {
			continue
		}

		t := k
		for t > 0 && *at(t - 1) == 0 {
			*at(t - 1) = val
			*at(t) = 0
			t--
			changed = true
		}

		if t > 0 && *at(t - 1) == val && !merged[t-1] {
			*at(t - 1) = val * 2
			*at(t) = 0
			merged[t-1] = true
			score += val * 2
			changed = true
		}
	}

	return score, changed
}

// Slide applies one swipe to a copy of the grid without spawning.
// Returns the new grid, the merge score (the sum of every tile produced by a
// merge), and whether the board changed. Merging never changes the tile sum.
// An invalid direction returns the grid unchanged.
func Slide(g Grid, dir Direction) (Grid, int, bool) {
	out := g.Clone()
	mapCell := lineMapper(dir, len(out))
	if mapCell == nil {
		return out, 0, false
	}

	totalScore := 0
	changed := false
	for i := range len(out) {
		at := func(k int) *int {
			r, c := mapCell(i, k)
			return &out[r][c]
		}
		score, lineChanged := slideLine(out, at)
		totalScore += score
		if lineChanged {
			changed = true
		}
	}

	return out, totalScore, changed
}
