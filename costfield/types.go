package costfield

import "github.com/katalvlaran/gdt/dt"

// Connectivity selects neighbor connectivity for Regions: orthogonal (Conn4)
// or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// NoRegion labels cells that belong to no region.
const NoRegion int32 = -1

// Options controls how masks and points become costs.
type Options struct {
	// Threshold is the minimum mask value considered a source.
	Threshold int
	// Source is the cost written at source cells.
	Source float32
	// Background is the cost written everywhere else.
	Background float32
	// Conn chooses 4- or 8-directional connectivity for Regions.
	Conn Connectivity
}

// DefaultOptions returns Threshold=1, Source=0, Background=dt.Infinity, Conn=Conn4.
func DefaultOptions() Options {
	return Options{
		Threshold:  1,
		Source:     0,
		Background: dt.Infinity,
		Conn:       Conn4,
	}
}

// offsets returns the (row, col) neighbor steps for c.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	}

	return [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
}
