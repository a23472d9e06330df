package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/sparse"
	"github.com/katalvlaran/gdt/costfield"
	"github.com/katalvlaran/gdt/ndarray"
)

// Errors reported while turning a grid description into a cost grid.
var (
	ErrNoGrid       = errors.New("gdt: grid file needs either shape or mask")
	ErrBothGrids    = errors.New("gdt: grid file sets both shape and mask")
	ErrCellIndex    = errors.New("gdt: cell index out of range")
	ErrUnknownField = errors.New("gdt: unknown field in grid file")
)

// Cell overrides the cost of one grid cell.
type Cell struct {
	At    []int   `toml:"at"`
	Value float64 `toml:"value"`
}

// GridFile is the TOML description of a cost grid. Either Shape (with Fill and
// Cells) or Mask (with Threshold, Source and Background) must be given.
type GridFile struct {
	Shape   []int     `toml:"shape"`
	Fill    float64   `toml:"fill"`
	Cells   []Cell    `toml:"cell"`
	Weights []float64 `toml:"weights"`

	Mask       [][]int  `toml:"mask"`
	Threshold  *int     `toml:"threshold"`
	Source     *float64 `toml:"source"`
	Background *float64 `toml:"background"`
}

// LoadGridFile decodes the TOML grid description at path. Unknown keys are
// rejected so that typos do not silently produce a different grid.
func LoadGridFile(path string) (*GridFile, error) {
	var gf GridFile
	md, err := toml.DecodeFile(path, &gf)
	if err != nil {
		return nil, fmt.Errorf("gdt: reading grid file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("gdt: grid file %s: %v: %w", path, undecoded, ErrUnknownField)
	}

	return &gf, nil
}

// Grid builds the float32 cost grid described by gf.
func (gf *GridFile) Grid() (*ndarray.Dense[float32], error) {
	switch {
	case len(gf.Shape) > 0 && len(gf.Mask) > 0:
		return nil, ErrBothGrids
	case len(gf.Mask) > 0:
		return costfield.FromMask(gf.Mask, gf.maskOptions())
	case len(gf.Shape) > 0:
		return gf.denseGrid()
	default:
		return nil, ErrNoGrid
	}
}

func (gf *GridFile) maskOptions() costfield.Options {
	opts := costfield.DefaultOptions()
	if gf.Threshold != nil {
		opts.Threshold = *gf.Threshold
	}
	if gf.Source != nil {
		opts.Source = float32(*gf.Source)
	}
	if gf.Background != nil {
		opts.Background = float32(*gf.Background)
	}

	return opts
}

// denseGrid fills a sparse.DenseArray with Fill, applies the cell overrides
// and converts the result.
func (gf *GridFile) denseGrid() (*ndarray.Dense[float32], error) {
	for _, s := range gf.Shape {
		if s <= 0 {
			return nil, fmt.Errorf("gdt: shape %v: %w", gf.Shape, ndarray.ErrBadShape)
		}
	}
	arr := sparse.ZerosDense(gf.Shape...)
	for i := range arr.Elements {
		arr.Elements[i] = gf.Fill
	}
	for _, c := range gf.Cells {
		if err := arr.CheckIndex(c.At); err != nil {
			return nil, fmt.Errorf("gdt: cell %v: %w", c.At, ErrCellIndex)
		}
		// DenseArray.Set skips zero values, so write the element directly.
		arr.Elements[arr.Index1d(c.At...)] = c.Value
	}

	return ndarray.FromSparse(arr)
}
