package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gdt/dt"
	"github.com/katalvlaran/gdt/ndarray"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

func (a *app) runCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Transform a grid described in a TOML file",
		Long: `run loads a cost grid from a TOML file, computes its generalized distance
transform and prints the distances, the source cell of every minimum and a
summary. Weights given on the command line replace those in the grid file.`,
		Args: cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, _ []string) {
			a.bind(cmd.Flags(), keyGrid, keyWorkers, keyWeights, keySources)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.cfg.GetString(keyGrid)
			if path == "" {
				return fmt.Errorf("gdt: --%s is required", keyGrid)
			}
			gf, err := LoadGridFile(path)
			if err != nil {
				return err
			}
			grid, err := gf.Grid()
			if err != nil {
				return fmt.Errorf("gdt: grid file %s: %w", path, err)
			}
			weights, err := a.weights()
			if err != nil {
				return err
			}
			if len(weights) == 0 {
				weights = gf.Weights
			}
			if err := checkWeights(weights); err != nil {
				return fmt.Errorf("gdt: grid file %s: %w", path, err)
			}

			return a.transform(cmd.OutOrStdout(), grid, weights)
		},
	}
	fs := cmd.Flags()
	fs.String(keyGrid, "", "TOML grid description file")
	fs.Int(keyWorkers, dt.DefaultWorkers, "goroutines per axis pass; 0 uses every CPU")
	fs.StringSlice(keyWeights, nil, "per-axis weights, axis 0 first (e.g. 2,2)")
	fs.Bool(keySources, true, "print the source cell of every minimum")

	return cmd
}

func (a *app) demoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Transform a 4x4 grid with one cheap cell",
		Long: `demo transforms a 4x4 grid of cost 10 with a single cell of cost 1 at (2,2)
and prints the input, the distances, both location layers and the resolved
sources.`,
		Args: cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, _ []string) {
			a.bind(cmd.Flags(), keyWorkers, keyWeights, keySources)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			grid, err := ndarray.Full[float32](10, 4, 4)
			if err != nil {
				return err
			}
			if err := grid.Set(1, 2, 2); err != nil {
				return err
			}
			weights, err := a.weights()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "input:\n%s\n", grid)

			return a.transform(w, grid, weights)
		},
	}
	fs := cmd.Flags()
	fs.Int(keyWorkers, dt.DefaultWorkers, "goroutines per axis pass; 0 uses every CPU")
	fs.StringSlice(keyWeights, nil, "per-axis weights, axis 0 first (e.g. 2,2)")
	fs.Bool(keySources, true, "print the source cell of every minimum")

	return cmd
}

// transform runs the distance transform on grid and writes the report to w.
func (a *app) transform(w io.Writer, grid *ndarray.Dense[float32], weights []float64) error {
	a.log.WithFields(logrus.Fields{
		"shape":   grid.Shape(),
		"weights": weights,
		"workers": a.cfg.GetInt(keyWorkers),
	}).Info("gdt: transforming grid")

	out, loc, err := dt.DistanceTransform(grid,
		dt.WithWeights(weights...),
		dt.WithWorkers(a.cfg.GetInt(keyWorkers)),
	)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "distances:\n%s\n", out)

	if a.cfg.GetBool(keySources) {
		for axis := 0; axis < grid.Dims(); axis++ {
			layer, err := loc.Layer(axis)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "locations axis %d:\n%s\n", axis, layer)
		}
		if err := writeSources(w, out, loc); err != nil {
			return err
		}
	}
	writeSummary(w, out)

	return nil
}

// writeSources prints "idx <- source" for every cell in row-major order.
func writeSources(w io.Writer, out *ndarray.Dense[float32], loc *ndarray.Dense[int32]) error {
	fmt.Fprintln(w, "sources:")
	var err error
	out.Each(func(idx []int, _ float32) {
		if err != nil {
			return
		}
		var src []int
		src, err = dt.ResolveSource(loc, idx...)
		if err != nil {
			return
		}
		fmt.Fprintf(w, "%s <- %s\n", coords(idx), coords(src))
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(w)

	return nil
}

// writeSummary prints the cell count and the min, max and mean distance.
func writeSummary(w io.Writer, out *ndarray.Dense[float32]) {
	vals := make([]float64, 0, out.Len())
	for _, v := range out.Data() {
		vals = append(vals, float64(v))
	}
	fmt.Fprintf(w, "summary: cells=%d min=%g max=%g mean=%g\n",
		len(vals), floats.Min(vals), floats.Max(vals), floats.Sum(vals)/float64(len(vals)))
}

func coords(idx []int) string {
	parts := make([]string, len(idx))
	for i, c := range idx {
		parts[i] = fmt.Sprint(c)
	}

	return "(" + strings.Join(parts, ",") + ")"
}
