// Command gdt computes generalized distance transforms of cost grids.
package main

import (
	"os"

	"github.com/katalvlaran/gdt/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
