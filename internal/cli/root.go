// Package cli implements the gdt command: cobra commands configured through
// viper (flags, GDT_* environment variables and an optional config file) with
// logrus logging.
package cli

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/gdt/dt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version is the gdt release, overridden at link time with -ldflags "-X".
var Version = "0.1.0"

// Configuration keys shared by flags, environment and config file.
const (
	keyConfig   = "config"
	keyLogLevel = "log-level"
	keyGrid     = "grid"
	keyWorkers  = "workers"
	keyWeights  = "weights"
	keySources  = "sources"
)

// app carries the per-invocation configuration and logger.
type app struct {
	cfg *viper.Viper
	log *logrus.Logger
}

// NewRootCommand builds a fresh gdt command tree with its own configuration,
// so tests can run commands side by side.
func NewRootCommand() *cobra.Command {
	a := &app{cfg: viper.New(), log: logrus.New()}
	a.cfg.SetEnvPrefix("GDT")
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.cfg.AutomaticEnv()

	root := &cobra.Command{
		Use:   "gdt",
		Short: "Generalized distance transforms of N-dimensional cost grids.",
		Long: `gdt computes, for every cell of a cost grid, the minimum over all cells of
cost plus weighted squared distance, and reports which cell attained it.

Configuration can be given as command-line flags, as environment variables
named GDT_<FLAG> (for example GDT_WORKERS=4), or in a file passed with
--config. Flags take precedence over the environment, which takes precedence
over the file.`,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup(cmd) },
	}
	root.PersistentFlags().String(keyConfig, "", "configuration file location")
	root.PersistentFlags().String(keyLogLevel, "info", "log level: debug, info, warn or error")
	a.bind(root.PersistentFlags(), keyConfig, keyLogLevel)

	root.AddCommand(a.runCommand(), a.demoCommand(), versionCommand())

	return root
}

// bind registers the named flags with viper. Subcommands share keys such as
// workers, so each binds its own flags in PreRun, once it is the one running.
func (a *app) bind(fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		_ = a.cfg.BindPFlag(name, fs.Lookup(name))
	}
}

// setup reads the optional config file and configures logging for both the
// command and the dt package.
func (a *app) setup(cmd *cobra.Command) error {
	if path := a.cfg.GetString(keyConfig); path != "" {
		a.cfg.SetConfigFile(path)
		if err := a.cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("gdt: problem reading configuration file: %w", err)
		}
	}
	level, err := logrus.ParseLevel(a.cfg.GetString(keyLogLevel))
	if err != nil {
		return fmt.Errorf("gdt: %w", err)
	}
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetLevel(level)
	dt.SetLogger(slog.New(newLogrusHandler(a.log)))

	return nil
}

// weights reads the weights setting. Values may be given as a list or as one
// comma- or space-separated string, as environment variables are.
func (a *app) weights() ([]float64, error) {
	var w []float64
	for _, item := range a.cfg.GetStringSlice(keyWeights) {
		for _, f := range strings.FieldsFunc(item, func(r rune) bool { return r == ',' || r == ' ' }) {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("gdt: weight %q: %w", f, err)
			}
			w = append(w, v)
		}
	}
	if err := checkWeights(w); err != nil {
		return nil, err
	}

	return w, nil
}

// checkWeights rejects the non-finite weights that dt.WithWeights panics on.
func checkWeights(w []float64) error {
	for _, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("gdt: weight %v is not finite", v)
		}
	}

	return nil
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gdt v%s\n", Version)
		},
	}
}
