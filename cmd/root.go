package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/alanwang67/requestgen/config"
	"github.com/alanwang67/requestgen/dataset"
	"github.com/alanwang67/requestgen/report"
	"github.com/alanwang67/requestgen/workload"
)

var errGenerate = errors.New("dataset generation failed")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requestgen",
		Short: "Generate randomized memory request test data",
		Long: `Generate a CSV file of randomized read/write requests for the memory
simulator. Addresses, user ids and data are written in a random mix of
hexadecimal and decimal, and the boundary users 0 and 255 are over-represented.

Without arguments 100 rows are written to requests.csv.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := cmd.Flags()
	flags.String("config", "", "YAML config file")
	flags.StringP("file", "o", config.DefaultFile, "Output CSV file")
	flags.IntP("rows", "n", config.DefaultRows, "Number of requests to generate")
	flags.Uint64("address-max", workload.DefaultAddressMax, "Largest address to generate (inclusive)")
	flags.Float64("special-user-rate", workload.DefaultSpecialUserRate, "Probability of user 0 or 255")
	flags.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
	flags.String("plot", "", "Write a PNG histogram of user ids to this file")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")

	return cmd
}

// loadConfig applies, in order, the defaults, the config file and any flags
// set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if flags.Changed("file") {
		cfg.File, _ = flags.GetString("file")
	}
	if flags.Changed("rows") {
		cfg.Rows, _ = flags.GetInt("rows")
	}
	if flags.Changed("address-max") {
		cfg.AddressMax, _ = flags.GetUint64("address-max")
	}
	if flags.Changed("special-user-rate") {
		cfg.SpecialUserRate, _ = flags.GetFloat64("special-user-rate")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("plot") {
		cfg.Plot, _ = flags.GetString("plot")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	gen := workload.NewGenerator(workload.NewSource(cfg.Seed))
	gen.AddressMax = cfg.AddressMax
	gen.SpecialUserRate = cfg.SpecialUserRate

	collector := report.NewCollector()
	w := dataset.New(cfg.File, cfg.Rows, gen)
	w.Stdout = cmd.OutOrStdout()
	w.Observe = collector.Add

	if err := w.Run(); err != nil {
		log.Debugf("%v", err)
		return errGenerate
	}
	log.Infof("Dataset summary: %s", collector.Summary())

	if cfg.Plot != "" {
		if err := savePlot(cfg.Plot, collector.Users()); err != nil {
			return err
		}
		log.Infof("User histogram saved to %s", cfg.Plot)
	}
	return nil
}

func savePlot(path string, users []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create plot file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return report.PlotUsersAndStore(users, f)
}
