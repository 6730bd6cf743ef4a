package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"pacing-radar/internal/adapter/memory"
	"pacing-radar/internal/adapter/usecase"
	"pacing-radar/internal/core/domain"
	"pacing-radar/internal/core/pacing"
	"pacing-radar/internal/dataset"
)

var (
	flagAsOf           string
	flagFile           string
	flagCeiling        float64
	flagPriorYearRatio float64
	flagWorkers        int
	flagVerbose        bool
)

var rootCmd = &cobra.Command{
	Use:           "report",
	Short:         "Campaign pacing risk report",
	Long:          "Score every campaign of a dataset for delivery risk and print the result as JSON.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAsOf, "as-of", "", "Reference date YYYY-MM-DD (default today, UTC)")
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Campaign dataset YAML (default embedded sample)")
	rootCmd.PersistentFlags().Float64Var(&flagCeiling, "ceiling", pacing.DefaultFeasibleDailySpend, "Feasible daily spend ceiling")
	rootCmd.PersistentFlags().Float64Var(&flagPriorYearRatio, "prior-year-ratio", pacing.DefaultPriorYearRatio, "Prior-year baseline ratio")
	rootCmd.PersistentFlags().IntVarP(&flagWorkers, "workers", "w", 4, "Parallel evaluations")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log scoring runs to stderr")
}

// newUseCase loads the dataset selected by --file and wires the use case
// around it.
func newUseCase(cmd *cobra.Command) (*usecase.RiskUseCase, error) {
	var (
		campaigns []domain.Campaign
		err       error
	)
	if flagFile != "" {
		campaigns, err = dataset.LoadFile(flagFile)
	} else {
		campaigns, err = dataset.Sample()
	}
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	engine := pacing.NewEngine(pacing.Config{
		FeasibleDailySpend: flagCeiling,
		PriorYearRatio:     flagPriorYearRatio,
	})
	return usecase.NewRiskUseCase(memory.NewCampaignRepository(campaigns), engine, flagWorkers, logger), nil
}

func asOf() (time.Time, error) {
	if flagAsOf == "" {
		return pacing.Day(time.Now().UTC()), nil
	}
	t, err := time.Parse("2006-01-02", flagAsOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of %q: want YYYY-MM-DD", flagAsOf)
	}
	return t, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid campaign id %q", s)
	}
	return id, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
