package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	eventmatch "github.com/jamesainslie/go-eventmatch"
	"github.com/jamesainslie/go-eventmatch/internal/eval"
	"github.com/jamesainslie/go-eventmatch/internal/report"
	"github.com/jamesainslie/go-eventmatch/internal/store"
)

// Injected at build time via ldflags.
var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func versionString() string {
	v := version
	if commit != "" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " built " + date
	}
	return v
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:     "evmatch",
		Short:   "Score event-level agreement between two label sequences",
		Long: "evmatch compares a sample-level annotation (e.g. a classifier's " +
			"output) against a ground-truth annotation at the event level, " +
			"matching events by intersection-over-union.",
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newScoreCmd(), newSweepCmd(), newRunsCmd())
	return root
}

func newScoreCmd() *cobra.Command {
	var (
		gtPath    string
		cmpPath   string
		threshold float64
		types     []int
		names     []string
		dbPath    string
		parallel  bool
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one annotation pair and print the agreement table",
		RunE: func(cmd *cobra.Command, args []string) error {
			gt, cmp, err := eval.LoadPair(gtPath, cmpPath)
			if err != nil {
				return err
			}

			opts := []eventmatch.Option{eventmatch.WithThreshold(threshold)}
			if len(types) > 0 {
				opts = append(opts, eventmatch.WithEventTypes(types))
			}
			if len(names) > 0 {
				opts = append(opts, eventmatch.WithLabelNames(names))
			}
			if parallel {
				opts = append(opts, eventmatch.WithParallelism(runtime.NumCPU()))
			}

			res, err := eventmatch.Score(gt.Labels, cmp.Labels, opts...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.Render(res))

			if dbPath != "" {
				s, err := store.Open(dbPath)
				if err != nil {
					return err
				}
				defer func() { _ = s.Close() }()

				id, err := s.SaveRun(gtPath, cmpPath, res)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved run %s\n", id)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&gtPath, "gt", "", "ground-truth annotation file (required)")
	cmd.Flags().StringVar(&cmpPath, "alg", "", "comparison annotation file (required)")
	cmd.Flags().Float64Var(&threshold, "threshold", 0.5, "IoU threshold for a hit")
	cmd.Flags().IntSliceVar(&types, "types", nil, "event types to score (default: all observed labels)")
	cmd.Flags().StringSliceVar(&names, "names", nil, "display names for the event types")
	cmd.Flags().StringVar(&dbPath, "db", "", "persist the run to this SQLite database")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "score event types concurrently")
	_ = cmd.MarkFlagRequired("gt")
	_ = cmd.MarkFlagRequired("alg")

	return cmd
}

func newSweepCmd() *cobra.Command {
	var (
		gtPath  string
		cmpPath string
		min     float64
		max     float64
		step    float64
		types   []int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Score one annotation pair across a range of IoU thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			gt, cmp, err := eval.LoadPair(gtPath, cmpPath)
			if err != nil {
				return err
			}

			var opts []eventmatch.Option
			if len(types) > 0 {
				opts = append(opts, eventmatch.WithEventTypes(types))
			}

			thresholds := eval.SweepThresholds(min, max, step)
			results, err := eval.Sweep(gt.Labels, cmp.Labels, thresholds, opts...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.RenderSweep(results))
			if len(results) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "best threshold: %.3f (overall F1 %.3f)\n",
					results[0].Threshold, results[0].Result.Overall.F1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&gtPath, "gt", "", "ground-truth annotation file (required)")
	cmd.Flags().StringVar(&cmpPath, "alg", "", "comparison annotation file (required)")
	cmd.Flags().Float64Var(&min, "min", 0.1, "sweep minimum threshold")
	cmd.Flags().Float64Var(&max, "max", 0.9, "sweep maximum threshold")
	cmd.Flags().Float64Var(&step, "step", 0.1, "sweep step size")
	cmd.Flags().IntSliceVar(&types, "types", nil, "event types to score (default: all observed labels)")
	_ = cmd.MarkFlagRequired("gt")
	_ = cmd.MarkFlagRequired("alg")

	return cmd
}

func newRunsCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List scoring runs persisted with score --db",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			runs, err := s.ListRuns()
			if err != nil {
				return err
			}

			for _, run := range runs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  gt=%s alg=%s threshold=%.2f samples=%d\n",
					run.ID, run.CreatedAt.Format("2006-01-02 15:04:05"),
					run.GroundTruth, run.Comparison, run.Threshold, run.Samples)
				for _, m := range run.Metrics {
					fmt.Fprintf(cmd.OutOrStdout(), "    %-12s hits=%d misses=%d fa1=%d fa2=%d f1=%.3f\n",
						m.Key, m.Hits, m.Misses, m.FalseAlarms1, m.FalseAlarms2, m.F1)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database to read (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}
