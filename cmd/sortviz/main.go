package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/run"
	"github.com/san-kum/sortviz/internal/seq"
	"github.com/san-kum/sortviz/internal/step"
	"github.com/san-kum/sortviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	logLevel   string
	algorithm  string
	size       int
	speed      int
	seed       int64
	theme      string
	frameRate  int
	instant    bool
	// headless output
	animate  bool
	trace    bool
	plot     bool
	jsonOut  bool
	showData bool
)

// main registers the sortviz commands, launching the interactive view when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "sortviz",
		Short:        "step-by-step sorting algorithm visualizer",
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	addSortFlags(rootCmd)
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "maximum frames per second")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "sort a random array headlessly and report metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	addSortFlags(runCmd)
	runCmd.Flags().BoolVar(&animate, "animate", false, "pace steps at --speed instead of running instantly")
	runCmd.Flags().BoolVar(&trace, "trace", false, "print every step")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot cumulative operations per step")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "print the final snapshot as JSON")
	runCmd.Flags().BoolVar(&showData, "show", false, "print the input and output arrays")

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm] ...",
		Short: "run algorithms on the same array and compare their work",
		RunE:  compareAlgorithms,
	}
	addCompareFlags(compareCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms and their complexity",
		RunE:  listAlgorithms,
	}

	describeCmd := &cobra.Command{
		Use:   "describe [algorithm]",
		Short: "describe an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE:  describeAlgorithm,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tALGORITHM\tSIZE\tSPEED")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", name, p.Algorithm, p.Size, config.SpeedLabel(p.Speed))
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "sortviz.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, compareCmd, listCmd, describeCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSortFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", config.DefaultAlgorithm, "algorithm id")
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "array size")
	cmd.Flags().IntVar(&speed, "speed", config.DefaultSpeed, fmt.Sprintf("speed %d-%d", config.MinSpeed, config.MaxSpeed))
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().BoolVar(&instant, "instant", false, "no delay between steps")
}

func addCompareFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "array size")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("instant") {
		cfg.Instant = instant
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func pickSeed(s int64) int64 {
	if s != 0 {
		return s
	}
	return time.Now().UnixNano()
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if err := logging.InitFile(cfg.Log.Dir, cfg.Log.Level); err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer logging.Close()

	logging.Info("starting interactive view", "algorithm", cfg.Algorithm, "size", cfg.Size, "theme", cfg.Theme)
	return viz.Run(cfg)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}
	if err := logging.Init(os.Stderr, cfg.Log.Level); err != nil {
		return err
	}
	defer logging.Close()

	registry := algo.NewRegistry()
	desc, err := registry.Describe(cfg.Algorithm)
	if err != nil {
		return err
	}

	history := metrics.NewHistory(4096)
	sink := step.SinkFunc(func(f step.Frame) {
		history.Observe(f)
		if trace {
			printFrame(f)
		}
	})

	delay := time.Duration(0)
	if animate {
		delay = cfg.Delay()
	}
	s := pickSeed(cfg.Seed)
	ctrl := run.New(
		run.WithRegistry(registry),
		run.WithSink(sink),
		run.WithDelay(delay),
		run.WithRand(rand.New(rand.NewSource(s))),
	)
	input := ctrl.Generate(cfg.Size)
	logging.WithPrefix("run").Debug("generated input", "size", len(input), "seed", s, "animate", animate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	snap, err := ctrl.Run(ctx, desc.ID)
	elapsed := time.Since(start)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	fmt.Printf("%s (n=%d, seed=%d)\n", desc.Name, len(input), s)
	if showData {
		fmt.Printf("input:  %v\n", []int(input))
		fmt.Printf("output: %v\n", []int(snap.Values))
	}
	fmt.Printf("status: %s\n", snap.Status)
	fmt.Printf("comparisons: %d\n", snap.Counters.Comparisons)
	fmt.Printf("swaps: %d\n", snap.Counters.Swaps)
	fmt.Printf("steps: %d\n", snap.Steps)
	fmt.Printf("completed in %v\n", elapsed.Round(time.Microsecond))
	if snap.Report != nil {
		fmt.Println("\nmetrics:")
		fmt.Printf("  actual: %s\n", snap.Report)
		fmt.Printf("  scale: %s\n", snap.Report.Scale)
		fmt.Printf("  efficiency: %s\n", snap.Report.Efficiency)
	}

	if plot {
		if vals := history.Values(); len(vals) > 1 {
			fmt.Println()
			fmt.Println(asciigraph.Plot(vals,
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption("cumulative operations per step"),
			))
		}
	}
	return nil
}

func printFrame(f step.Frame) {
	fmt.Printf("%5d  %-11s  c=%-5d s=%-5d  %s\n", f.Step, f.Kind, f.Counters.Comparisons, f.Counters.Swaps, f.Operation)
}

// compareInput generates the array every compared algorithm sorts.
func compareInput(cfg *config.Config) (seq.Sequence, int64) {
	s := pickSeed(cfg.Seed)
	return seq.Generate(cfg.Size, rand.New(rand.NewSource(s))), s
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	level := "warn"
	if cmd.Flags().Changed("log-level") {
		level = cfg.Log.Level
	}
	if err := logging.Init(os.Stderr, level); err != nil {
		return err
	}
	defer logging.Close()

	lg := logging.WithPrefix("compare")
	registry := algo.NewRegistry()
	ids := args
	if len(ids) == 0 {
		ids = registry.IDs()
	}

	input, s := compareInput(cfg)

	fmt.Printf("comparing on n=%d (seed=%d)\n\n", len(input), s)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tCOMPARISONS\tSWAPS\tTOTAL\tACTUAL\tEFFICIENCY\tTIME")

	for _, id := range ids {
		ctrl := run.New(run.WithRegistry(registry), run.WithDelay(0))
		ctrl.Load(input)

		start := time.Now()
		snap, err := ctrl.Run(context.Background(), id)
		elapsed := time.Since(start)
		if err != nil {
			lg.Warn("algorithm failed", "algorithm", id, "err", err)
			fmt.Fprintf(w, "%s\terror: %v\n", id, err)
			continue
		}

		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%s\t%v\n",
			snap.Algorithm.Name,
			snap.Counters.Comparisons,
			snap.Counters.Swaps,
			snap.Counters.Total(),
			snap.Report.Label,
			snap.Report.Efficiency,
			elapsed.Round(time.Microsecond),
		)
	}
	return w.Flush()
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBEST\tAVERAGE\tWORST\tSPACE")
	for _, d := range algo.NewRegistry().Descriptors() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Best.Time, d.Average.Time, d.Worst.Time, d.Worst.Space)
	}
	return w.Flush()
}

func describeAlgorithm(cmd *cobra.Command, args []string) error {
	d, err := algo.NewRegistry().Describe(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n\n", d.Name, d.ID)
	fmt.Println(d.Description)
	fmt.Println()
	fmt.Printf("  best:    %-12s space %s\n", d.Best.Time, d.Best.Space)
	fmt.Printf("  average: %-12s space %s\n", d.Average.Time, d.Average.Space)
	fmt.Printf("  worst:   %-12s space %s\n", d.Worst.Time, d.Worst.Space)
	return nil
}
