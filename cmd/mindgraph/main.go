package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/mindgraph/internal/config"
	"github.com/san-kum/mindgraph/internal/declutter"
	"github.com/san-kum/mindgraph/internal/engine"
	"github.com/san-kum/mindgraph/internal/export"
	"github.com/san-kum/mindgraph/internal/graph"
	"github.com/san-kum/mindgraph/internal/metrics"
	"github.com/san-kum/mindgraph/internal/tui"
	"github.com/san-kum/mindgraph/internal/viz"
)

var (
	configFile string
	preset     string
	themeName  string
	seed       int64
	ticks      int
	svgPath    string
	jsonPath   string
	showStats  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mindgraph",
		Short: "interactive knowledge graph viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, nil)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	viewCmd := &cobra.Command{
		Use:   "view [snapshot.json]",
		Short: "explore a graph interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runView,
	}
	viewCmd.Flags().StringVar(&themeName, "theme", "", "color theme")
	viewCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")

	layoutCmd := &cobra.Command{
		Use:   "layout [snapshot.json]",
		Short: "compute a settled layout and export it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLayout,
	}
	layoutCmd.Flags().IntVar(&ticks, "ticks", 0, "warm start ticks (0 = config default)")
	layoutCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	layoutCmd.Flags().StringVar(&svgPath, "svg", "", "write layout as SVG")
	layoutCmd.Flags().StringVar(&jsonPath, "json", "", "write layout as JSON")
	layoutCmd.Flags().BoolVar(&showStats, "stats", false, "plot kinetic energy decay")

	declutterCmd := &cobra.Command{
		Use:   "declutter [snapshot.json]",
		Short: "print decluttered grid targets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDeclutter,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				cfg := config.GetPreset(name)
				fmt.Printf("%-10s repel=%g link=%g damping=%g\n",
					name, cfg.Forces.Repel, cfg.Forces.Link, cfg.Forces.Damping)
			}
			return nil
		},
	}

	rootCmd.AddCommand(viewCmd, layoutCmd, declutterCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return cfg, nil
}

func loadSnapshot(args []string) (*graph.Snapshot, error) {
	if len(args) == 0 {
		return graph.Sample(), nil
	}
	return graph.Load(args[0])
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(args)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	if seed != 0 {
		opts.Seed = seed
	}

	eng := engine.New(snap, opts)
	eng.WarmStart()

	name := cfg.Theme
	if themeName != "" {
		name = themeName
	}
	return tui.Run(eng, cfg.Viewport.Width, cfg.Viewport.Height, viz.GetTheme(name))
}

func runLayout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(args)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	if seed != 0 {
		opts.Seed = seed
	}
	if ticks > 0 {
		opts.WarmStartTicks = ticks
	}

	eng := engine.New(snap, opts)
	defer eng.Close()

	energy := metrics.NewKineticEnergy()
	history := make([]float64, 0, opts.WarmStartTicks)
	now := time.Now()
	for i := 0; i < opts.WarmStartTicks; i++ {
		eng.Step(now)
		energy.Observe(eng.Simulator())
		history = append(history, energy.Value())
	}

	fmt.Printf("nodes: %d\n", snap.Len())
	fmt.Printf("links: %d\n", len(snap.Edges()))
	if snap.Dropped() > 0 {
		fmt.Printf("dropped links: %d (unresolved endpoints)\n", snap.Dropped())
	}
	fmt.Printf("ticks: %d\n", opts.WarmStartTicks)
	fmt.Printf("kinetic energy: %.4f (mean %.4f)\n", energy.Value(), energy.Mean())

	if showStats && len(history) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(history,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("kinetic energy vs tick"),
		))
	}

	frame := eng.Frame()
	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.FrameSVG(frame, cfg.Viewport.Width, cfg.Viewport.Height)), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	if jsonPath != "" {
		file, err := os.Create(jsonPath)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := export.LayoutJSON(file, snap, frame, cfg.Viewport.Width, cfg.Viewport.Height); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonPath)
	}
	return nil
}

func runDeclutter(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(args)
	if err != nil {
		return err
	}

	nodes := make([]declutter.Node, 0, snap.Len())
	for i := 0; i < snap.Len(); i++ {
		n := snap.Node(i)
		nodes = append(nodes, declutter.Node{ID: n.ID, Size: n.Size})
	}
	edges := make([]declutter.Edge, 0, len(snap.Edges()))
	for _, e := range snap.Edges() {
		edges = append(edges, declutter.Edge{Source: snap.Node(e.A).ID, Target: snap.Node(e.B).ID})
	}

	targets := declutter.Layout(nodes, edges, cfg.Viewport.Width, cfg.Viewport.Height)
	ids := make([]string, 0, len(targets))
	for id := range targets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		p := targets[id]
		fmt.Printf("%-20s %8.1f %8.1f\n", id, p.X, p.Y)
	}
	return nil
}
