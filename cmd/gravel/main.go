package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/san-kum/gravel/internal/analysis"
	"github.com/san-kum/gravel/internal/config"
	"github.com/san-kum/gravel/internal/gravel"
	"github.com/san-kum/gravel/internal/gui"
	"github.com/san-kum/gravel/internal/render"
	"github.com/san-kum/gravel/internal/storage"
	"github.com/san-kum/gravel/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile   string
	outputDir    string
	preset       string
	verbose      bool
	seed         uint64
	displacement float64
	rotation     float64
	background   string
	// render command
	format   string
	fromSnap string
	// stats command
	plotWidth  int
	plotHeight int
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gravel",
		Short: "gravel garden generative sketch",
		Long: fmt.Sprintf(`Opens a %s window with a grid of stones that scatter toward the bottom.

keys: up/down displacement, left/right rotation, r reseed, c color, s save, q quit`,
			frameSize(render.DefaultLayout())),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: runWindow,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&outputDir, "output", "", "directory for saved frames")
	pf.StringVar(&preset, "preset", "", "start from a named preset")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.Uint64Var(&seed, "seed", 0, "random seed in [0, 1000000)")
	pf.Float64Var(&displacement, "displacement", gravel.DefaultDisplacement, "displacement adjustment")
	pf.Float64Var(&rotation, "rotation", gravel.DefaultRotation, "rotation adjustment")
	pf.StringVar(&background, "background", "", "background color name")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render one frame to the output directory without a window",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&format, "format", "png", "output format (png|svg)")
	renderCmd.Flags().StringVar(&fromSnap, "from", "", "replay a saved snapshot id, e.g. gravel-42")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "draw the sketch in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved frames",
		Args:  cobra.NoArgs,
		RunE:  listSnapshots,
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "plot perturbation by row",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&plotWidth, "width", 60, "plot width")
	statsCmd.Flags().IntVar(&plotHeight, "height", 12, "plot height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDISPLACEMENT\tROTATION")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.1f\t%.1f\n", name, p.Displacement, p.Rotation)
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(renderCmd, tuiCmd, listCmd, statsCmd, presetsCmd)
	return rootCmd
}

// resolveConfig layers defaults, the config file, a preset and explicit
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" && !cfg.ApplyPreset(preset) {
		return nil, fmt.Errorf("%w: unknown preset %q", config.ErrInvalid, preset)
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.OutputDir = outputDir
	}
	if flags.Changed("seed") {
		s := seed
		cfg.Seed = &s
	}
	if flags.Changed("displacement") {
		cfg.Displacement = displacement
	}
	if flags.Changed("rotation") {
		cfg.Rotation = rotation
	}
	if flags.Changed("background") {
		cfg.Background = background
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// outputPath resolves a relative output directory against the working
// directory so log lines show where frames land.
func outputPath(cfg *config.Config) string {
	if filepath.IsAbs(cfg.OutputDir) {
		return cfg.OutputDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return cfg.OutputDir
	}
	return filepath.Join(wd, cfg.OutputDir)
}

func newExporter(cfg *config.Config) *storage.Exporter {
	return storage.NewExporter(storage.New(outputPath(cfg)), cfg.Name, cfg.Layout())
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	st := cfg.NewState(nil)
	logger.Debug("starting window", "seed", st.Seed, "background", st.Swatch().Name)
	gui.Run(cfg.Name, st, cfg.Layout(), newExporter(cfg), logger)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// the terminal is busy drawing; keep log lines out of it
	var sink io.Writer = io.Discard
	if verbose {
		f, err := os.Create(cfg.Name + "-tui.log")
		if err != nil {
			return err
		}
		defer f.Close()
		sink = f
	}
	logger := newLogger(sink, log.DebugLevel)

	st := cfg.NewState(nil)
	return viz.Run(st, newExporter(cfg), logger, cfg.Terminal.Width, cfg.Terminal.Height)
}

func runRender(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	exp := newExporter(cfg)
	st := cfg.NewState(nil)
	logger.Debug("rendering", "dir", exp.Store.Dir(), "format", format)

	if fromSnap != "" {
		sn, err := exp.Store.Load(fromSnap)
		if err != nil {
			return err
		}
		if sn.Rows != 0 && (sn.Rows != cfg.Grid.Rows || sn.Cols != cfg.Grid.Cols) {
			logger.Warn("snapshot grid differs from config", "snapshot", fmt.Sprintf("%dx%d", sn.Rows, sn.Cols),
				"config", fmt.Sprintf("%dx%d", cfg.Grid.Rows, cfg.Grid.Cols))
		}
		sn.Restore(st)
	}

	var path string
	switch format {
	case "png":
		path, err = exp.Export(st)
	case "svg":
		path, err = exp.ExportSVG(st)
	default:
		return fmt.Errorf("unknown format %q (png|svg)", format)
	}
	if err != nil {
		return err
	}
	logger.Info("saved frame", "path", path, "seed", st.Seed)
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	store := storage.New(outputPath(cfg))
	snaps, err := store.List()
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no saved frames in %s\n", store.Dir())
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSEED\tDISP\tROT\tBACKGROUND\tSAVED")
	for _, sn := range snaps {
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%.1f\t%s\t%s\n",
			sn.ID(), sn.Seed, sn.Displacement, sn.Rotation, sn.Background,
			sn.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	st := cfg.NewState(nil)
	p := analysis.RowProfile(st.Stones, st.Rows, st.Displacement, st.Rotation)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed %d  displacement %.1f  rotation %.1f\n\n", st.Seed, st.Displacement, st.Rotation)
	fmt.Fprintln(out, analysis.PlotProfile(p, plotWidth, plotHeight))
	fmt.Fprintf(out, "\nbounds monotone: %v  within bounds: %v\n", p.Monotone(), p.Within())
	return nil
}

func frameSize(l render.Layout) string {
	return fmt.Sprintf("%dx%d", l.Width(), l.Height())
}
