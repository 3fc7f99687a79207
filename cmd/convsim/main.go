package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/convsim/internal/config"
	"github.com/san-kum/convsim/internal/conv"
	"github.com/san-kum/convsim/internal/session"
	"github.com/san-kum/convsim/internal/signal"
	"github.com/san-kum/convsim/internal/store"
	"github.com/san-kum/convsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	mode  string
	xExpr string
	hExpr string
	speed float64
	shift float64
	style string
	// Config file
	configFile string
	// Preset name
	preset string
	// Export options
	format  string
	outPath string
	// Record file written when the playback view exits
	savePath string
)

// main is the entry point for the convsim CLI; it registers commands and
// flags, launches the interactive playback view when no subcommand is given,
// and executes the root command. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "convsim",
		Short: "interactive convolution lab for continuous and discrete signals",
		RunE:  runPlay,
	}
	addSignalFlags(rootCmd)
	rootCmd.Flags().StringVar(&savePath, "save", "", "write the session record (yaml) on exit")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "animate the convolution as the shift sweeps the grid",
		RunE:  runPlay,
	}
	addSignalFlags(playCmd)
	playCmd.Flags().StringVar(&savePath, "save", "", "write the session record (yaml) on exit")

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "evaluate the convolution at a single shift",
		RunE:  runEval,
	}
	addSignalFlags(evalCmd)
	evalCmd.Flags().Float64Var(&shift, "at", 0, "shift to evaluate at")

	fullCmd := &cobra.Command{
		Use:   "full",
		Short: "plot the full convolution curve",
		RunE:  runFull,
	}
	addSignalFlags(fullCmd)

	validateCmd := &cobra.Command{
		Use:   "validate [expression]",
		Short: "check an expression and print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
	validateCmd.Flags().StringVar(&mode, "mode", "continuous", "signal domain (continuous|discrete)")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export the full convolution curve",
		RunE:  runExport,
	}
	addSignalFlags(exportCmd)
	exportCmd.Flags().StringVar(&format, "format", "csv", "output format (csv|json)")
	exportCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout for json)")

	presetsCmd := &cobra.Command{
		Use:   "presets [mode]",
		Short: "list built-in signal pairs for a mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for mode: %s\n", args[0])
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tX\tH\tDESCRIPTION")
			for _, name := range presets {
				cfg := config.GetPreset(args[0], name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, cfg.X, cfg.H, cfg.Description)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(playCmd, evalCmd, fullCmd, validateCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSignalFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&mode, "mode", "continuous", "signal domain (continuous|discrete)")
	cmd.Flags().StringVar(&xExpr, "x", "", "input signal expression")
	cmd.Flags().StringVar(&hExpr, "h", "", "impulse response expression")
	cmd.Flags().Float64Var(&speed, "speed", 1.0, "playback speed multiplier")
	cmd.Flags().StringVar(&style, "style", "", "rendering style (mathematical|block-step)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset signal pair")
}

// buildConfig resolves the session record from preset, config file, and
// flags, in that order: explicit flags win.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(mode, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(mode))
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

	if cmd.Flags().Changed("mode") {
		cfg.Mode = mode
	}
	if cmd.Flags().Changed("x") {
		cfg.X = xExpr
	}
	if cmd.Flags().Changed("h") {
		cfg.H = hExpr
	}
	if cmd.Flags().Changed("speed") {
		cfg.Speed = speed
	}
	if cmd.Flags().Changed("style") {
		cfg.Style = style
	}

	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSession(cmd *cobra.Command) (*session.Session, *config.Config, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	s, err := cfg.NewSession()
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	s, _, err := newSession(cmd)
	if err != nil {
		return err
	}
	if err := viz.Run(s); err != nil {
		return err
	}
	if savePath != "" {
		if err := config.Save(savePath, config.FromSession(s)); err != nil {
			return err
		}
		fmt.Printf("session record written to %s\n", savePath)
	}
	return nil
}

func runEval(cmd *cobra.Command, args []string) error {
	s, cfg, err := newSession(cmd)
	if err != nil {
		return err
	}

	frame, err := s.EvaluateAt(shift)
	if err != nil {
		return err
	}

	fmt.Printf("mode: %s\n", cfg.Mode)
	fmt.Printf("x: %s\n", cfg.X)
	fmt.Printf("h: %s\n\n", cfg.H)
	fmt.Println(viz.FramePlot(frame, s.Style(), 80, 12))
	fmt.Printf("\nproduct: %s\n", viz.Sparkline(frame.Product, 60))
	fmt.Printf("(x * h)(%.4f) = %.6f\n", frame.Shift, frame.Value)
	return nil
}

func runFull(cmd *cobra.Command, args []string) error {
	s, cfg, err := newSession(cmd)
	if err != nil {
		return err
	}

	res, err := s.FullCurve()
	if err != nil {
		return err
	}

	fmt.Printf("mode: %s\n", cfg.Mode)
	fmt.Printf("x: %s\n", cfg.X)
	fmt.Printf("h: %s\n", cfg.H)
	fmt.Printf("samples: %d\n\n", len(res.Values))

	graph := asciigraph.Plot(res.Values,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("(%s) * (%s)", cfg.X, cfg.H)),
	)
	fmt.Println(graph)

	if res.Truncated {
		fmt.Println("\nwarning: samples outside the output window were dropped")
	}
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	text := args[0]
	domain := signal.Domain(mode)
	if !domain.Valid() {
		return fmt.Errorf("unknown mode %q", mode)
	}

	if err := signal.Validate(text); err != nil {
		return fmt.Errorf("rejected: %w", err)
	}

	if domain == signal.Discrete {
		seq, err := signal.ParseSequence(text, conv.DefaultIndexWindow)
		if err != nil {
			return fmt.Errorf("does not compile: %w", err)
		}
		fmt.Printf("ok: sequence of %d samples starting at n=%d\n", seq.Len(), seq.Start)
		return nil
	}

	sig, err := signal.Compile(text, domain)
	if err != nil {
		return fmt.Errorf("does not compile: %w", err)
	}

	fmt.Printf("ok: %s\n", sig.Canonical())
	if sig.Constant() {
		fmt.Printf("note: expression does not depend on %s\n", domain.Variable())
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	s, cfg, err := newSession(cmd)
	if err != nil {
		return err
	}

	res, err := s.FullCurve()
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		if outPath == "" {
			return fmt.Errorf("csv export requires --out")
		}
		if err := store.ExportCSV(outPath, res); err != nil {
			return err
		}
		fmt.Printf("wrote %d samples to %s\n", len(res.Values), outPath)
		return nil
	case "json":
		if outPath == "" {
			return store.ExportJSONStdout(cfg.Mode, cfg.X, cfg.H, res)
		}
		if err := store.ExportJSON(outPath, cfg.Mode, cfg.X, cfg.H, res); err != nil {
			return err
		}
		fmt.Printf("wrote %d samples to %s\n", len(res.Values), outPath)
		return nil
	default:
		return fmt.Errorf("unknown format %q (csv|json)", format)
	}
}
