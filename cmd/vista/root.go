package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/vista"
	"github.com/phanxgames/vista/internal/config"
	"github.com/phanxgames/vista/internal/logging"
)

var (
	configPath string
	cfg        = config.Default()
	closeLog   = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "vista",
	Short: "Pannable scene viewer",
	Long: `vista - Guided tours over a large pannable image.

A story document describes the content surface, its scenes of annotations,
and clickable regions. Drag to pan, click regions for details, and step
through annotations with the arrow keys.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { closeLog() },
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "vista.yaml", "settings file (missing file uses defaults)")
	pf.String("log-level", "", "console log level: debug, info, warn, error")
	pf.String("log-dir", "", "directory for vista.log (empty string disables the file)")
	pf.Bool("debug", false, "log every engine event")

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: "Core Commands:"},
		&cobra.Group{ID: "tools", Title: "Tools:"},
	)
	rootCmd.SetHelpCommandGroupID("tools")
	rootCmd.SetCompletionCommandGroupID("tools")
}

// setup loads settings, applies flag overrides, and installs the logger.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-dir") {
		cfg.LogDir, _ = flags.GetString("log-dir")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	cleanup, err := logging.Init(logging.Options{Dir: cfg.LogDir, Level: level})
	if err != nil {
		return err
	}
	closeLog = cleanup
	slog.Debug("Settings loaded", "config", configPath, "logDir", cfg.LogDir)
	return nil
}

// newEngine builds an engine for st from the current settings.
func newEngine(st *vista.Story) (*vista.Engine, error) {
	e, err := vista.NewEngine(st, vista.EngineConfig{
		Viewport:      vista.Dimensions{Width: float64(cfg.Width), Height: float64(cfg.Height)},
		ResizeQuiet:   cfg.ResizeQuiet(),
		DragDeadZone:  cfg.DragDeadZone,
		Zoom:          cfg.Zoom,
		FocusDuration: float32(cfg.FocusSeconds),
		Logger:        slog.Default(),
	})
	if err != nil {
		return nil, fmt.Errorf("start engine: %w", err)
	}
	e.SetDebugMode(cfg.Debug)
	return e, nil
}
