package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phanxgames/vista"
	"github.com/phanxgames/vista/host"
	"github.com/phanxgames/vista/internal/watch"
)

var viewCmd = &cobra.Command{
	Use:   "view <story>",
	Short: "Open a story in the viewer window",
	Long: `Open a story document in a resizable window.

Keys:
  Left/Right  previous/next annotation
  Enter       activate the open card
  Esc         close the card
  Tab         toggle region outlines
  Home        restart the tour
  F12         save a screenshot
  Q           quit

Examples:
  vista view examples/_assets/story.yaml
  vista view tour.yaml --watch --fps`,
	Args:    cobra.ExactArgs(1),
	GroupID: "core",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if flags.Changed("watch") {
			cfg.Watch, _ = flags.GetBool("watch")
		}
		if flags.Changed("fps") {
			cfg.ShowFPS, _ = flags.GetBool("fps")
		}
		if flags.Changed("regions") {
			cfg.ShowRegions, _ = flags.GetBool("regions")
		}
		if flags.Changed("zoom") {
			cfg.Zoom, _ = flags.GetFloat64("zoom")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return runView(cmd.Context(), args[0])
	},
}

func init() {
	viewCmd.Flags().Bool("watch", false, "reload the story when the file changes")
	viewCmd.Flags().Bool("fps", false, "show the FPS overlay")
	viewCmd.Flags().Bool("regions", false, "outline clickable regions")
	viewCmd.Flags().Float64("zoom", 1, "content zoom factor")
	rootCmd.AddCommand(viewCmd)
}

func runView(ctx context.Context, path string) error {
	st, err := vista.LoadStoryFile(path)
	if err != nil {
		return err
	}
	e, err := newEngine(st)
	if err != nil {
		return err
	}
	e.OpenCurrent()

	rc := host.RunConfig{
		Title:         cfg.Title,
		Width:         cfg.Width,
		Height:        cfg.Height,
		ShowFPS:       cfg.ShowFPS,
		ShowRegions:   cfg.ShowRegions,
		AssetDir:      filepath.Dir(path),
		ScreenshotDir: cfg.ScreenshotDir,
		Logger:        slog.Default(),
	}
	e.On(vista.EventLaunch, func(ev vista.Event) {
		slog.Info("Launch", "app", ev.App, "region", ev.RegionID)
	})

	if cfg.Watch {
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		w := watch.New(path, 0, slog.Default())
		go func() {
			if err := w.Run(ctx); err != nil {
				slog.Error("Story watcher stopped", "error", err)
			}
		}()
		rc.Reload = func() (*vista.Story, error) {
			r, ok := watch.Drain(w.Results())
			if !ok {
				return nil, nil
			}
			return r.Story, r.Err
		}
	}

	slog.Info("Opening viewer", "story", path, "scenes", len(st.Scenes), "watch", cfg.Watch)
	return host.Run(e, rc)
}
