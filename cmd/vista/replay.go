package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/vista"
	"github.com/phanxgames/vista/ecs"
)

// replayEpoch is the simulated start time, fixed so output is reproducible.
var replayEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

var replayCmd = &cobra.Command{
	Use:   "replay <story> <script>",
	Short: "Run a scripted input sequence headless",
	Long: `Replay a recorded script of pointer and key actions against a story
without opening a window, printing every snapshot checkpoint.

Examples:
  vista replay tour.yaml drag-and-click.yaml
  vista replay tour.yaml steps.json --events`,
	Args:    cobra.ExactArgs(2),
	GroupID: "tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		events, _ := cmd.Flags().GetBool("events")
		return runReplay(args[0], args[1], events, cmd.OutOrStdout())
	},
}

func init() {
	replayCmd.Flags().Bool("events", false, "also print every engine event in order")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(storyPath, scriptPath string, withEvents bool, out io.Writer) error {
	st, err := vista.LoadStoryFile(storyPath)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	script, err := vista.LoadScript(data)
	if err != nil {
		return err
	}
	e, err := newEngine(st)
	if err != nil {
		return err
	}

	// Events are queued in a Donburi world and flushed after the run so
	// they print as one block.
	world := donburi.NewWorld()
	var recorded []vista.Event
	if withEvents {
		e.SetEventStore(ecs.NewDonburiStore(world))
		ecs.EngineEventType.Subscribe(world, func(_ donburi.World, ev vista.Event) {
			recorded = append(recorded, ev)
		})
	}

	checkpoints, end := script.Run(e, replayEpoch)
	ecs.EngineEventType.ProcessEvents(world)

	for i, cp := range checkpoints {
		label := cp.Label
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		fmt.Fprintf(out, "%-12s %s\n", label, cp.Snapshot)
	}
	for _, ev := range recorded {
		fmt.Fprintf(out, "event %-10s %s\n", ev.Type, eventDetail(ev))
	}
	fmt.Fprintf(out, "%d steps, %s simulated\n", script.Len(), end.Sub(replayEpoch))
	return nil
}

func eventDetail(ev vista.Event) string {
	switch ev.Type {
	case vista.EventResize:
		return fmt.Sprintf("%.0fx%.0f", ev.Dimensions.Width, ev.Dimensions.Height)
	case vista.EventOffset:
		return fmt.Sprintf("(%.1f,%.1f)", ev.Offset.X, ev.Offset.Y)
	case vista.EventRegionHit:
		return ev.RegionID
	case vista.EventSequence, vista.EventOpen:
		return fmt.Sprintf("(%d,%d)", ev.State.Scene, ev.State.Annotation)
	case vista.EventLaunch:
		return ev.App
	}
	return ""
}
