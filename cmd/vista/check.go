package main

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/phanxgames/vista"
)

var checkCmd = &cobra.Command{
	Use:   "check <story>...",
	Short: "Validate story documents",
	Long: `Parse and validate one or more story documents in parallel.

Examples:
  vista check tour.yaml
  vista check stories/*.yaml`,
	Args:    cobra.MinimumNArgs(1),
	GroupID: "tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.Context(), args, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkResult is the outcome for one file.
type checkResult struct {
	scenes      int
	annotations int
	regions     int
	err         error
}

// runCheck validates every path and reports each in argument order. It
// fails if any document is invalid.
func runCheck(ctx context.Context, paths []string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]checkResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = checkOne(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for i, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", paths[i], r.err)
			continue
		}
		fmt.Fprintf(out, "ok   %s (%d scenes, %d annotations, %d regions)\n",
			paths[i], r.scenes, r.annotations, r.regions)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d stories invalid", failed, len(paths))
	}
	return nil
}

func checkOne(path string) checkResult {
	st, err := vista.LoadStoryFile(path)
	if err != nil {
		return checkResult{err: err}
	}
	r := checkResult{scenes: len(st.Scenes)}
	for _, sc := range st.Scenes {
		r.annotations += len(sc.Annotations)
		r.regions += len(sc.Regions)
	}
	return r
}
