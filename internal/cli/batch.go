package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/moodart/pkg/art"
	moodarterrors "github.com/matzehuels/moodart/pkg/errors"
	"github.com/matzehuels/moodart/pkg/gallery"
	"github.com/matzehuels/moodart/pkg/pipeline"
)

// allValues selects every mood or style in batch.
const allValues = "all"

// batchCommand creates the batch command.
func (c *CLI) batchCommand() *cobra.Command {
	var (
		mood    string
		style   string
		output  string
		workers int
		flags   generateFlags
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate art for many mood and style combinations",
		Long: `Batch paints every combination of the selected moods and styles into a
directory. Pieces are collected into a gallery as they finish, and the
gallery's newest-first order is printed at the end.`,
		Example: `  moodart batch --mood all --style neon -o out/
  moodart batch --mood dreamy --style all --seed 7 -o dreamy/
  moodart batch --mood all --style all --size 128 -o grid/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			moods, err := parseMoods(mood)
			if err != nil {
				return err
			}
			styles, err := parseStyles(style)
			if err != nil {
				return err
			}
			base := flags.options(c, "", "")
			return c.runBatch(cmd.Context(), pipeline.Combinations(moods, styles, base), output, workers, flags.noCache)
		},
	}

	cmd.Flags().StringVarP(&mood, "mood", "m", allValues, `mood to express, or "all"`)
	cmd.Flags().StringVarP(&style, "style", "s", allValues, `visual style, or "all"`)
	cmd.Flags().StringVarP(&output, "output", "o", ".", "output directory")
	cmd.Flags().IntVarP(&workers, "workers", "w", pipeline.DefaultBatchWorkers, "concurrent renders")
	cmd.Flags().StringVarP(&flags.prompt, "prompt", "p", "", "custom prompt stored with every piece")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "random seed shared by every piece (0 picks one per piece)")
	cmd.Flags().IntVar(&flags.size, "size", 0, "canvas edge length in pixels (default from config)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "re-render even if pieces are cached")
	registerEnumCompletions(cmd)

	return cmd
}

// runBatch renders opts into dir through a session gallery.
func (c *CLI) runBatch(ctx context.Context, opts []pipeline.Options, dir string, workers int, noCache bool) error {
	if err := ensureDir(dir); err != nil {
		return err
	}
	runner, ch, err := c.newRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer ch.Close()

	store := gallery.NewStore()
	for range opts {
		store.Dispatch(gallery.StartGeneration{})
	}

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Painting 0/%d...", len(opts)))
	spinner.Start()

	var done, failed int
	batchErr := runner.Batch(ctx, opts, workers, func(item pipeline.BatchItem) {
		done++
		spinner.SetMessage(fmt.Sprintf("Painting %d/%d...", done, len(opts)))
		if item.Err != nil {
			failed++
			msg := moodarterrors.UserMessage(item.Err)
			store.Dispatch(gallery.GenerationFailed{Err: msg})
			c.Logger.Warn("piece failed", "mood", item.Options.Mood, "style", item.Options.Style, "error", msg)
			return
		}
		store.Append(item.Result.Piece)
	})
	spinner.Stop()
	if batchErr != nil {
		return batchErr
	}

	pieces := store.List()
	for _, p := range pieces {
		path := filepath.Join(dir, p.Filename())
		if err := writePieceFile(p.ImageData, path); err != nil {
			return err
		}
		printFile(fmt.Sprintf("%s  %s", path, StyleDim.Render(string(p.Mood)+"/"+string(p.Style))))
	}

	prog.done(fmt.Sprintf("Painted %d pieces", len(pieces)))
	if failed > 0 {
		printWarning("%d of %d pieces failed", failed, len(opts))
		if st := store.Snapshot(); st.LastError != "" {
			printDetail("last error: %s", st.LastError)
		}
	}
	printSuccess("Wrote %d pieces to %s", len(pieces), dir)
	return nil
}

// parseMoods accepts a mood name or "all".
func parseMoods(s string) ([]art.Mood, error) {
	if s == allValues {
		return art.Moods(), nil
	}
	m, err := art.ParseMood(s)
	if err != nil {
		return nil, err
	}
	return []art.Mood{m}, nil
}

// parseStyles accepts a style name or "all".
func parseStyles(s string) ([]art.Style, error) {
	if s == allValues {
		return art.Styles(), nil
	}
	st, err := art.ParseStyle(s)
	if err != nil {
		return nil, err
	}
	return []art.Style{st}, nil
}
