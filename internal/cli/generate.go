package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/moodart/pkg/art"
	"github.com/matzehuels/moodart/pkg/cache"
	moodarterrors "github.com/matzehuels/moodart/pkg/errors"
	"github.com/matzehuels/moodart/pkg/pipeline"
	"github.com/matzehuels/moodart/pkg/render"
)

// retryDelay is the first pause between retried generations.
const retryDelay = time.Second

// generateFlags holds the flags shared by generate and pick.
type generateFlags struct {
	prompt  string
	seed    uint64
	size    int
	output  string
	dataURI bool
	retries int
	noCache bool
	refresh bool
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.prompt, "prompt", "p", "", "custom prompt stored with the piece")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed (0 picks one; seeded renders are cached)")
	cmd.Flags().IntVar(&f.size, "size", 0, "canvas edge length in pixels (default from config)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file or directory (default mood-art-{id}.png)")
	cmd.Flags().BoolVar(&f.dataURI, "data-uri", false, "print the PNG data URI to stdout instead of writing a file")
	cmd.Flags().IntVar(&f.retries, "retries", 0, "retry attempts when rendering is unavailable")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "re-render even if the piece is cached")
}

func (f *generateFlags) options(c *CLI, mood art.Mood, style art.Style) pipeline.Options {
	size := f.size
	if size == 0 {
		size = c.Config.Size
	}
	return pipeline.Options{
		Mood:    mood,
		Style:   style,
		Prompt:  f.prompt,
		Seed:    f.seed,
		Size:    size,
		Refresh: f.refresh,
	}
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		flags generateFlags
		mood  string
		style string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one piece of art",
		Long: `Generate paints one piece for a mood and style and writes it as PNG.

Unknown moods or styles are rejected before anything is drawn. The same
--seed always reproduces the same image.`,
		Example: `  moodart generate --mood calm --style watercolor
  moodart generate --mood mysterious --style cosmic --seed 42 -o cosmic.png
  moodart generate --mood happy --style pixel --data-uri`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options(c, art.Mood(mood), art.Style(style))
			return c.runGenerate(cmd.Context(), opts, flags)
		},
	}

	cmd.Flags().StringVarP(&mood, "mood", "m", string(pipeline.DefaultMood), "mood to express")
	cmd.Flags().StringVarP(&style, "style", "s", string(pipeline.DefaultStyle), "visual style")
	flags.register(cmd)
	registerEnumCompletions(cmd)

	return cmd
}

// runGenerate renders one piece and writes or prints it.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, flags generateFlags) error {
	runner, ch, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return err
	}
	defer ch.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Painting %s %s art...", opts.Mood, opts.Style))
	spinner.Start()

	res, err := generateWithRetry(ctx, runner, opts, flags.retries)
	if err != nil {
		spinner.Fail(err)
		return err
	}
	spinner.Stop()

	if flags.dataURI {
		fmt.Println(res.Piece.ImageData)
		return nil
	}

	path, err := writePiece(res, flags.output)
	if err != nil {
		return err
	}
	printSuccess("%s %s", moodLabel(res.Piece.Mood), styleLabel(res.Piece.Style))
	printDetail("%s", res.Piece.Prompt)
	printFile(path)
	printPieceStats(res)
	return nil
}

// generateWithRetry runs the pipeline, retrying only RENDERING_UNAVAILABLE
// failures with exponential backoff.
func generateWithRetry(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, retries int) (*pipeline.Result, error) {
	var res *pipeline.Result
	err := cache.Retry(ctx, retries+1, retryDelay, func() error {
		r, err := runner.Generate(ctx, opts)
		if err != nil {
			if moodarterrors.IsRetryable(err) {
				runner.Logger.Warn("rendering unavailable, retrying", "error", err)
				return cache.Retryable(err)
			}
			return err
		}
		res = r
		return nil
	})
	return res, err
}

// writePiece writes the piece's PNG. An output ending in a separator or
// naming an existing directory receives the default filename.
func writePiece(res *pipeline.Result, output string) (string, error) {
	path := outputPath(output, res.Piece.Filename())
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return "", err
	}
	if err := writePieceFile(res.Piece.ImageData, path); err != nil {
		return "", err
	}
	return path, nil
}

// writePieceFile decodes a PNG data URI into path.
func writePieceFile(dataURI, path string) error {
	data, err := render.DecodeDataURI(dataURI)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// outputPath resolves the destination for a file named name.
func outputPath(output, name string) string {
	if output == "" {
		return name
	}
	if strings.HasSuffix(output, string(filepath.Separator)) {
		return filepath.Join(output, name)
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, name)
	}
	return output
}

// registerEnumCompletions adds shell completions for --mood and --style.
func registerEnumCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("mood", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return moodNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("style", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return styleNames(), cobra.ShellCompDirectiveNoFileComp
	})
}

func moodNames() []string {
	var names []string
	for _, m := range art.Moods() {
		names = append(names, string(m))
	}
	return names
}

func styleNames() []string {
	var names []string
	for _, s := range art.Styles() {
		names = append(names, string(s))
	}
	return names
}
