package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/moodart/pkg/art"
	"github.com/matzehuels/moodart/pkg/story"
)

// storyCommand creates the story command.
func (c *CLI) storyCommand() *cobra.Command {
	var (
		mood   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "story",
		Short: "Write a short story in a mood",
		Long: `Story writes a seven-paragraph story in the given mood.

Without --output the story is printed. With --output it is exported as plain
text; a directory receives a filename derived from the title.`,
		Example: `  moodart story --mood adventurous
  moodart story --mood melancholic -o stories/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := art.ParseMood(mood)
			if err != nil {
				return err
			}
			runner, ch, err := c.newRunner(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer ch.Close()

			spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Writing a %s story...", m))
			spinner.Start()
			defer spinner.Stop()
			s, err := runner.Story(cmd.Context(), m)
			if err != nil {
				spinner.Fail(err)
				return err
			}

			if output == "" {
				spinner.Stop()
				printStory(s)
				return nil
			}
			path := outputPath(output, story.Filename(s))
			if err := ensureDir(filepath.Dir(path)); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(story.Export(s)), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			spinner.StopWithSuccess(moodLabel(s.Mood) + " " + StyleValue.Render(s.Title))
			printFile(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mood, "mood", "m", string(art.Happy), "mood to write in")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file or directory")
	_ = cmd.RegisterFlagCompletionFunc("mood", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return moodNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// printStory prints a story with a styled title.
func printStory(s story.Story) {
	fmt.Println(StyleTitle.Render(s.Title) + "  " + moodLabel(s.Mood))
	printNewline()
	for _, p := range s.Paragraphs() {
		fmt.Println(p)
		printNewline()
	}
}
