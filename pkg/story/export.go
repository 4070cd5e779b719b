package story

import (
	"fmt"
	"regexp"
	"strings"
)

// ExportDateFormat is the layout of the "Generated on" line.
const ExportDateFormat = "2006-01-02"

var (
	nonSlug         = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Export renders s as a plain-text document.
func Export(s Story) string {
	return fmt.Sprintf("%s\n\n%s\n\nGenerated on: %s\nMood: %s",
		s.Title, s.Content, s.CreatedAt.Format(ExportDateFormat), s.Mood)
}

// Filename returns the download name for an exported story: the title
// lower-cased with whitespace runs turned into hyphens, plus ".txt".
// Characters that are unsafe in file names are dropped.
func Filename(s Story) string {
	slug := strings.ToLower(strings.TrimSpace(s.Title))
	slug = nonSlug.ReplaceAllString(slug, "")
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	slug = multipleHyphens.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "story"
	}
	return slug + ".txt"
}
