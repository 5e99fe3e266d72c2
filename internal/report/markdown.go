package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chronicle/internal/formatter"
	"chronicle/internal/validator"
	"chronicle/pkg/metadata"
	"chronicle/pkg/utils"
)

// Section is one titled validation result in a markdown report.
type Section struct {
	Result *validator.Result
	Title  string
}

// Markdown renders sections as a signed markdown document.
func Markdown(title string, sections []Section) string {
	strs := utils.NewStringHelper()
	total := &validator.Result{}

	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n", title)

	for _, s := range sections {
		total.Merge(s.Result)

		status := "VALID"
		if s.Result.Failed() {
			status = "INVALID"
		}

		fmt.Fprintf(&sb, "\n## %s\n\n**%s**: %d checked, %d errors, %d warnings\n",
			s.Title, status, s.Result.Stats.Checked, len(s.Result.Errors), len(s.Result.Warnings))

		if len(s.Result.Errors) > 0 {
			sb.WriteString("\n### Errors\n\n")
			writeLines(&sb, formatter.Markdown(errorHeader, errorRows(s.Result.Errors, strs)))
		}

		if len(s.Result.Warnings) > 0 {
			sb.WriteString("\n### Warnings\n\n")
			writeLines(&sb, formatter.Markdown(warningHeader, warningRows(s.Result.Warnings)))
		}
	}

	return metadata.Sign(sb.String(), metadata.Metadata{
		Errors:   len(total.Errors),
		Warnings: len(total.Warnings),
		Entities: total.Stats.Checked,
	})
}

// WriteMarkdown renders sections and writes them to path.
func WriteMarkdown(path, title string, sections []Section) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(Markdown(title, sections)), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

var warningHeader = []string{"ID", "NAME", "LOCATION"}

func warningRows(warnings []validator.MissingDateValue) [][]string {
	rows := make([][]string, 0, len(warnings))
	for _, w := range warnings {
		rows = append(rows, []string{w.ID, w.Name, w.Location.String()})
	}

	return rows
}

func writeLines(sb *strings.Builder, lines []string) {
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteString("\n")
	}
}
