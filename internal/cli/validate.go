package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"chronicle/internal/config"
	"chronicle/internal/models"
	"chronicle/internal/report"
	"chronicle/internal/validator"
)

type validateOptions struct {
	kind   string
	format string
	output string
}

func newValidateCmd(a *app) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check century placement and id uniqueness",
		Long: `Validate loads each kind and reports:
- duplicate ids (error)
- records filed under a century other than the one their date implies (error)
- records without a date (warning)

The expected century of year y is floor((y-1)/100)+1.
The command exits with status 1 when any error is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", "", "validate one kind only (people, events, places)")
	cmd.Flags().StringVar(&opts.format, "format", "", "report format: text or markdown (default: report.format)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the markdown report to this path (default: report.path)")

	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, opts *validateOptions) error {
	kinds, err := a.selectKinds(opts.kind)
	if err != nil {
		return err
	}

	format := a.cfg.Report.Format
	if opts.format != "" {
		format = opts.format
	}

	if format != config.FormatText && format != config.FormatMarkdown {
		return config.ErrInvalidReportFormat
	}

	sections, err := a.validateKinds(kinds)
	if err != nil {
		return err
	}

	failed := false
	for _, s := range sections {
		failed = failed || s.Result.Failed()
	}

	out := cmd.OutOrStdout()

	switch format {
	case config.FormatMarkdown:
		path := opts.output
		if path == "" {
			path = a.cfg.Report.Path
		}

		if path == "" {
			fmt.Fprint(out, report.Markdown("Catalog validation", sections))
		} else {
			if err := report.WriteMarkdown(path, "Catalog validation", sections); err != nil {
				return err
			}

			a.log.Info("wrote report", "path", path)
		}
	default:
		printer := report.NewPrinter(out, a.cfg.Report.Color)
		for _, s := range sections {
			printer.Validation(s.Title, s.Result)
		}
	}

	if failed {
		return ErrValidationFailed
	}

	return nil
}

func (a *app) validateKinds(kinds []models.Kind) ([]report.Section, error) {
	corpora, err := a.loadCorpora(kinds)
	if err != nil {
		return nil, err
	}

	sections := make([]report.Section, 0, len(corpora))

	for _, c := range corpora {
		result := validator.Validate(c.entries, locate)

		a.log.Info("validated",
			"kind", c.kind,
			"checked", result.Stats.Checked,
			"errors", len(result.Errors),
			"warnings", len(result.Warnings))

		sections = append(sections, report.Section{Title: string(c.kind), Result: result})
	}

	return sections, nil
}
