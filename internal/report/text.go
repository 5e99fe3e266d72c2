// Package report renders match and validation results for people.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"chronicle/internal/catalog"
	"chronicle/internal/century"
	"chronicle/internal/formatter"
	"chronicle/internal/matcher"
	"chronicle/internal/validator"
	"chronicle/pkg/utils"
)

const maxNameWidth = 48

// Printer writes human-readable reports to a terminal.
type Printer struct {
	out     io.Writer
	strs    *utils.StringHelper
	ok      *color.Color
	bad     *color.Color
	warn    *color.Color
	heading *color.Color
}

// NewPrinter creates a printer; useColor false yields plain text.
func NewPrinter(out io.Writer, useColor bool) *Printer {
	p := &Printer{
		out:     out,
		strs:    utils.NewStringHelper(),
		ok:      color.New(color.FgGreen, color.Bold),
		bad:     color.New(color.FgRed, color.Bold),
		warn:    color.New(color.FgYellow),
		heading: color.New(color.Bold),
	}

	// with useColor set, color.NoColor still turns escapes off for non-terminals
	if !useColor {
		for _, c := range []*color.Color{p.ok, p.bad, p.warn, p.heading} {
			c.DisableColor()
		}
	}

	return p
}

// Matches prints up to limit results (0 means all) for query.
func (p *Printer) Matches(query string, results []matcher.Result[catalog.Entry], limit int) {
	if len(results) == 0 {
		p.ok.Fprintf(p.out, "No existing entries match %q\n", query)
		return
	}

	shown := results
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	p.warn.Fprintf(p.out, "%d possible duplicate(s) for %q\n\n", len(results), query)

	p.lines(formatter.Plain(matchHeader, p.matchRows(shown)))

	if len(shown) < len(results) {
		fmt.Fprintf(p.out, "\n... %d more not shown\n", len(results)-len(shown))
	}
}

var matchHeader = []string{"SCORE", "TIER", "ID", "NAME", "BUCKET", "SOURCE"}

func (p *Printer) matchRows(results []matcher.Result[catalog.Entry]) [][]string {
	rows := make([][]string, 0, len(results))

	for _, r := range results {
		rows = append(rows, []string{
			strconv.Itoa(r.Score),
			string(r.Tier),
			r.Entity.Identifier(),
			p.strs.Truncate(r.Entity.DisplayName(), maxNameWidth),
			century.Label(century.DefaultPrefix, r.Entity.Bucket),
			r.Entity.Source,
		})
	}

	return rows
}

// Validation prints the outcome of one validation run under title.
func (p *Printer) Validation(title string, result *validator.Result) {
	p.heading.Fprintf(p.out, "%s\n", title)

	if result.Failed() {
		p.bad.Fprint(p.out, "INVALID")
	} else {
		p.ok.Fprint(p.out, "VALID")
	}

	fmt.Fprintf(p.out, " | Checked: %d | Distinct ids: %d | Errors: %d | Warnings: %d\n",
		result.Stats.Checked, result.Stats.Distinct, len(result.Errors), len(result.Warnings))

	if len(result.Errors) > 0 {
		fmt.Fprintln(p.out)
		p.bad.Fprintln(p.out, "Errors:")
		p.lines(formatter.Plain(errorHeader, errorRows(result.Errors, p.strs)))
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(p.out)
		p.warn.Fprintln(p.out, "Warnings:")

		for _, w := range result.Warnings {
			fmt.Fprintf(p.out, "  %s\n", w)
		}
	}

	fmt.Fprintln(p.out)
}

var errorHeader = []string{"TYPE", "ID", "NAME", "DETAIL"}

func errorRows(errs []validator.ValidationError, strs *utils.StringHelper) [][]string {
	rows := make([][]string, 0, len(errs))

	for _, e := range errs {
		switch v := e.(type) {
		case validator.DuplicateID:
			locs := make([]string, len(v.Locations))
			for i, l := range v.Locations {
				locs[i] = l.String()
			}

			rows = append(rows, []string{string(v.Kind()), v.ID, strs.Truncate(v.Name, maxNameWidth), strings.Join(locs, "; ")})
		case validator.WrongBucket:
			rows = append(rows, []string{
				string(v.Kind()), v.ID, strs.Truncate(v.Name, maxNameWidth),
				fmt.Sprintf("year %d: expected %s, found in %s (%s)",
					v.Year,
					century.Label(century.DefaultPrefix, v.ExpectedBucket),
					century.Label(century.DefaultPrefix, v.ActualBucket),
					v.Location.Source),
			})
		default:
			rows = append(rows, []string{string(e.Kind()), e.EntityID(), "", e.Error()})
		}
	}

	return rows
}

func (p *Printer) lines(lines []string) {
	for _, l := range lines {
		fmt.Fprintln(p.out, l)
	}
}
