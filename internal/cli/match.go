package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"chronicle/internal/catalog"
	"chronicle/internal/matcher"
	"chronicle/internal/report"
)

type matchOptions struct {
	kind        string
	eventType   string
	century     int
	limit       int
	failOnMatch bool
}

func newMatchCmd(a *app) *cobra.Command {
	opts := &matchOptions{}

	cmd := &cobra.Command{
		Use:   "match <query>",
		Short: "Search the catalog for records that may duplicate a new entry",
		Long: `Match normalizes the query and every record name and id to lower-case
letters and digits, then ranks records:

  exact     100  query equals the name or the id
  contains   80  name contains the query, or the query contains the name
  partial   50+  10 for each query word found among the name words,
                 10 more for each found among the id words

Example:
  chronicle match "St. Peter's Basilica" --kind places
  chronicle match Nicaea --kind events --type council --century 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMatch(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", "", "search one kind only (people, events, places)")
	cmd.Flags().StringVar(&opts.eventType, "type", "", "only events of this type, e.g. council")
	cmd.Flags().IntVar(&opts.century, "century", 0, "only records whose date falls in this century")
	cmd.Flags().IntVar(&opts.limit, "limit", -1, "maximum results to print (default: matching.max_results)")
	cmd.Flags().BoolVar(&opts.failOnMatch, "fail-on-match", false, "exit 1 when an exact or contains match exists")

	return cmd
}

func (a *app) runMatch(cmd *cobra.Command, query string, opts *matchOptions) error {
	kinds, err := a.selectKinds(opts.kind)
	if err != nil {
		return err
	}

	corpora, err := a.loadCorpora(kinds)
	if err != nil {
		return err
	}

	var corpus []catalog.Entry
	for _, c := range corpora {
		corpus = append(corpus, c.entries...)
	}

	var filters []matcher.Filter[catalog.Entry]

	if opts.eventType != "" {
		filters = append(filters, matcher.ByEventType[catalog.Entry](opts.eventType))
	}

	if opts.century > 0 {
		filters = append(filters, matcher.ByCentury[catalog.Entry](opts.century))
	}

	results := matcher.FindMatches(query, corpus, matcher.All(filters...))

	a.log.Debug("match finished", "query", query, "corpus", len(corpus), "results", len(results))

	limit := opts.limit
	if limit < 0 {
		limit = a.cfg.Matching.MaxResults
	}

	report.NewPrinter(cmd.OutOrStdout(), a.cfg.Report.Color).Matches(query, results, limit)

	if opts.failOnMatch {
		for _, r := range results {
			if r.Tier == matcher.TierExact || r.Tier == matcher.TierContains {
				return fmt.Errorf("%w: %q (%s)", ErrDuplicateCandidates, r.Entity.Identifier(), r.Tier)
			}
		}
	}

	return nil
}
