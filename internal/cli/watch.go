package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"chronicle/internal/report"
	"chronicle/internal/watcher"
)

func newWatchCmd(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-validate the catalog whenever a record file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return a.runWatch(ctx, cmd, kind)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "watch one kind only (people, events, places)")

	return cmd
}

func (a *app) runWatch(ctx context.Context, cmd *cobra.Command, kind string) error {
	kinds, err := a.selectKinds(kind)
	if err != nil {
		return err
	}

	w, err := watcher.New(a.cfg.Watch.GetDebounce(), a.log)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := w.Close(); closeErr != nil {
			a.log.Warn("failed to close watcher", "error", closeErr)
		}
	}()

	for _, k := range kinds {
		dir, err := a.cfg.KindDir(k)
		if err != nil {
			return err
		}

		if err := w.AddTree(dir); err != nil {
			return err
		}
	}

	printer := report.NewPrinter(cmd.OutOrStdout(), a.cfg.Report.Color)

	check := func() {
		sections, err := a.validateKinds(kinds)
		if err != nil {
			// a half-written file is common while editing; wait for the next change
			a.log.Error("validation run failed", "error", err)
			return
		}

		for _, s := range sections {
			printer.Validation(s.Title, s.Result)
		}
	}

	check()
	a.log.Info("watching catalog", "root", a.cfg.Catalog.Root, "kinds", len(kinds))

	err = w.Run(ctx, func(paths []string) {
		a.log.Info("change detected", "files", len(paths))
		check()
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
