package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/csift/internal/scan"
	"github.com/mvp-joe/csift/internal/search"
	"github.com/mvp-joe/csift/internal/store"
	"github.com/mvp-joe/csift/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Re-extract C files as they change",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	db, err := store.Open(cfg.Scan.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	index, err := search.Open(cfg.Scan.Index)
	if err != nil {
		return err
	}
	defer index.Close()

	extractor := newExtractor()
	scanner := scan.NewScanner(extractor, db.HasFile, nil)

	debounce := time.Duration(cfg.Scan.DebounceMS) * time.Millisecond
	watcher, err := watch.New(root, []string{".c", ".h"}, debounce)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}
	defer watcher.Stop()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	watcher.Start(ctx, func(files []string) {
		results := scanner.Run(files)
		for _, r := range results {
			if r.Skipped {
				continue
			}
			sessionID, err := db.BeginSession(root, 1)
			if err != nil {
				log.Printf("failed to record session: %v", err)
				continue
			}
			if err := db.SaveSummary(sessionID, r.Path, r.Hash, r.Summary); err != nil {
				log.Printf("failed to save %s: %v", r.Path, err)
				continue
			}
			if err := index.IndexSummary(r.Path, r.Summary); err != nil {
				log.Printf("failed to index %s: %v", r.Path, err)
				continue
			}
			fmt.Printf("re-extracted %s (%s)\n", r.Path, r.Summary.Strategy)
		}
	})

	fmt.Printf("Watching %s for changes (Ctrl-C to stop)\n", root)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sigCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
