package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/csift/internal/scan"
	"github.com/mvp-joe/csift/internal/search"
	"github.com/mvp-joe/csift/internal/store"
)

var scanQuiet bool

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Summarize every C file under a directory into the scan database",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().BoolVarP(&scanQuiet, "quiet", "q", false, "suppress progress output")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	discovery, err := scan.NewFileDiscovery(root, cfg.Paths.Code, cfg.Paths.Ignore)
	if err != nil {
		return fmt.Errorf("invalid path patterns: %w", err)
	}
	files, err := discovery.DiscoverFiles()
	if err != nil {
		return fmt.Errorf("file discovery failed: %w", err)
	}
	if !scanQuiet {
		fmt.Printf("Processing %d C files\n", len(files))
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

	sessionID, err := db.BeginSession(root, len(files))
	if err != nil {
		return err
	}

	bar := newScanProgressBar(len(files), scanQuiet)
	scanner := scan.NewScanner(newExtractor(), db.HasFile, func(string) {
		if bar != nil {
			bar.Add(1)
		}
	})
	results := scanner.Run(files)

	var extracted, skipped int
	for _, r := range results {
		if r.Skipped {
			skipped++
			continue
		}
		if err := db.SaveSummary(sessionID, r.Path, r.Hash, r.Summary); err != nil {
			return err
		}
		if err := index.IndexSummary(r.Path, r.Summary); err != nil {
			return err
		}
		extracted++
	}

	includeGraph, err := scan.BuildIncludeGraph(results)
	if err != nil {
		return fmt.Errorf("failed to build include graph: %w", err)
	}
	stats, err := includeGraph.Stats()
	if err != nil {
		return err
	}

	if !scanQuiet {
		fmt.Println()
		fmt.Printf("✓ Scan complete: %d extracted, %d unchanged\n", extracted, skipped)
		fmt.Printf("  Include graph: %d files, %d edges\n", stats.Files, stats.Edges)
		for _, cycle := range stats.Cycles {
			fmt.Printf("  Include cycle: %v\n", cycle)
		}
	}

	return nil
}
