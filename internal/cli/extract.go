package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/csift/internal/verify"
)

var extractOutputDir string

var extractCmd = &cobra.Command{
	Use:   "extract <file.c>",
	Short: "Summarize one C file into macros.json, types.json, and apis.json",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutputDir, "output", "o", "", "output directory (default from config)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir := cfg.Output.Dir
	if extractOutputDir != "" {
		outputDir = extractOutputDir
	}

	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	fmt.Printf("Parsing file: %s\n", path)
	extractor := newExtractor()
	summary, err := extractor.ExtractSource(source)
	if err != nil {
		return err
	}
	fmt.Printf("Parser strategy used: %s\n", summary.Strategy)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	outputs := []struct {
		name string
		data interface{}
	}{
		{"macros.json", summary.Macros},
		{"types.json", summary.Types},
		{"apis.json", summary.Functions},
	}
	for _, out := range outputs {
		if err := writeJSON(filepath.Join(outputDir, out.name), out.data); err != nil {
			return err
		}
	}

	fileCounts := verify.CountSource(string(source))
	verify.Report(cmd.OutOrStdout(), fileCounts, summary.Counts)

	return nil
}

// writeJSON writes obj as indented JSON to path.
func writeJSON(path string, obj interface{}) error {
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
