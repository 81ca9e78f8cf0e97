package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/csift/internal/search"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search extracted entities from previous scans",
	Long: `Search the entity index built by 'csift scan'. Supports bleve query
string syntax, e.g. 'kind:function name:init' or plain keywords.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 15, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	index, err := search.Open(cfg.Scan.Index)
	if err != nil {
		return err
	}
	defer index.Close()

	hits, err := index.Search(strings.Join(args, " "), searchLimit)
	if err != nil {
		return err
	}

	if len(hits) == 0 {
		fmt.Println("No results.")
		return nil
	}
	for _, hit := range hits {
		fmt.Printf("%-8s %-30s %s\n", hit.Kind, hit.Name, hit.File)
		if verbose && hit.Detail != "" {
			fmt.Printf("         %s\n", hit.Detail)
		}
	}
	return nil
}
