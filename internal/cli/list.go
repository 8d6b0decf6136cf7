package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cataloghq/catman/internal/catalog"
)

var (
	// List command flags
	listSearch  string
	listStatus  string
	listPage    int
	listPerPage int
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalogs with optional search, status filter, and paging",
	Long: `List catalogs with optional search, status filter, and paging.
The search term matches the catalog id, name, and description. The status
filter accepts: active, inactive.

Examples:
  catman list
  catman list --search sale
  catman list --status active --page 2
  catman list --per-page 25 -j`,
	RunE: listCatalogs,
}

func listCatalogs(cmd *cobra.Command, args []string) error {
	client, err := newCatalogClient()
	if err != nil {
		return err
	}

	result, err := client.List(catalog.ListOptions{
		Search:  listSearch,
		Status:  listStatus,
		Page:    listPage,
		PerPage: listPerPage,
	})
	if err != nil {
		// The placeholder replaces the table so no stale listing stands
		if !jsonOutput {
			renderListing(os.Stdout, nil, "")
		}
		return err
	}

	if jsonOutput {
		output := map[string]any{
			"result": 1,
			"value":  result,
		}
		jsonBytes, err := json.MarshalIndent(output, "", "    ")
		if err != nil {
			return fmt.Errorf("failed to format JSON output: %v", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	renderListing(os.Stdout, result, GetConfig().GetUsername())
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Search term matching id, name, or description")
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (active, inactive)")
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
	listCmd.Flags().IntVar(&listPerPage, "per-page", catalog.DefaultPerPage, "Items per page")
}
