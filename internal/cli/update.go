package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cataloghq/catman/internal/catalog"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update <id> [-f FILENAME | field flags]",
	Short: "Update a catalog by id",
	Long: `Update a catalog by id. The current record is fetched first, then the
file or flag values are applied on top and the full record is submitted,
so every update is a complete replacement.

Example:
  catman update 42 --status inactive
  catman update 42 -f catalog.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: updateCatalog,
}

func updateCatalog(cmd *cobra.Command, args []string) error {
	id, err := parseCatalogID(args[0])
	if err != nil {
		return err
	}

	client, err := newCatalogClient()
	if err != nil {
		return err
	}

	// Re-fetch before editing; the client never patches in place
	current, err := client.Get(id)
	if err != nil {
		return err
	}
	draft := catalog.DraftFromCatalog(current)

	filename, err := cmd.Flags().GetString("filename")
	if err != nil {
		return err
	}
	if filename != "" {
		fileDraft, err := LoadDraftFromFile(filename)
		if err != nil {
			return err
		}
		draft = mergeDraft(draft, fileDraft)
	}
	applyFieldFlags(cmd, &draft)

	if err := validateDraft(draft); err != nil {
		return err
	}

	message, err := client.Update(id, draft)
	if err != nil {
		return reportSaveError(err)
	}

	if jsonOutput {
		printJSON(map[string]any{
			"updated": true,
			"message": message,
		})
	} else {
		fmt.Println(message)
		refreshListing(client)
	}
	return nil
}

func init() {
	updateCmd.Flags().StringP("filename", "f", "", "Filename to use to update the catalog")
	catalogFieldFlags(updateCmd)

	rootCmd.AddCommand(updateCmd)
}
