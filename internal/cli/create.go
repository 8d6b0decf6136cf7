package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cataloghq/catman/internal/catalog"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create [-f FILENAME | --name ... --description ... --start-date ... --end-date ... --status ...]",
	Short: "Create a catalog from a file or from flags",
	Long: `Create a catalog from a YAML/JSON file or from flags. Flags override
values read from the file. The fields are validated locally before any
request is made.

Example:
  catman create -f catalog.yaml
  catman create --name "Spring Sale" --description "Seasonal items" \
    --start-date 2026-03-15 --end-date 2026-04-15 --status active`,
	RunE: createCatalog,
}

func createCatalog(cmd *cobra.Command, args []string) error {
	filename, err := cmd.Flags().GetString("filename")
	if err != nil {
		return err
	}

	var draft catalog.Draft
	if filename != "" {
		draft, err = LoadDraftFromFile(filename)
		if err != nil {
			return err
		}
	}
	applyFieldFlags(cmd, &draft)

	if err := validateDraft(draft); err != nil {
		return err
	}

	client, err := newCatalogClient()
	if err != nil {
		return err
	}

	message, err := client.Create(draft)
	if err != nil {
		return reportSaveError(err)
	}

	if jsonOutput {
		printJSON(map[string]any{
			"created": true,
			"message": message,
		})
	} else {
		fmt.Println(message)
		refreshListing(client)
	}
	return nil
}

func init() {
	createCmd.Flags().StringP("filename", "f", "", "Filename to use to create the catalog")
	catalogFieldFlags(createCmd)

	rootCmd.AddCommand(createCmd)
}
