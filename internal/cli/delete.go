package cli

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a catalog by id",
	Long: `Delete a catalog by id. A confirmation is asked first; pass --yes to
skip it in scripts.

Example:
  catman delete 42
  catman delete 42 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: deleteCatalog,
}

func deleteCatalog(cmd *cobra.Command, args []string) error {
	id, err := parseCatalogID(args[0])
	if err != nil {
		return err
	}

	skipConfirm, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return err
	}

	if !skipConfirm {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Are you sure you want to delete catalog ID %d? This action cannot be undone", id),
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			fmt.Println("Deletion cancelled.")
			return nil
		}
	}

	client, err := newCatalogClient()
	if err != nil {
		return err
	}

	message, err := client.Delete(id)
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(map[string]any{
			"deleted": true,
			"message": message,
		})
	} else {
		fmt.Println(message)
		refreshListing(client)
	}
	return nil
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "Delete without asking for confirmation")

	rootCmd.AddCommand(deleteCmd)
}
