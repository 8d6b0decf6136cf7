package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/cataloghq/catman/internal/catalog"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a catalog by id",
	Long: `Get a catalog by id and print it as YAML (or JSON with -j).

Example:
  catman get 42
  catman get 42 -j`,
	Args: cobra.ExactArgs(1),
	RunE: getCatalog,
}

func getCatalog(cmd *cobra.Command, args []string) error {
	id, err := parseCatalogID(args[0])
	if err != nil {
		return err
	}

	client, err := newCatalogClient()
	if err != nil {
		return err
	}

	record, err := client.Get(id)
	if err != nil {
		return err
	}

	if jsonOutput {
		output := map[string]any{
			"result": 1,
			"value":  record,
		}
		jsonBytes, err := json.MarshalIndent(output, "", "    ")
		if err != nil {
			return fmt.Errorf("failed to format JSON output: %v", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	yamlBytes, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %v", err)
	}
	fmt.Println(string(yamlBytes))
	return nil
}

// parseCatalogID validates that the argument is a positive integer id
func parseCatalogID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, catalog.ErrInvalidID
	}
	return id, nil
}

func init() {
	rootCmd.AddCommand(getCmd)
}
