package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"sigs.k8s.io/yaml"

	"github.com/cataloghq/catman/internal/catalog"
)

// timeNow is stubbed in tests
var timeNow = time.Now

// LoadDraftFromFile loads a catalog draft from a YAML or JSON file. An
// optional "kind" field is accepted and must be "Catalog" when present.
func LoadDraftFromFile(filename string) (catalog.Draft, error) {
	var draft catalog.Draft

	data, err := os.ReadFile(filename)
	if err != nil {
		return draft, fmt.Errorf("failed to read file: %v", err)
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return draft, fmt.Errorf("failed to convert YAML to JSON: %v", err)
	}

	if kind := gjson.GetBytes(jsonData, "kind"); kind.Exists() && kind.String() != "Catalog" {
		return draft, fmt.Errorf("unknown resource kind: %s", kind.String())
	}

	if err := json.Unmarshal(jsonData, &draft); err != nil {
		return draft, fmt.Errorf("failed to parse catalog: %v", err)
	}
	return draft, nil
}

// mergeDraft lays the set fields of src over dst, leaving fields the
// file did not mention untouched.
func mergeDraft(dst catalog.Draft, src catalog.Draft) catalog.Draft {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Description != "" {
		dst.Description = src.Description
	}
	if src.StartDate != "" {
		dst.StartDate = src.StartDate
	}
	if src.EndDate != "" {
		dst.EndDate = src.EndDate
	}
	if src.Status != "" {
		dst.Status = src.Status
	}
	return dst
}

// catalogFieldFlags registers the per-field flags shared by create and
// update.
func catalogFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Catalog name (max 30 characters)")
	cmd.Flags().String("description", "", "Catalog description (max 50 characters)")
	cmd.Flags().String("start-date", "", "Start date (YYYY-MM-DD, today or later)")
	cmd.Flags().String("end-date", "", "End date (YYYY-MM-DD, not before the start date)")
	cmd.Flags().String("status", "", "Status (active, inactive)")
}

// applyFieldFlags overlays the field flags the user set onto the draft
func applyFieldFlags(cmd *cobra.Command, draft *catalog.Draft) {
	if cmd.Flags().Changed("name") {
		draft.Name, _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("description") {
		draft.Description, _ = cmd.Flags().GetString("description")
	}
	if cmd.Flags().Changed("start-date") {
		draft.StartDate, _ = cmd.Flags().GetString("start-date")
	}
	if cmd.Flags().Changed("end-date") {
		draft.EndDate, _ = cmd.Flags().GetString("end-date")
	}
	if cmd.Flags().Changed("status") {
		draft.Status, _ = cmd.Flags().GetString("status")
	}
}

// validateDraft runs the client-side form checks and reports all
// violations before any request is made.
func validateDraft(draft catalog.Draft) error {
	fe, ok := catalog.NewDraftValidator().Validate(draft, timeNow())
	if ok {
		return nil
	}
	if jsonOutput {
		printJSON(map[string]any{
			"error":  catalog.ErrInvalidDraft.Error(),
			"fields": fe,
		})
	} else {
		printFieldErrors(fe)
	}
	return catalog.ErrInvalidDraft
}
