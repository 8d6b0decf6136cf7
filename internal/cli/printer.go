package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cataloghq/catman/internal/catalog"
)

var titleCaser = cases.Title(language.English)

// renderCatalogTable writes the catalog listing as an aligned table.
// The modification hint is shown only when a user is signed in, matching
// the server's requirement that mutating calls carry a session.
func renderCatalogTable(w io.Writer, items []catalog.Catalog, username string) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION\tSTART DATE\tEND DATE\tSTATUS")
	for _, c := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.Description, c.StartDate, c.EndDate,
			titleCaser.String(string(c.Status)))
	}
	tw.Flush()

	if username != "" {
		fmt.Fprintln(w, "\nUse \"catman update <id>\" or \"catman delete <id>\" to modify a catalog.")
	}
}

// renderPagerFooter reports the current page and which of the prev/next
// controls are available.
func renderPagerFooter(w io.Writer, p catalog.Pager) {
	if p.TotalPages() == 0 {
		return
	}
	fmt.Fprintf(w, "\nPage %d of %d (%d catalogs)\n", p.Page, p.TotalPages(), p.Total)
	if p.HasPrev() {
		fmt.Fprintf(w, "Previous page: catman list --page %d\n", p.Page-1)
	}
	if p.HasNext() {
		fmt.Fprintf(w, "Next page: catman list --page %d\n", p.Page+1)
	}
}

// renderListing draws a listing result. A nil result (failed fetch) and
// an empty result both show the placeholder, so the user never sees a
// stale partial listing.
func renderListing(w io.Writer, result *catalog.ListResult, username string) {
	if result == nil || len(result.Items) == 0 {
		fmt.Fprintln(w, "No catalogs found.")
		return
	}
	renderCatalogTable(w, result.Items, username)
	renderPagerFooter(w, result.Pager())
}

// printFieldErrors prints one message per violating form field, in form
// field order.
func printFieldErrors(fe catalog.FieldErrors) {
	for _, line := range fe.Ordered() {
		fmt.Fprintln(os.Stderr, line)
	}
}

// reportSaveError maps a server-side validation message to the form
// field it concerns; messages naming no field pass through unchanged.
func reportSaveError(err error) error {
	if field := catalog.MapDetailToField(err.Error()); field != "" {
		return fmt.Errorf("%s: %s", catalog.FieldLabel(field), err.Error())
	}
	return err
}

// refreshListing fetches page 1 of the listing and renders it, the CLI
// analog of the page refresh after a successful save or delete.
func refreshListing(client *catalog.Client) {
	result, err := client.List(catalog.ListOptions{Page: 1})
	if err != nil {
		renderListing(os.Stdout, nil, "")
		return
	}
	fmt.Println()
	renderListing(os.Stdout, result, GetConfig().GetUsername())
}
