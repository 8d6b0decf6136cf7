package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cataloghq/catman/internal/catalog"
)

func sampleListResult() *catalog.ListResult {
	return &catalog.ListResult{
		Items: []catalog.Catalog{
			{
				ID:          11,
				Name:        "Spring Sale",
				Description: "Seasonal items",
				StartDate:   "2026-03-15",
				EndDate:     "2026-04-15",
				Status:      catalog.StatusActive,
			},
		},
		TotalCatalogs: 18,
		Page:          2,
		PerPage:       10,
	}
}

func TestRenderListing(t *testing.T) {
	var buf bytes.Buffer
	renderListing(&buf, sampleListResult(), "admin")
	out := buf.String()

	for _, want := range []string{"Spring Sale", "Active", "Page 2 of 2", "Previous page"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderListing() output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Next page") {
		t.Errorf("renderListing() offers a next page on the last page:\n%s", out)
	}
	if !strings.Contains(out, "catman update") {
		t.Errorf("renderListing() missing the modification hint for a signed-in user:\n%s", out)
	}
}

func TestRenderListingSignedOut(t *testing.T) {
	var buf bytes.Buffer
	renderListing(&buf, sampleListResult(), "")
	if strings.Contains(buf.String(), "catman update") {
		t.Errorf("renderListing() shows the modification hint while signed out:\n%s", buf.String())
	}
}

func TestRenderListingPlaceholder(t *testing.T) {
	tests := []struct {
		name   string
		result *catalog.ListResult
	}{
		// A failed fetch passes nil; the placeholder replaces the table
		{name: "failed fetch", result: nil},
		{name: "empty result", result: &catalog.ListResult{Page: 1, PerPage: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			renderListing(&buf, tt.result, "admin")
			if got := buf.String(); got != "No catalogs found.\n" {
				t.Errorf("renderListing() = %q, want the placeholder", got)
			}
		})
	}
}
