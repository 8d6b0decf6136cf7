package cli

import (
	"github.com/cataloghq/catman/internal/catalog"
	"github.com/cataloghq/catman/internal/common/httpclient"
)

// newCatalogClient builds the typed catalog client over the shared
// transport, with the activity indicator silenced in JSON output mode.
func newCatalogClient() (*catalog.Client, error) {
	cfg := GetConfig()
	transport, err := httpclient.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	transport.SetIndicator(httpclient.NewIndicator(jsonOutput))
	return catalog.NewClient(transport, cfg), nil
}
