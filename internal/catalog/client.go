package catalog

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/sjson"

	"github.com/cataloghq/catman/internal/common/httpclient"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const catalogsPath = "api/catalogs"

// Client is the typed catalog client. It speaks the catalog server's
// REST API over the shared transport and keeps the stored username in
// sync with the login state.
type Client struct {
	doer   httpclient.RequestDoer
	config httpclient.Configurator
}

// NewClient creates a typed client over the given transport
func NewClient(doer httpclient.RequestDoer, config httpclient.Configurator) *Client {
	return &Client{doer: doer, config: config}
}

// ListOptions narrows and pages a catalog listing
type ListOptions struct {
	Search  string
	Status  string
	Page    int
	PerPage int
}

// ListResult is a page of catalog records plus the totals the server
// reported for the full filtered set.
type ListResult struct {
	Items         []Catalog `json:"data"`
	TotalCatalogs int       `json:"total_catalogs"`
	Page          int       `json:"page"`
	PerPage       int       `json:"per_page"`
}

// Pager derives the pagination controls for this result
func (r *ListResult) Pager() Pager {
	return NewPager(r.Page, r.PerPage, r.TotalCatalogs)
}

// List fetches a page of catalogs with optional search and status
// filtering.
func (c *Client) List(opts ListOptions) (*ListResult, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PerPage < 1 {
		opts.PerPage = DefaultPerPage
	}

	queryParams := map[string]string{
		"page":     strconv.Itoa(opts.Page),
		"per_page": strconv.Itoa(opts.PerPage),
	}
	if s := strings.TrimSpace(opts.Search); s != "" {
		queryParams["search"] = s
	}
	if s := strings.TrimSpace(opts.Status); s != "" {
		queryParams["status"] = strings.ToLower(s)
	}

	body, err := c.doer.DoRequest(httpclient.RequestOptions{
		Method:      http.MethodGet,
		Path:        catalogsPath,
		QueryParams: queryParams,
	})
	if err != nil {
		return nil, err
	}

	result := &ListResult{Page: opts.Page, PerPage: opts.PerPage}
	if err := json.Unmarshal(body, result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v", err)
	}
	return result, nil
}

// Get retrieves a single catalog by id
func (c *Client) Get(id int) (*Catalog, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	body, err := c.doer.DoRequest(httpclient.RequestOptions{
		Method: http.MethodGet,
		Path:   catalogsPath + "/" + strconv.Itoa(id),
	})
	if err != nil {
		return nil, err
	}

	var response struct {
		Data *Catalog `json:"data"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v", err)
	}
	if response.Data == nil {
		return nil, httpclient.ErrNotFound.New(fmt.Sprintf("Catalog with ID %d not found.", id))
	}
	return response.Data, nil
}

// Create submits a new catalog and returns the server's message
func (c *Client) Create(d Draft) (string, error) {
	payload, err := draftPayload(d)
	if err != nil {
		return "", err
	}

	body, err := c.doer.DoRequest(httpclient.RequestOptions{
		Method: http.MethodPost,
		Path:   catalogsPath,
		Body:   payload,
	})
	if err != nil {
		return "", err
	}
	return serverText(body, "Catalog created successfully."), nil
}

// Update replaces all fields of the catalog with the given id and
// returns the server's message.
func (c *Client) Update(id int, d Draft) (string, error) {
	if id <= 0 {
		return "", ErrInvalidID
	}

	payload, err := draftPayload(d)
	if err != nil {
		return "", err
	}

	body, err := c.doer.DoRequest(httpclient.RequestOptions{
		Method: http.MethodPut,
		Path:   catalogsPath + "/" + strconv.Itoa(id),
		Body:   payload,
	})
	if err != nil {
		return "", err
	}
	return serverText(body, fmt.Sprintf("Catalog ID %d updated successfully.", id)), nil
}

// Delete removes the catalog with the given id and returns the server's
// message.
func (c *Client) Delete(id int) (string, error) {
	if id <= 0 {
		return "", ErrInvalidID
	}

	body, err := c.doer.DoRequest(httpclient.RequestOptions{
		Method: http.MethodDelete,
		Path:   catalogsPath + "/" + strconv.Itoa(id),
	})
	if err != nil {
		return "", err
	}
	return serverText(body, fmt.Sprintf("Catalog ID %d deleted successfully.", id)), nil
}

// LoginResult reports a successful sign-in
type LoginResult struct {
	Message    string `json:"message"`
	RedirectTo string `json:"redirect_to"`
	Data       struct {
		Username string `json:"username"`
	} `json:"data"`
}

// Login authenticates against the server and stores the returned
// username. Both fields are required before any request is made.
func (c *Client) Login(usernameOrEmail, password string) (*LoginResult, error) {
	if strings.TrimSpace(usernameOrEmail) == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	payload, err := json.Marshal(map[string]string{
		"username_or_email": usernameOrEmail,
		"password":          password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %v", err)
	}

	body, err := c.doer.DoRequest(httpclient.RequestOptions{
		Method: http.MethodPost,
		Path:   "api/login",
		Body:   payload,
	})
	if err != nil {
		return nil, err
	}

	result := &LoginResult{}
	if err := json.Unmarshal(body, result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v", err)
	}

	username := result.Data.Username
	if username == "" {
		username = usernameOrEmail
	}
	if err := c.config.SetUsername(username); err != nil {
		return nil, err
	}
	return result, nil
}

// LogoutResult reports a completed sign-out
type LogoutResult struct {
	Message    string `json:"message"`
	RedirectTo string `json:"redirect_to"`
}

// Logout ends the server session. The stored username and the session
// cookies are cleared regardless of the server outcome.
func (c *Client) Logout() (*LogoutResult, error) {
	body, err := c.doer.DoRequest(httpclient.RequestOptions{
		Method: http.MethodPost,
		Path:   "api/logout",
	})

	c.doer.ClearSession()
	if err != nil {
		return nil, err
	}

	result := &LogoutResult{}
	if err := json.Unmarshal(body, result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v", err)
	}
	return result, nil
}

// draftPayload serializes the draft with trimmed fields and the status
// normalized to lowercase, the form the server expects.
func draftPayload(d Draft) ([]byte, error) {
	payload, err := json.Marshal(d.normalized())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog: %v", err)
	}
	payload, err = sjson.SetBytes(payload, "status", strings.ToLower(strings.TrimSpace(d.Status)))
	if err != nil {
		return nil, fmt.Errorf("failed to normalize status: %v", err)
	}
	return payload, nil
}

// serverText pulls the message out of a response body, with a fallback
// when the server sent none.
func serverText(body []byte, fallback string) string {
	var response struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &response); err == nil && response.Message != "" {
		return response.Message
	}
	return fallback
}
