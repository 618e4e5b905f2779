// Package cms is a thin client for the Sanity content store: GROQ queries
// for the read path and the standard mutation envelope for the admin
// passthroughs. Configuration is explicit and injected at startup; there
// are no package-level client singletons.
package cms

import (
	"context"
	"encoding/json"
	"fmt"

	"resty.dev/v3"
)

// Config identifies the Sanity project this deployment reads from.
type Config struct {
	ProjectID  string `yaml:"project_id"`
	Dataset    string `yaml:"dataset"`
	Token      string `yaml:"token"`
	APIVersion string `yaml:"api_version"`
	// BaseURL overrides the derived https://<project>.api.sanity.io
	// endpoint. Tests point it at a local server.
	BaseURL string `yaml:"base_url"`
}

// Enabled reports whether a CMS is configured at all. When false the data
// fetchers skip straight to their bundled fallback datasets.
func (c Config) Enabled() bool {
	return c.ProjectID != ""
}

// Client issues queries and mutations against one project/dataset pair.
type Client struct {
	http    *resty.Client
	dataset string
	version string
	token   string
}

// New builds a client from an explicit Config.
func New(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.api.sanity.io", cfg.ProjectID)
	}
	dataset := cfg.Dataset
	if dataset == "" {
		dataset = "production"
	}
	version := cfg.APIVersion
	if version == "" {
		version = "2024-01-01"
	}

	return &Client{
		http:    resty.New().SetBaseURL(base),
		dataset: dataset,
		version: version,
		token:   cfg.Token,
	}
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// Query runs a GROQ query and decodes the result envelope into result.
// Failures are returned as-is; there is no retry.
func (c *Client) Query(ctx context.Context, groq string, result any) error {
	var envelope queryResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("query", groq).
		SetResult(&envelope).
		Get(fmt.Sprintf("/v%s/data/query/%s", c.version, c.dataset))
	if err != nil {
		return fmt.Errorf("cms query: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("cms query: unexpected status %d", resp.StatusCode())
	}
	if result == nil || len(envelope.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("cms query: decode result: %w", err)
	}
	return nil
}

type mutation map[string]any

func (c *Client) mutate(ctx context.Context, muts []mutation) error {
	req := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"mutations": muts})
	if c.token != "" {
		req.SetAuthToken(c.token)
	}
	resp, err := req.Post(fmt.Sprintf("/v%s/data/mutate/%s", c.version, c.dataset))
	if err != nil {
		return fmt.Errorf("cms mutate: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("cms mutate: unexpected status %d", resp.StatusCode())
	}
	return nil
}

// Create inserts a new document.
func (c *Client) Create(ctx context.Context, doc any) error {
	return c.mutate(ctx, []mutation{{"create": doc}})
}

// Replace overwrites a document wholesale. Last write wins; the CMS does
// the conflict resolution, not us.
func (c *Client) Replace(ctx context.Context, doc any) error {
	return c.mutate(ctx, []mutation{{"createOrReplace": doc}})
}

// Delete removes a document by ID.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.mutate(ctx, []mutation{{"delete": map[string]string{"id": id}}})
}
