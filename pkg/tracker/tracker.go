// Package tracker talks to the external project tracker the sync
// queue mirrors goal activity into. The relay treats the tracker as
// best-effort: a missing configuration disables it without disabling
// the queue machinery around it.
package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/elliebot/relay/pkg/config"
	"github.com/elliebot/relay/pkg/transport"
)

// Client is the tracker surface the sync queue executes against.
type Client interface {
	// CreateIssue creates an issue and returns its tracker-side id.
	CreateIssue(ctx context.Context, payload map[string]interface{}) (string, error)

	// UpdateIssue patches fields on an existing issue.
	UpdateIssue(ctx context.Context, issueID string, payload map[string]interface{}) error

	// ChangeState moves an issue to the named state.
	ChangeState(ctx context.Context, issueID, state string) error

	// AddComment appends a comment to an issue.
	AddComment(ctx context.Context, issueID, text string) error

	// ResolveIssue looks up an issue id by an external reference
	// (typically the goal's memory id stamped into the issue).
	ResolveIssue(ctx context.Context, ref string) (string, error)
}

// HTTPClient implements Client against the tracker's REST API.
type HTTPClient struct {
	baseURL   string
	apiKey    string
	workspace string
	project   string
	http      *http.Client
}

// New creates a tracker client, or nil when the tracker is not
// configured. Callers wrap nil with Disabled.
func New(cfg config.TrackerConfig) Client {
	if cfg.BaseURL == "" || cfg.APIKey == "" {
		return Disabled{}
	}
	return &HTTPClient{
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		workspace: cfg.Workspace,
		project:   cfg.Project,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *HTTPClient) CreateIssue(ctx context.Context, payload map[string]interface{}) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, c.issuesPath(""), payload, &out)
	if err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *HTTPClient) UpdateIssue(ctx context.Context, issueID string, payload map[string]interface{}) error {
	return c.do(ctx, http.MethodPatch, c.issuesPath(issueID), payload, nil)
}

func (c *HTTPClient) ChangeState(ctx context.Context, issueID, state string) error {
	return c.do(ctx, http.MethodPatch, c.issuesPath(issueID),
		map[string]interface{}{"state": state}, nil)
}

func (c *HTTPClient) AddComment(ctx context.Context, issueID, text string) error {
	return c.do(ctx, http.MethodPost, c.issuesPath(issueID)+"/comments",
		map[string]interface{}{"comment_html": text}, nil)
}

func (c *HTTPClient) ResolveIssue(ctx context.Context, ref string) (string, error) {
	var out struct {
		Results []struct {
			ID string `json:"id"`
		} `json:"results"`
	}
	path := c.issuesPath("") + "?external_ref=" + url.QueryEscape(ref)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return "", err
	}
	if len(out.Results) == 0 {
		return "", transport.Permanent(fmt.Errorf("no tracker issue found for ref %q", ref))
	}
	return out.Results[0].ID, nil
}

func (c *HTTPClient) issuesPath(issueID string) string {
	path := fmt.Sprintf("%s/api/v1/workspaces/%s/projects/%s/issues",
		c.baseURL, c.workspace, c.project)
	if issueID != "" {
		path += "/" + issueID
	}
	return path
}

// do performs one request and classifies failures by status code so
// the sync queue can tell retryable from dead.
func (c *HTTPClient) do(ctx context.Context, method, u string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return transport.Permanent(fmt.Errorf("failed to encode tracker payload: %w", err))
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return transport.Permanent(fmt.Errorf("failed to build tracker request: %w", err))
	}
	req.Header.Set("X-API-Key", c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transport.Retryable(fmt.Errorf("tracker request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return transport.FromStatusCode(resp.StatusCode, "tracker")
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return transport.Permanent(fmt.Errorf("failed to decode tracker response: %w", err))
		}
	}
	return nil
}

// Disabled is the no-op client used when no tracker is configured.
// Every operation succeeds so queued items drain instead of piling up.
type Disabled struct{}

func (Disabled) CreateIssue(context.Context, map[string]interface{}) (string, error) {
	return "", nil
}
func (Disabled) UpdateIssue(context.Context, string, map[string]interface{}) error { return nil }
func (Disabled) ChangeState(context.Context, string, string) error                 { return nil }
func (Disabled) AddComment(context.Context, string, string) error                  { return nil }
func (Disabled) ResolveIssue(context.Context, string) (string, error)              { return "", nil }
