package jira

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gojira "github.com/andygrunwald/go-jira"

	"github.com/nissynicolas/sdlc-jira-extractor-agent/core/config"
)

// Upstream rejections, classified by HTTP status so the dispatcher can
// shape per-request error responses without inspecting transport details.
var (
	ErrNotFound     = errors.New("issue not found")
	ErrUnauthorized = errors.New("jira rejected the credentials")
	ErrBadRequest   = errors.New("jira rejected the request")
)

// Client exposes the read operations the dispatcher needs. Implementations
// must be safe for concurrent use.
type Client interface {
	GetIssue(ctx context.Context, key string) (*gojira.Issue, error)
	SearchIssues(ctx context.Context, jql string) ([]gojira.Issue, error)
}

type restClient struct {
	api        *gojira.Client
	maxResults int
}

// NewClient builds a Jira REST client authenticated with the account
// email and API token (basic auth, per Atlassian Cloud convention).
func NewClient(cfg config.Jira) (Client, error) {
	transport := gojira.BasicAuthTransport{
		Username: cfg.Email,
		Password: cfg.APIToken,
	}

	api, err := gojira.NewClient(transport.Client(), cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("creating jira client: %w", err)
	}

	return &restClient{api: api, maxResults: cfg.MaxSearchResults}, nil
}

func (c *restClient) GetIssue(ctx context.Context, key string) (*gojira.Issue, error) {
	issue, resp, err := c.api.Issue.GetWithContext(ctx, key, nil)
	if err != nil {
		return nil, classify(resp, fmt.Errorf("fetching issue %s: %w", key, err))
	}
	return issue, nil
}

func (c *restClient) SearchIssues(ctx context.Context, jql string) ([]gojira.Issue, error) {
	issues, resp, err := c.api.Issue.SearchWithContext(ctx, jql, &gojira.SearchOptions{
		MaxResults: c.maxResults,
	})
	if err != nil {
		return nil, classify(resp, fmt.Errorf("searching issues: %w", err))
	}
	return issues, nil
}

// classify folds an upstream failure into the error taxonomy. Failures
// without a response (DNS, refused connection, timeout) pass through
// unwrapped as transport errors.
func classify(resp *gojira.Response, err error) error {
	if resp == nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	default:
		return err
	}
}
