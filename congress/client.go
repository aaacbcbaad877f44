// Package congress wraps the legislative data REST API. Every response
// arrives in an envelope of the shape {results: [{<resource>: [...]}]};
// the client decodes it into typed structs and fails with
// ErrMalformedResponse when the envelope doesn't match.
package congress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jmcnair/voterhub/config"
)

var (
	// ErrUpstream is returned when the upstream API responds with a
	// non-2xx status.
	ErrUpstream = errors.New("upstream request failed")
	// ErrMalformedResponse is returned when the response envelope doesn't
	// have the expected shape.
	ErrMalformedResponse = errors.New("malformed upstream response")
	// ErrNotFound is returned by BillOrNomination for any lookup failure.
	ErrNotFound = errors.New("item not found")
)

// Client is a client for the legislative data API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// New creates a new congress API client.
func New(cfg *config.CongressConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Members returns the member roster for a chamber of the given congress.
func (c *Client) Members(ctx context.Context, chamber Chamber, congress int) ([]Member, error) {
	var env membersEnvelope
	path := fmt.Sprintf("/%d/%s/members.json", congress, chamber)
	if err := c.get(ctx, path, nil, &env); err != nil {
		return nil, err
	}
	if len(env.Results) == 0 || env.Results[0].Members == nil {
		return nil, fmt.Errorf("%w: missing members", ErrMalformedResponse)
	}
	return env.Results[0].Members, nil
}

// MemberProfile returns the detailed record for a single member.
func (c *Client) MemberProfile(ctx context.Context, memberID string) (*MemberProfile, error) {
	var env profileEnvelope
	path := fmt.Sprintf("/members/%s.json", url.PathEscape(memberID))
	if err := c.get(ctx, path, nil, &env); err != nil {
		return nil, err
	}
	if len(env.Results) == 0 {
		return nil, fmt.Errorf("%w: empty results", ErrMalformedResponse)
	}
	return &env.Results[0], nil
}

// MemberVotes returns one page of a member's vote history.
func (c *Client) MemberVotes(ctx context.Context, memberID string, offset, limit int) (*VotesPage, error) {
	query := url.Values{}
	query.Set("offset", fmt.Sprint(offset))
	query.Set("limit", fmt.Sprint(limit))

	var env votesEnvelope
	path := fmt.Sprintf("/members/%s/votes.json", url.PathEscape(memberID))
	if err := c.get(ctx, path, query, &env); err != nil {
		return nil, err
	}
	if len(env.Results) == 0 || env.Results[0].Votes == nil {
		return nil, fmt.Errorf("%w: missing votes", ErrMalformedResponse)
	}
	return &VotesPage{
		Votes:  env.Results[0].Votes,
		Offset: offset,
	}, nil
}

// SearchBills runs a free-text bill search starting at the given offset.
func (c *Client) SearchBills(ctx context.Context, search string, offset int) (*BillsPage, error) {
	query := url.Values{}
	query.Set("query", search)
	query.Set("offset", fmt.Sprint(offset))

	var env billSearchEnvelope
	if err := c.get(ctx, "/bills/search.json", query, &env); err != nil {
		return nil, err
	}
	if len(env.Results) == 0 || env.Results[0].Bills == nil {
		return nil, fmt.Errorf("%w: missing bills", ErrMalformedResponse)
	}
	return &BillsPage{
		Bills:      env.Results[0].Bills,
		NumResults: env.Results[0].NumResults,
		Offset:     offset,
	}, nil
}

// BillOrNomination looks up a bill or a nomination of the given congress.
// Item ids starting with "p" (case-insensitive, the nomination id
// convention) dispatch to the nominations endpoint, everything else to the
// bills endpoint. Any HTTP or parse failure comes back as ErrNotFound so
// callers can render a single not-found response.
func (c *Client) BillOrNomination(ctx context.Context, congress int, itemID string) (*Detail, error) {
	if IsNomination(itemID) {
		nomination, err := c.nomination(ctx, congress, itemID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, itemID)
		}
		return &Detail{Nomination: nomination}, nil
	}
	bill, err := c.bill(ctx, congress, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, itemID)
	}
	return &Detail{Bill: bill}, nil
}

// IsNomination reports whether an item id follows the nomination id
// convention (leading "p", as in "PN123").
func IsNomination(itemID string) bool {
	return len(itemID) > 0 && (itemID[0] == 'p' || itemID[0] == 'P')
}

func (c *Client) bill(ctx context.Context, congress int, billSlug string) (*Bill, error) {
	var env billEnvelope
	path := fmt.Sprintf("/%d/bills/%s.json", congress, url.PathEscape(billSlug))
	if err := c.get(ctx, path, nil, &env); err != nil {
		return nil, err
	}
	if len(env.Results) == 0 {
		return nil, fmt.Errorf("%w: empty results", ErrMalformedResponse)
	}
	return &env.Results[0], nil
}

func (c *Client) nomination(ctx context.Context, congress int, nominationID string) (*Nomination, error) {
	var env nominationEnvelope
	path := fmt.Sprintf("/%d/nominations/%s.json", congress, url.PathEscape(nominationID))
	if err := c.get(ctx, path, nil, &env); err != nil {
		return nil, err
	}
	if len(env.Results) == 0 {
		return nil, fmt.Errorf("%w: empty results", ErrMalformedResponse)
	}
	return &env.Results[0], nil
}

// get issues an authenticated GET request and decodes the response body
// into out. Transport errors and 5xx responses are retried with backoff,
// see do.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
