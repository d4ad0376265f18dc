package courseapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/courselens/courselens-backend/internal/model"
	"github.com/rs/zerolog"
)

// notFoundSentinel is the literal body the upstream serves instead of a
// record array when a query matches nothing.
const notFoundSentinel = "Course not found"

// Client issues queries against the upstream course-data API.
//
// The client never retries and carries no timeout of its own; callers bound
// requests through ctx. Failures come back as tagged results (record
// endpoints) or plain errors (metadata endpoints), never panics.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a catalog client for the given base URL.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		log:     log.With().Str("component", "courseapi_client").Logger(),
	}
}

// Search queries GET /search and returns the tagged record result.
func (c *Client) Search(ctx context.Context, query string) Result {
	return c.fetchRecords(ctx, "/search", url.Values{"query": {query}})
}

// Sections queries GET /sections and returns the tagged record result.
func (c *Client) Sections(ctx context.Context, query string) Result {
	return c.fetchRecords(ctx, "/sections", url.Values{"query": {query}})
}

// Requirements queries GET /requirements for a gen-ed category.
func (c *Client) Requirements(ctx context.Context, query string) Result {
	return c.fetchRecords(ctx, "/requirements", url.Values{"query": {query}})
}

// SubjectInfo fetches the display label for one subject code.
func (c *Client) SubjectInfo(ctx context.Context, code string) (*model.SubjectInfo, error) {
	var info model.SubjectInfo
	if err := c.getJSON(ctx, "/subject-info", url.Values{"subject": {code}}, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SubjectNames fetches the full subject directory.
func (c *Client) SubjectNames(ctx context.Context) ([]model.SubjectName, error) {
	var names []model.SubjectName
	if err := c.getJSON(ctx, "/subject-names", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// ProfessorStats fetches instructor GPA aggregates for a class.
func (c *Client) ProfessorStats(ctx context.Context, class string) ([]model.ProfessorStats, error) {
	var stats []model.ProfessorStats
	if err := c.getJSON(ctx, "/professor-stats", url.Values{"class": {class}}, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// RateMyProfessor fetches external rating aggregates for a query.
func (c *Client) RateMyProfessor(ctx context.Context, query string) ([]model.RMPRating, error) {
	var ratings []model.RMPRating
	if err := c.getJSON(ctx, "/rmp", url.Values{"query": {query}}, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

// fetchRecords issues a GET and decodes either the not-found sentinel or an
// array of positional course-record arrays.
func (c *Client) fetchRecords(ctx context.Context, path string, query url.Values) Result {
	body, err := c.get(ctx, path, query)
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("Catalog request failed")
		return Result{Status: StatusError, Err: err}
	}

	if isNotFoundBody(body) {
		return Result{Status: StatusNotFound}
	}

	var rows [][]any
	if err := json.Unmarshal(body, &rows); err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("Catalog response decode failed")
		return Result{Status: StatusError, Err: fmt.Errorf("decode %s response: %w", path, err)}
	}

	return Result{Status: StatusOK, Records: decodeRecords(rows)}
}

// getJSON issues a GET and decodes a plain JSON body into dst.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, dst any) error {
	body, err := c.get(ctx, path, query)
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("Catalog request failed")
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog request: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

// isNotFoundBody recognizes the upstream sentinel whether it arrives as a
// bare string or a JSON-encoded one.
func isNotFoundBody(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	if string(trimmed) == notFoundSentinel {
		return true
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil && s == notFoundSentinel {
		return true
	}
	return false
}
