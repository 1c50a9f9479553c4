package tcgdex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CardFetcher defines the interface for looking up cards by name and id.
// This interface is implemented by *Client and can be used for testing.
type CardFetcher interface {
	SearchCards(ctx context.Context, name string) ([]CardBrief, error)
	GetCard(ctx context.Context, id string) (*Card, error)
}

// Ensure Client implements CardFetcher at compile time.
var _ CardFetcher = (*Client)(nil)

// Client talks to the TCGdex HTTP API.
type Client struct {
	baseURL   *url.URL
	language  string
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "https://api.tcgdex.net"
	defaultLanguage  = "en"
	defaultUserAgent = "cardex/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given API base URL and language code.
// Empty values fall back to the public endpoint and English.
func NewClient(baseURL, language string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	lang := strings.TrimSpace(language)
	if lang == "" {
		lang = defaultLanguage
	}
	return &Client{
		baseURL:  base,
		language: lang,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// SearchCards retrieves the partial card records whose name matches the
// given text. A response that is valid JSON but not an array is treated as
// no matches; the list endpoint answers with an object in some error modes.
func (c *Client) SearchCards(ctx context.Context, name string) ([]CardBrief, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("name", name)
	rel := &url.URL{Path: c.cardsPath(), RawQuery: values.Encode()}
	var payload json.RawMessage
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return decodeCardList(payload)
}

// GetCard retrieves the full record for a single card id.
func (c *Client) GetCard(ctx context.Context, id string) (*Card, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return nil, fmt.Errorf("card id required")
	}
	rel := &url.URL{Path: c.cardsPath() + "/" + trimmed}
	var payload Card
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) cardsPath() string {
	return "/v2/" + c.language + "/cards"
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeCardList(raw json.RawMessage) ([]CardBrief, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, nil
	}
	var briefs []CardBrief
	if err := json.Unmarshal(trimmed, &briefs); err != nil {
		return nil, fmt.Errorf("decode card list: %w", err)
	}
	return briefs, nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base_url %q: %w", baseURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
