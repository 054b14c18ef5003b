package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://api.twitter.com"
	userAgent      = "anime-tw"
	userFields     = "description,public_metrics,profile_image_url,created_at,location,verified,url,entities"
)

// Client looks up user profiles on the Twitter v2 API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(bearerToken string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		token:   bearerToken,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type lookupResponse struct {
	Data   *Record         `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

// Lookup fetches the raw profile for handle. The derived metric fields of the
// returned Record are left unset; the Fetcher fills them in.
func (c *Client) Lookup(ctx context.Context, handle string) (*Record, error) {
	if handle == "" {
		return nil, ErrMissingHandle
	}

	lookupURL := fmt.Sprintf("%s/2/users/by/username/%s?user.fields=%s",
		c.baseURL, url.PathEscape(handle), url.QueryEscape(userFields))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}

	var lookup lookupResponse
	if err := json.Unmarshal(body, &lookup); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrUpstream, err)
	}

	// A 200 with an errors array means the handle does not resolve to a user.
	// That is a result, not a transport failure.
	if len(lookup.Errors) > 0 {
		return nil, &DataError{Details: lookup.Errors}
	}
	if lookup.Data == nil {
		return nil, fmt.Errorf("%w: empty response body", ErrUpstream)
	}

	return lookup.Data, nil
}
