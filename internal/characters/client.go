// Package characters searches the Jikan API for anime characters. The server
// proxies it so the selection UI stays same-origin.
package characters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://api.jikan.moe/v4"
	searchLimit    = 5
)

var ErrSearchFailed = errors.New("characters: search request failed")

// Character is one search result, trimmed to what the selection UI renders.
type Character struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type searchResponse struct {
	Data []struct {
		MalID  int    `json:"mal_id"`
		Name   string `json:"name"`
		Images struct {
			JPG struct {
				ImageURL string `json:"image_url"`
			} `json:"jpg"`
		} `json:"images"`
	} `json:"data"`
}

// Search returns up to five characters matching query.
func (c *Client) Search(ctx context.Context, query string) ([]Character, error) {
	searchURL := fmt.Sprintf("%s/characters?q=%s&limit=%d", c.baseURL, url.QueryEscape(query), searchLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrSearchFailed, resp.StatusCode)
	}

	var search searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrSearchFailed, err)
	}

	results := make([]Character, 0, len(search.Data))
	for _, char := range search.Data {
		results = append(results, Character{
			ID:    char.MalID,
			Name:  char.Name,
			Image: char.Images.JPG.ImageURL,
		})
	}
	return results, nil
}
