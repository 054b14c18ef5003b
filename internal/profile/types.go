package profile

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrMissingHandle = errors.New("profile: handle is required")
	ErrUnauthorized  = errors.New("profile: invalid or expired bearer token")
	ErrUpstream      = errors.New("profile: upstream request failed")
)

// DataError is returned when the upstream API answers the request but reports
// that no user exists for the handle. It carries the raw upstream error
// payload so the route can hand it back to the client as-is.
type DataError struct {
	Details json.RawMessage
}

func (e *DataError) Error() string { return "profile: user data not found" }

// PublicMetrics mirrors the public_metrics object of the Twitter v2 user
// lookup response.
type PublicMetrics struct {
	FollowersCount int `json:"followers_count"`
	FollowingCount int `json:"following_count"`
	TweetCount     int `json:"tweet_count"`
	ListedCount    int `json:"listed_count"`
}

// Record is a user profile as served to clients: the raw upstream fields plus
// the three derived metrics. The derived fields are computed once at fetch
// time and go stale together with the cache entry holding them.
type Record struct {
	ID              string        `json:"id"`
	Username        string        `json:"username"`
	Name            string        `json:"name,omitempty"`
	Description     string        `json:"description,omitempty"`
	Location        string        `json:"location,omitempty"`
	URL             string        `json:"url,omitempty"`
	Verified        bool          `json:"verified"`
	ProfileImageURL string        `json:"profile_image_url,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	PublicMetrics   PublicMetrics `json:"public_metrics"`

	FollowRatio    string `json:"followRatio,omitempty"`
	AccountAgeDays int    `json:"accountAge,omitempty"`
	TweetsPerDay   string `json:"tweetsPerDay,omitempty"`
}
