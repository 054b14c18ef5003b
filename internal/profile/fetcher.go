package profile

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tauhid-476/anime-tw/internal/cache"
)

// Source is anything that can resolve a handle to a raw profile.
type Source interface {
	Lookup(ctx context.Context, handle string) (*Record, error)
}

// Fetcher is a read-through cached profile lookup. It owns the cache: no
// other component reads or writes it. Concurrent cold misses for the same
// handle are coalesced into one upstream call.
type Fetcher struct {
	source Source
	store  *cache.Store[*Record]
	group  singleflight.Group
	now    func() time.Time
}

func NewFetcher(source Source, ttl time.Duration) *Fetcher {
	return &Fetcher{
		source: source,
		store:  cache.New[*Record](ttl),
		now:    time.Now,
	}
}

// Get returns the profile for handle, fetching from upstream only when the
// cached copy is missing or stale.
func (f *Fetcher) Get(ctx context.Context, handle string) (*Record, error) {
	if handle == "" {
		return nil, ErrMissingHandle
	}

	if rec, ok := f.store.Get(handle); ok {
		return rec, nil
	}

	v, err, _ := f.group.Do(handle, func() (any, error) {
		rec, err := f.source.Lookup(ctx, handle)
		if err != nil {
			return nil, err
		}
		f.derive(rec)
		f.store.Set(handle, rec)
		return rec, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Record), nil
}

// derive fills in the computed metric fields. Account age is clamped to a
// minimum of one day so tweets-per-day never divides by zero for accounts
// created today.
func (f *Fetcher) derive(rec *Record) {
	ageDays := int(f.now().Sub(rec.CreatedAt).Hours() / 24)
	if ageDays < 1 {
		ageDays = 1
	}
	rec.AccountAgeDays = ageDays
	rec.TweetsPerDay = fmt.Sprintf("%.2f", float64(rec.PublicMetrics.TweetCount)/float64(ageDays))
	rec.FollowRatio = FollowRatio(rec.PublicMetrics.FollowingCount, rec.PublicMetrics.FollowersCount)
}

// FollowRatio formats following/followers to two decimal places, or "N/A"
// when there are no followers to divide by.
func FollowRatio(following, followers int) string {
	if followers == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", float64(following)/float64(followers))
}
