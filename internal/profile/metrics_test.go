package profile

import (
	"testing"
	"time"
)

func deriveAt(t *testing.T, rec *Record, now time.Time) {
	t.Helper()
	f := NewFetcher(nil, time.Minute)
	f.now = func() time.Time { return now }
	f.derive(rec)
}

func TestDeriveAliceScenario(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := &Record{
		Username:  "alice",
		CreatedAt: now.Add(-100 * 24 * time.Hour),
		PublicMetrics: PublicMetrics{
			FollowersCount: 100,
			FollowingCount: 50,
			TweetCount:     200,
		},
	}
	deriveAt(t, rec, now)

	if rec.FollowRatio != "0.50" {
		t.Errorf("FollowRatio = %q, want 0.50", rec.FollowRatio)
	}
	if rec.AccountAgeDays != 100 {
		t.Errorf("AccountAgeDays = %d, want 100", rec.AccountAgeDays)
	}
	if rec.TweetsPerDay != "2.00" {
		t.Errorf("TweetsPerDay = %q, want 2.00", rec.TweetsPerDay)
	}
}

func TestDeriveAgeFloors(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := &Record{CreatedAt: now.Add(-36 * time.Hour)}
	deriveAt(t, rec, now)

	if rec.AccountAgeDays != 1 {
		t.Errorf("AccountAgeDays = %d, want 1 (36h floors to 1 day)", rec.AccountAgeDays)
	}
}

func TestDeriveDayZeroAccountClampsToOneDay(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := &Record{
		CreatedAt:     now.Add(-3 * time.Hour),
		PublicMetrics: PublicMetrics{TweetCount: 7},
	}
	deriveAt(t, rec, now)

	if rec.AccountAgeDays != 1 {
		t.Errorf("AccountAgeDays = %d, want 1", rec.AccountAgeDays)
	}
	if rec.TweetsPerDay != "7.00" {
		t.Errorf("TweetsPerDay = %q, want 7.00", rec.TweetsPerDay)
	}
}

func TestFollowRatio(t *testing.T) {
	cases := []struct {
		name      string
		following int
		followers int
		want      string
	}{
		{"even split", 50, 100, "0.50"},
		{"more following", 300, 100, "3.00"},
		{"zero followers", 50, 0, "N/A"},
		{"zero followers zero following", 0, 0, "N/A"},
		{"rounding", 1, 3, "0.33"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FollowRatio(tc.following, tc.followers); got != tc.want {
				t.Errorf("FollowRatio(%d, %d) = %q, want %q", tc.following, tc.followers, got, tc.want)
			}
		})
	}
}
