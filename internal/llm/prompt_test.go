package llm

import (
	"strings"
	"testing"
	"time"

	"github.com/tauhid-476/anime-tw/internal/profile"
)

func roastableRecord() *profile.Record {
	return &profile.Record{
		Username:    "alice",
		Description: "just here",
		CreatedAt:   time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
		PublicMetrics: profile.PublicMetrics{
			FollowersCount: 100,
			FollowingCount: 50,
			TweetCount:     200,
		},
		FollowRatio:    "0.50",
		AccountAgeDays: 100,
		TweetsPerDay:   "2.00",
	}
}

func TestRoastPromptIsDeterministic(t *testing.T) {
	rec := roastableRecord()
	first := RoastPrompt(rec, "Gojo")
	second := RoastPrompt(rec, "Gojo")
	if first != second {
		t.Fatal("same inputs produced different prompts")
	}
}

func TestRoastPromptEmbedsProfileFields(t *testing.T) {
	got := RoastPrompt(roastableRecord(), "Gojo")

	for _, want := range []string{
		"Gojo",
		"*username:* alice",
		"*description:* just here",
		"*followers:* 100",
		"*following:* 50",
		"*tweet count:* 200",
		"*follow ratio:* 0.50",
		"*account age (days):* 100",
		"*tweets per day:* 2.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestRoastPromptDefaultsEmptyDescription(t *testing.T) {
	rec := roastableRecord()
	rec.Description = ""
	got := RoastPrompt(rec, "Gojo")
	if !strings.Contains(got, "no description provided") {
		t.Error("empty description not defaulted")
	}
}

func TestRoastPromptComputesMissingFollowRatio(t *testing.T) {
	// A record posted back by the client may carry only the raw counts.
	rec := roastableRecord()
	rec.FollowRatio = ""
	if got := RoastPrompt(rec, "Gojo"); !strings.Contains(got, "*follow ratio:* 0.50") {
		t.Errorf("follow ratio not recomputed from counts:\n%s", got)
	}

	rec.FollowRatio = ""
	rec.PublicMetrics.FollowersCount = 0
	if got := RoastPrompt(rec, "Gojo"); !strings.Contains(got, "*follow ratio:* N/A") {
		t.Error("zero-follower record did not use the N/A sentinel")
	}
}
