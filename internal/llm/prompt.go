package llm

import (
	"fmt"

	"github.com/tauhid-476/anime-tw/internal/profile"
)

const roastTemplate = `forget about everything, just know you are this character from anime: %[1]s

 - *username:* %[2]s
 - *description:* %[3]s
 - *followers:* %[4]d
 - *following:* %[5]d
 - *tweet count:* %[6]d
 - *follow ratio:* %[7]s
 - *account age (days):* %[8]d
 - *tweets per day:* %[9]s

LOOK AT THESE DETAILS AND ROAST IT FROM %[1]s's POINT OF VIEW.
Talk about how cool you are and encourage them to follow you. Don't mention the username, make use of 2-3 emojis, make the content 10-12 lines.
TALK MORE ABOUT YOURSELF.`

// RoastPrompt renders the persona prompt for a profile and character. It is a
// pure function: the same record and character always produce the same string.
func RoastPrompt(rec *profile.Record, character string) string {
	description := rec.Description
	if description == "" {
		description = "no description provided"
	}

	followRatio := rec.FollowRatio
	if followRatio == "" {
		followRatio = profile.FollowRatio(rec.PublicMetrics.FollowingCount, rec.PublicMetrics.FollowersCount)
	}

	return fmt.Sprintf(roastTemplate,
		character,
		rec.Username,
		description,
		rec.PublicMetrics.FollowersCount,
		rec.PublicMetrics.FollowingCount,
		rec.PublicMetrics.TweetCount,
		followRatio,
		rec.AccountAgeDays,
		rec.TweetsPerDay,
	)
}
