package llm

import (
	"context"
	"errors"

	"github.com/tauhid-476/anime-tw/internal/profile"
)

var (
	ErrMissingInput    = errors.New("llm: userData and character are required")
	ErrEmptyCompletion = errors.New("llm: model returned no candidates")
)

// RoastRequest is a single roast-generation call: the profile to roast and
// the character whose voice to roast it in.
type RoastRequest struct {
	Profile   *profile.Record
	Character string
}

// Roaster generates a roast message from profile metrics. Implementations
// make a single-turn model call with no conversation history and pass the
// generated text through unmodified.
type Roaster interface {
	Roast(ctx context.Context, req RoastRequest) (string, error)
}
