package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/tauhid-476/anime-tw/internal/llm"
)

const model = "gemini-2.5-flash"

// Provider generates roasts with the Gemini API.
type Provider struct {
	client *genai.Client
}

func NewProvider(ctx context.Context, apiKey string) (*Provider, error) {
	genClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		client: genClient,
	}, nil
}

// Roast sends the rendered persona prompt as a single-turn request with a
// fixed sampling configuration and returns the generated text untouched.
func (p *Provider) Roast(ctx context.Context, req llm.RoastRequest) (string, error) {
	if req.Profile == nil || req.Character == "" {
		return "", llm.ErrMissingInput
	}

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](1),
		TopP:             genai.Ptr[float32](0.95),
		TopK:             genai.Ptr[float32](64),
		MaxOutputTokens:  8192,
		ResponseMIMEType: "text/plain",
	}

	prompt := llm.RoastPrompt(req.Profile, req.Character)

	res, err := p.client.Models.GenerateContent(
		ctx,
		model,
		genai.Text(prompt),
		config,
	)
	if err != nil {
		return "", fmt.Errorf("generate roast: %w", err)
	}

	// Safety-blocked prompts come back with no candidates.
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", llm.ErrEmptyCompletion
	}

	return res.Candidates[0].Content.Parts[0].Text, nil
}
