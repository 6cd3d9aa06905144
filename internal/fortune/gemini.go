package fortune

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for readings.
const DefaultModel = "gemini-2.5-flash"

// GeminiClient asks Gemini for a JSON reading constrained by ResponseSchema.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini API client. It performs no network I/O.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = DefaultModel
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("fortune: cannot create gemini client: %w", err)
	}
	return &GeminiClient{client: c, model: model}, nil
}

// ResponseSchema is the structured-output schema for a reading.
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			FieldRating: {
				Type:        genai.TypeNumber,
				Description: "Score out of 10",
			},
			FieldTitle: {
				Type:        genai.TypeString,
				Description: "A mystical title for this pour (e.g., 'The Overflowing Heart')",
			},
			FieldFortune: {
				Type:        genai.TypeString,
				Description: "A cryptic but warm fortune telling based on the 'patterns' in the coffee.",
			},
			FieldBaristaComment: {
				Type:        genai.TypeString,
				Description: "Technical feedback on the pour.",
			},
		},
		Required:         RequiredFields,
		PropertyOrdering: RequiredFields,
	}
}

// Generate implements Client.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   ResponseSchema(),
	})
	if err != nil {
		return "", fmt.Errorf("fortune: gemini request: %w", err)
	}
	if resp == nil {
		return "", ErrNoContent
	}
	text := resp.Text()
	if text == "" {
		return "", ErrNoContent
	}
	return text, nil
}

var _ Client = (*GeminiClient)(nil)
