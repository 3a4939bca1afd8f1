// internal/app/features/inference/gemini.go
package inference

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dalemusser/resourcehub/internal/app/system/monthyear"
	"google.golang.org/genai"
)

// metadataPrompt instructs the model to act as a content analyzer. The
// duration hints target course platforms that list "This course
// includes:" (or its Spanish equivalent); the last-update hints target
// the "Last updated" label. Blank beats invented.
const metadataPrompt = `You are an intelligent web content analyzer. Your task is to analyze the provided resource name and URL to infer specific details about the content.

Resource Name: %s
Resource URL: %s

Based on this information, please provide your best estimate for the following fields:
1.  **duration**: Gets the duration or time required to consume this resource (e.g., "3.5 hours of video on demand," "30 minutes," etc.). The value appears after the "This course includes:" or "Este curso incluye:" label. If found some value, return me "Xh" in case hours and "Xm" in case minutes.
2.  **manualLastUpdate**: The date the content was last updated, in strict MM/YYYY format. Within visible content, get the value (with MM/YYYY format) after of "Last updated" o "Última actualización" label.

If you cannot confidently determine a value for any field, leave it blank. Do not invent information. Your response must be in the requested JSON format.`

// Gemini infers resource metadata with Google's Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini inferencer. The API key must be non-empty;
// bootstrap skips construction entirely when inference is disabled.
func NewGemini(apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

// InferMetadata asks the model for duration and last-update estimates.
// The response is constrained to a JSON object; a last-update value that
// is not strict MM/YYYY is dropped rather than passed along, since it
// would only fail validation downstream.
func (g *Gemini) InferMetadata(ctx context.Context, name, url string) (Metadata, error) {
	prompt := fmt.Sprintf(metadataPrompt, name, url)

	result, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"duration":         {Type: genai.TypeString},
					"manualLastUpdate": {Type: genai.TypeString},
				},
			},
		},
	)
	if err != nil {
		return Metadata{}, fmt.Errorf("generate content: %w", err)
	}

	var meta Metadata
	if err := json.Unmarshal([]byte(result.Text()), &meta); err != nil {
		return Metadata{}, fmt.Errorf("parse model response: %w", err)
	}

	if meta.ManualLastUpdate != "" && !monthyear.Valid(meta.ManualLastUpdate) {
		meta.ManualLastUpdate = ""
	}

	return meta, nil
}
