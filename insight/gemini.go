package insight

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultGeminiModel is the model used when none is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

const systemInstruction = `
Você é um Controller Financeiro Sênior. Você lê balanços patrimoniais e
indicadores financeiros e escreve análises objetivas para a diretoria.
Seja direto, profissional, e não invente números que não foram fornecidos.
`

// Gemini generates text with the Gemini API.
type Gemini struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	client    *genai.Client
}

// NewGemini creates a Gemini generator. An empty apiKey falls back to the
// GEMINI_API_KEY or GOOGLE_API_KEY environment variables.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create Gemini client: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		},
		client: client,
	}, nil
}

// Generate sends prompt as a single user turn.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.ModelName, genai.Text(prompt), g.Config)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from %s", g.ModelName)
	}
	return resp.Text(), nil
}
