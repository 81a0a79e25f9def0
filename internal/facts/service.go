package facts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

const factMaxTokens = 256

var factSchema = &Schema{
	Name:        "element-fact",
	Description: "A single short scientific fact about a chemical element.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"fact": map[string]any{
				"type":        "string",
				"description": "One scientific fact, under 150 characters.",
			},
		},
		"required":             []any{"fact"},
		"additionalProperties": false,
	},
}

// Service answers element fact lookups. It never returns an error: any
// provider failure degrades to a canned sentence so the UI always has
// something to show.
type Service struct {
	provider Provider
}

// NewService creates a fact service backed by the given provider.
func NewService(p Provider) *Service {
	return &Service{provider: p}
}

// ElementFact returns one short fact about the named element.
func (s *Service) ElementFact(ctx context.Context, element string) string {
	ctx = WithElement(ctx, element)

	req := Request{
		Prompt: fmt.Sprintf(
			"Give me one mind-blowing, high-level scientific fact about the chemical element %s. Keep it under 150 characters. Be precise and sophisticated.",
			element,
		),
		Schema:      factSchema,
		MaxTokens:   factMaxTokens,
		Temperature: 0.7,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return fmt.Sprintf("The electronic structure of %s plays a critical role in standard model chemical bonding.", element)
	}

	var out struct {
		Fact string `json:"fact"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil || strings.TrimSpace(out.Fact) == "" {
		return fmt.Sprintf("The atomic resonance of %s reveals unique properties in high-energy physics contexts.", element)
	}

	return strings.TrimSpace(out.Fact)
}
