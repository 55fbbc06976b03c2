package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// NewTranslator returns a page translator backed by the Gemini API.
func NewTranslator(ctx context.Context, apiKey string) (*Translator, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Translator{client: client, model: defaultModel}, nil
}

type Translator struct {
	client *genai.Client
	model  string
}

func (self *Translator) WithModel(name string) *Translator {
	self.model = name
	return self
}

// Translate renders text into the target language. An empty source means
// the model detects the source language itself.
func (self *Translator) Translate(ctx context.Context, text, source,
	target string,
) (string, error) {
	contents := []*genai.Content{
		{
			Parts: []*genai.Part{{Text: prompt(text, source, target)}},
			Role:  "user",
		},
	}

	resp, err := self.client.Models.GenerateContent(ctx, self.model,
		contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	return strings.TrimRight(resp.Text(), "\n"), nil
}

func prompt(text, source, target string) string {
	if source == "" {
		return fmt.Sprintf(
			"Translate the following text into %s. Reply with the translation only, keeping the original line breaks.\n\n%s",
			target, text)
	}
	return fmt.Sprintf(
		"Translate the following text from %s into %s. Reply with the translation only, keeping the original line breaks.\n\n%s",
		source, target, text)
}
