package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"finlit-bot/models"
)

const defaultGeminiModel = "gemini-2.5-flash"

// Locale-specific system instructions asking for a bare definition with no
// introductory phrase
const (
	fallbackInstructionEN = "You are an expert, helpful financial assistant. The user is asking for a definition of a financial term or acronym. " +
		"Respond with ONLY the clean, concise definition or explanation, without any introductory phrases like 'It stands for...' or 'The definition is...'. " +
		"Start your response directly with the term's meaning."
	fallbackInstructionHI = "You are an expert, helpful financial assistant. The user is asking for a definition of a financial term. " +
		"Respond with a clean, concise definition or explanation in **Hindi (Devanagari script)**. " +
		"Do not include any introductory phrases like 'इसका मतलब है' or 'परिभाषा यह है'."
)

// Hindi preamble phrases stripped from model output
var hindiPreambles = []string{"इसका मतलब है", "परिभाषा यह है", "को संदर्भित करता है", "है"}

// Generator produces a definition for a query that local retrieval could not
// answer. It is called at most once per request.
type Generator interface {
	Explain(ctx context.Context, utterance string, lang models.Language) (string, error)
}

// GeminiGenerator calls the Gemini API for fallback definitions
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates the Gemini-backed generator. The model name
// falls back to the production default when empty.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("Gemini API key not configured")
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// Explain asks Gemini for a definition in the target locale and strips any
// preamble the model added anyway
func (g *GeminiGenerator) Explain(ctx context.Context, utterance string, lang models.Language) (string, error) {
	instruction := fallbackInstructionEN
	if lang == models.LangHindi {
		instruction = fallbackInstructionHI
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(utterance), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
	})
	if err != nil {
		slog.Error("Gemini fallback call failed", "error", err, "lang", lang)
		return "", &GenerationError{Err: err}
	}

	text := resp.Text()
	if text == "" {
		return "", &GenerationError{Err: errors.New("empty response from Gemini")}
	}

	slog.Info("Gemini fallback response generated",
		"lang", lang,
		"responseLength", len(text),
	)

	return cleanGeneratedText(text, utterance), nil
}

// UnavailableGenerator always fails. It stands in when the Gemini client
// cannot be constructed and doubles as the test generator, keeping the
// degrade path an injected capability rather than a runtime type swap.
type UnavailableGenerator struct {
	Reason error
}

func (g UnavailableGenerator) Explain(ctx context.Context, utterance string, lang models.Language) (string, error) {
	return "", &GenerationError{Err: g.Reason}
}

// cleanGeneratedText strips known preamble phrases so only the core
// definition remains. English prefixes match case-insensitively and include
// two forms derived from the query itself; Hindi prefixes match after
// whitespace trimming.
func cleanGeneratedText(text, query string) string {
	queryLower := strings.ToLower(query)
	cleaned := text

	englishPreambles := []string{
		queryLower + " stands for",
		queryLower + " is",
		"it stands for",
		"stands for",
		"the definition is",
		"refers to",
		"is the",
	}

	lower := strings.ToLower(cleaned)
	for _, preamble := range englishPreambles {
		if strings.HasPrefix(lower, preamble) {
			cleaned = strings.Trim(cleaned[len(preamble):], ":,.- ")
			break
		}
	}

	trimmed := strings.TrimSpace(cleaned)
	for _, preamble := range hindiPreambles {
		if strings.HasPrefix(trimmed, preamble) {
			cleaned = strings.Trim(trimmed[len(preamble):], ":,.- ")
			break
		}
	}

	return cleaned
}
