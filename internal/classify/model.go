package classify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/KrisKind75/ai-accounting-app/internal/core"
)

// ErrModelUnavailable covers every failure mode of the model path: missing
// credentials, network or auth errors, timeouts, and unparseable output.
// Callers fall back to Keyword and never surface this to the user.
var ErrModelUnavailable = errors.New("model classifier unavailable")

const (
	// systemInstruction asks the model to lead with one of the literal
	// intent tokens; anything after the token is ignored.
	systemInstruction = "You are an accounting assistant. Parse user input and respond with: EXPENSE, INCOME, or QUERY followed by relevant details."

	DefaultModel = "gemini-2.0-flash"

	callTimeout     = 10 * time.Second
	maxOutputTokens = 150
)

// ModelClassifier classifies intents via a Gemini chat completion.
type ModelClassifier struct {
	client *genai.Client
	model  string
}

// NewModelClassifier builds a classifier against the Gemini API. An empty
// API key is reported as ErrModelUnavailable so the caller can log "AI
// disabled" once and run keyword-only.
func NewModelClassifier(ctx context.Context, apiKey, model string) (*ModelClassifier, error) {
	if apiKey == "" {
		return nil, ErrModelUnavailable
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create client: %v", ErrModelUnavailable, err)
	}
	return &ModelClassifier{client: client, model: model}, nil
}

// Classify sends the text to the model and parses the intent token out of
// the reply. Any failure maps to ErrModelUnavailable.
func (c *ModelClassifier) Classify(ctx context.Context, text string) (core.Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(text),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0),
			MaxOutputTokens:   maxOutputTokens,
		})
	if err != nil {
		slog.WarnContext(ctx, "Model classification failed", "error", err)
		return core.IntentUnknown, fmt.Errorf("%w: generate content: %v", ErrModelUnavailable, err)
	}

	intent, err := ParseIntentResponse(resp.Text())
	if err != nil {
		slog.WarnContext(ctx, "Model returned unparseable intent", "error", err)
		return core.IntentUnknown, err
	}
	return intent, nil
}

// ParseIntentResponse scans a model reply for the literal intent tokens.
// EXPENSE is checked before INCOME before QUERY, so a reply containing both
// "EXPENSE" and "INCOME" resolves to Expense. The original system routed any
// parseable non-expense, non-income reply to the query handler, so QUERY is
// the resolution for replies that name none of the tokens but are non-empty.
func ParseIntentResponse(reply string) (core.Intent, error) {
	if strings.TrimSpace(reply) == "" {
		return core.IntentUnknown, fmt.Errorf("%w: empty model response", ErrModelUnavailable)
	}
	switch {
	case strings.Contains(reply, string(core.IntentExpense)):
		return core.IntentExpense, nil
	case strings.Contains(reply, string(core.IntentIncome)):
		return core.IntentIncome, nil
	default:
		return core.IntentQuery, nil
	}
}
