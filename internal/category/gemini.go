package category

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// DefaultModel is the classifier model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// batchSize bounds the number of names sent per classifier request.
const batchSize = 40

// ErrNoAPIKey is returned before any network call when no credential is
// configured.
var ErrNoAPIKey = errors.New("classifier API key not configured")

// Gemini classifies merchant names with a remote model. Batches are sent
// sequentially; a failed request aborts the remaining batches, while a
// reply that cannot be parsed degrades that one batch to the heuristic.
type Gemini struct {
	apiKey    string
	model     string
	heuristic Heuristic
	log       zerolog.Logger

	client *genai.Client
	// classify performs one batch request; swapped out in tests.
	classify func(ctx context.Context, names []string) (map[string]string, error)
}

// NewGemini creates a Gemini classifier. The model falls back to
// DefaultModel when empty.
func NewGemini(apiKey, model string, log zerolog.Logger) *Gemini {
	if model == "" {
		model = DefaultModel
	}
	g := &Gemini{apiKey: apiKey, model: model, log: log}
	g.classify = g.classifyBatch
	return g
}

// ClassifyInto classifies names in batches, merging each batch's result
// into m as it completes. On a request failure the remaining batches are
// not sent and the error is returned; results already merged stay merged.
func (g *Gemini) ClassifyInto(ctx context.Context, names []string, m *Map) error {
	if g.apiKey == "" {
		return ErrNoAPIKey
	}

	for start := 0; start < len(names); start += batchSize {
		end := start + batchSize
		if end > len(names) {
			end = len(names)
		}
		batch := names[start:end]

		result, err := g.classify(ctx, batch)
		if err != nil {
			return fmt.Errorf("classifying batch %d: %w", start/batchSize+1, err)
		}
		m.Merge(result)
		g.log.Debug().Int("batch", start/batchSize+1).Int("names", len(batch)).
			Msg("classifier batch merged")
	}
	return nil
}

// classifyBatch sends one request and returns a category for every name
// in the batch, falling back to the heuristic per name when the reply is
// unusable.
func (g *Gemini) classifyBatch(ctx context.Context, names []string) (map[string]string, error) {
	if g.client == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("creating classifier client: %w", err)
		}
		g.client = client
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: buildPrompt(names)}},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	return g.parseReply(resp.Text(), names), nil
}

// buildPrompt asks for a single JSON object mapping each name to one
// taxonomy category.
func buildPrompt(names []string) string {
	var b strings.Builder
	b.WriteString("You are a bank transaction categorizer.\n\n")
	b.WriteString("Assign each merchant or transaction description below to exactly one of these categories:\n")
	for _, c := range Taxonomy {
		b.WriteString("- " + c + "\n")
	}
	b.WriteString("\nDescriptions:\n")
	for _, n := range names {
		b.WriteString("- " + n + "\n")
	}
	b.WriteString("\nReturn ONLY a single raw JSON object whose keys are the exact descriptions ")
	b.WriteString("above and whose values are one of the category names. ")
	b.WriteString("No Markdown, no code fences, no extra text.\n")
	return b.String()
}

// parseReply extracts name → category from a model reply. Strict JSON is
// tried first, then the first object-shaped substring of the body. When
// neither parses, or an individual name is missing or mapped outside the
// taxonomy, the heuristic supplies that name's category.
func (g *Gemini) parseReply(raw string, names []string) map[string]string {
	parsed, ok := decodeObject(raw)
	if !ok {
		if sub, found := firstJSONObject(raw); found {
			parsed, ok = decodeObject(sub)
		}
	}
	if !ok {
		g.log.Warn().Msg("classifier reply unparseable, batch degraded to heuristic")
		parsed = nil
	}

	result := make(map[string]string, len(names))
	for _, name := range names {
		cat, found := parsed[name]
		if !found || !InTaxonomy(cat) {
			cat = g.heuristic.Categorize(name)
		}
		result[name] = cat
	}
	return result
}

func decodeObject(s string) (map[string]string, bool) {
	var m map[string]string
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &m); err != nil {
		return nil, false
	}
	return m, true
}

// firstJSONObject returns the substring from the first "{" to the last
// "}", which recovers objects wrapped in code fences or prose.
func firstJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
