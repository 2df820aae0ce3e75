package llm

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/bytedance/sonic"
	"github.com/google/generative-ai-go/genai"
	errorvalues "github.com/limbo/alimentify/internal/error_values"
	"github.com/limbo/alimentify/internal/service"
	"github.com/limbo/alimentify/pkg/cleanup"
	"google.golang.org/api/option"
)

//go:embed narrative_prompt.md
var narrativePrompt string

var promptTemplate = template.Must(template.New("narrative").Funcs(template.FuncMap{
	"pct": func(ratio float64) string {
		return fmt.Sprintf("%.0f%%", ratio*100)
	},
}).Parse(narrativePrompt))

type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	// Passed to the prompt. The report service enforces its own limit as well
	MaxRecommendations int
}

// ContentGenerator is the subset of *genai.GenerativeModel the generator needs.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Gemini writes report narratives with a Gemini model.
type Gemini struct {
	model              ContentGenerator
	maxRecommendations int
}

func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client error: %w", err)
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing gemini client",
		F:    client.Close,
	})
	if cfg.Model == "" {
		cfg.Model = "gemini-1.5-flash"
	}
	model := client.GenerativeModel(cfg.Model)
	model.ResponseMIMEType = "application/json"
	if cfg.Temperature > 0 {
		model.SetTemperature(cfg.Temperature)
	}
	return NewGeminiWithModel(model, cfg.MaxRecommendations), nil
}

func NewGeminiWithModel(model ContentGenerator, maxRecommendations int) *Gemini {
	if maxRecommendations <= 0 {
		maxRecommendations = 5
	}
	return &Gemini{
		model:              model,
		maxRecommendations: maxRecommendations,
	}
}

type promptData struct {
	service.NarrativeContext
	MaxRecommendations int
}

type narrativeResponse struct {
	Insights        string   `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

func (g *Gemini) Generate(ctx context.Context, nc service.NarrativeContext) (*service.Narrative, error) {
	var prompt bytes.Buffer
	err := promptTemplate.Execute(&prompt, promptData{NarrativeContext: nc, MaxRecommendations: g.maxRecommendations})
	if err != nil {
		return nil, fmt.Errorf("%w: building prompt: %v", errorvalues.ErrGenerationError, err)
	}
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		return nil, generationError(ctx, err)
	}
	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	var parsed narrativeResponse
	if err = sonic.UnmarshalString(stripCodeFence(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding model answer: %v", errorvalues.ErrGenerationError, err)
	}
	parsed.Insights = strings.TrimSpace(parsed.Insights)
	if parsed.Insights == "" {
		return nil, fmt.Errorf("%w: model answered without insights", errorvalues.ErrGenerationError)
	}
	return &service.Narrative{
		Text:            parsed.Insights,
		Recommendations: parsed.Recommendations,
	}, nil
}

func generationError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", errorvalues.ErrGenerationTimeout, err)
	}
	return fmt.Errorf("%w: %v", errorvalues.ErrGenerationError, err)
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no content generated", errorvalues.ErrGenerationError)
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: generated content is not text", errorvalues.ErrGenerationError)
	}
	return sb.String(), nil
}

// stripCodeFence unwraps answers like ```json {...} ```.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// Disabled is used when no API key is configured. Every report is stored without insights.
type Disabled struct{}

func (Disabled) Generate(ctx context.Context, nc service.NarrativeContext) (*service.Narrative, error) {
	return nil, fmt.Errorf("%w: narrative generation is not configured", errorvalues.ErrGenerationError)
}
