package advisory

import (
	"context"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	_ "embed"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/faloii/resumerecommend/internal/types"
)

//go:embed prompt.md
var promptText string

var promptTemplate = template.Must(template.New("advisory").Parse(promptText))

const (
	// DefaultModel balances latency against ranking quality for a batch of
	// fifteen postings.
	DefaultModel = "gemini-2.0-flash"

	promptLogPreview = 200
)

// contentGenerator is the slice of the Gemini client the advisor uses,
// kept narrow so tests can substitute a fake.
type contentGenerator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// GeminiAdvisor ranks postings through the Gemini API.
type GeminiAdvisor struct {
	generator contentGenerator
	logger    *zap.Logger
}

// geminiGenerator wraps *genai.Client as a contentGenerator.
type geminiGenerator struct {
	client *genai.Client
	model  string
}

func (g *geminiGenerator) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return extractText(resp)
}

// NewGeminiAdvisor builds an advisor over a real Gemini client.
func NewGeminiAdvisor(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiAdvisor, func() error, error) {
	if apiKey == "" {
		return nil, nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	advisor := &GeminiAdvisor{
		generator: &geminiGenerator{client: client, model: model},
		logger:    logger,
	}
	return advisor, client.Close, nil
}

// NewGeminiAdvisorWithGenerator wires an advisor over any content
// generator.
func NewGeminiAdvisorWithGenerator(generator contentGenerator, logger *zap.Logger) *GeminiAdvisor {
	return &GeminiAdvisor{generator: generator, logger: logger}
}

// Rank renders the prompt, calls the model once and parses the response
// into an advisory result. Any failure is returned as-is; the caller's
// fallback path handles it.
func (a *GeminiAdvisor) Rank(ctx context.Context, req *Request) (*types.AdvisoryResult, error) {
	prompt, err := buildPrompt(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build advisory prompt: %w", err)
	}

	a.logger.Debug("advisory request",
		zap.Int("postings", len(req.Scored)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", preview(prompt, promptLogPreview)),
	)

	raw, err := a.generator.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("advisory generation failed: %w", err)
	}

	a.logger.Debug("advisory response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", preview(raw, promptLogPreview)),
	)

	result, err := parseResult(raw)
	if err != nil {
		return nil, err
	}
	return result, nil
}

type promptData struct {
	ResumeText string
	Category   string
	Roles      string
	Years      int
	Skills     string
	Companies  string
	Education  string
	Domains    string
	Quality    types.ResumeQuality
	Postings   string
}

func buildPrompt(req *Request) (string, error) {
	data := promptData{
		ResumeText: req.ResumeText,
		Category:   req.Profile.JobCategory,
		Roles:      joinOrUnknown(req.Profile.JobRoles),
		Years:      req.Profile.ExperienceYears,
		Skills:     joinOrUnknown(headOf(req.Profile.Skills, 10)),
		Companies:  joinOrUnknown(companyNames(req.Profile)),
		Education:  educationLine(req.Profile),
		Domains:    joinOrUnknown(req.Profile.Domains),
		Quality:    req.Quality,
		Postings:   postingsContext(req),
	}

	var sb strings.Builder
	if err := promptTemplate.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func postingsContext(req *Request) string {
	var sb strings.Builder
	for i, item := range req.Scored {
		p := item.Posting
		fmt.Fprintf(&sb, "[Posting %d]\n", i)
		fmt.Fprintf(&sb, "ID: %s\n", p.ID)
		fmt.Fprintf(&sb, "Title: %s\n", p.Title)
		fmt.Fprintf(&sb, "Company: %s\n", p.Company)
		fmt.Fprintf(&sb, "Location: %s\n", p.Location)
		fmt.Fprintf(&sb, "Description: %s\n", p.Description)
		fmt.Fprintf(&sb, "Requirements: %s\n", p.Requirements)
		fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(p.Tags, ", "))
		fmt.Fprintf(&sb, "Pre-match score: %d/100\n", item.Score.Total())
		if i < len(req.Scored)-1 {
			sb.WriteString("\n---\n")
		}
	}
	return sb.String()
}

func companyNames(profile *types.CandidateProfile) []string {
	names := make([]string, 0, len(profile.Companies))
	for _, c := range profile.Companies {
		names = append(names, c.Name)
	}
	return names
}

func educationLine(profile *types.CandidateProfile) string {
	if profile.Education == nil {
		return "unknown"
	}
	return fmt.Sprintf("%s (%s)", profile.Education.Level, profile.Education.Tier)
}

func joinOrUnknown(items []string) string {
	if len(items) == 0 {
		return "unknown"
	}
	return strings.Join(items, ", ")
}

func headOf(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func preview(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
