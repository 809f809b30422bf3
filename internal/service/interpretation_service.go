package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/meowcdd/config"
	"github.com/lshigami/meowcdd/internal/model"
	"github.com/lshigami/meowcdd/internal/scoring"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// InterpretationService writes the narrative interpretation of a scored record.
// It never fails: when the model is unavailable a template text is returned.
type InterpretationService interface {
	Interpret(record *model.ChildTestRecord) string
}

// TextGenerator is the part of the Gemini client the service needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	model *genai.GenerativeModel
}

func (g *geminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}

type interpretationService struct {
	generator TextGenerator
	timeout   time.Duration
}

// NewInterpretationService connects to Gemini when an API key is configured.
func NewInterpretationService(cfg *config.Config) (InterpretationService, error) {
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Interpretations will use the built-in templates.")
		return &interpretationService{timeout: cfg.Gemini.Timeout}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	generator := &geminiGenerator{model: client.GenerativeModel(cfg.Gemini.Model)}
	return &interpretationService{generator: generator, timeout: cfg.Gemini.Timeout}, nil
}

// NewInterpretationServiceWithGenerator is used when the generator is built elsewhere.
func NewInterpretationServiceWithGenerator(generator TextGenerator, timeout time.Duration) InterpretationService {
	return &interpretationService{generator: generator, timeout: timeout}
}

func (s *interpretationService) Interpret(record *model.ChildTestRecord) string {
	if s.generator == nil || record.PercentageScore == nil {
		return templateInterpretation(record)
	}

	timeout := s.timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	text, err := s.generator.GenerateText(ctx, buildInterpretationPrompt(record))
	text = strings.TrimSpace(text)
	if err != nil || text == "" {
		log.Warn().Err(err).Uint("recordID", record.ID).Msg("Interpretation generation failed, falling back to template.")
		return templateInterpretation(record)
	}
	return text
}

var levelGuidance = map[scoring.ResultLevel]string{
	scoring.ResultExcellent:    "Development in the assessed areas is well ahead of expectations. Keep offering varied, age-appropriate activities.",
	scoring.ResultGood:         "Development is on track. Continue regular play-based practice and re-assess at the next milestone.",
	scoring.ResultAverage:      "Development is within the expected range with some areas to strengthen. Focus daily activities on the weaker items.",
	scoring.ResultBelowAverage: "Some skills are behind expectations. Follow the suggested intervention activities and re-test in 1-2 months.",
	scoring.ResultPoor:         "Several skills are notably behind expectations. A consultation with a developmental specialist is recommended.",
}

func templateInterpretation(record *model.ChildTestRecord) string {
	if record.PercentageScore == nil || record.ResultLevel == nil {
		return "The result cannot be interpreted yet because the total or maximum score is missing."
	}
	level := *record.ResultLevel
	return fmt.Sprintf("%s (%s, %.1f%%). %s", level, level.DisplayName(), *record.PercentageScore, levelGuidance[level])
}

func buildInterpretationPrompt(record *model.ChildTestRecord) string {
	var sb strings.Builder
	sb.WriteString("You are a child development specialist writing for parents.\n")
	sb.WriteString("Write a short, supportive interpretation (at most 5 sentences) of the following screening result. ")
	sb.WriteString("Do not invent a diagnosis and do not change the score or level.\n\n")
	fmt.Fprintf(&sb, "Test type: %s\n", record.TestType)
	fmt.Fprintf(&sb, "Score: %.1f%%\n", *record.PercentageScore)
	if record.ResultLevel != nil {
		fmt.Fprintf(&sb, "Result level: %s\n", *record.ResultLevel)
	}
	if record.TotalQuestions != nil {
		correct, skipped := 0, 0
		if record.CorrectAnswers != nil {
			correct = *record.CorrectAnswers
		}
		if record.SkippedQuestions != nil {
			skipped = *record.SkippedQuestions
		}
		fmt.Fprintf(&sb, "Questions: %d total, %d correct, %d skipped\n", *record.TotalQuestions, correct, skipped)
	}
	if d := record.DurationMinutes(); d != nil {
		fmt.Fprintf(&sb, "Duration: %d minutes\n", *d)
	}
	if record.Environment != "" {
		fmt.Fprintf(&sb, "Environment: %s\n", record.Environment)
	}
	if record.ParentPresent != nil {
		fmt.Fprintf(&sb, "Parent present: %t\n", *record.ParentPresent)
	}
	if record.Notes != "" {
		fmt.Fprintf(&sb, "Assessor notes: %s\n", record.Notes)
	}
	return sb.String()
}
