package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	genDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mathquest",
		Subsystem: "ai",
		Name:      "generation_duration_seconds",
		Help:      "Duration of AI generation requests",
	}, []string{"model", "operation"})

	genFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mathquest",
		Subsystem: "ai",
		Name:      "generation_failures_total",
		Help:      "Number of AI generation failures",
	}, []string{"model", "operation"})
)

// OpenAIConfig defines configuration options for the OpenAI generator.
type OpenAIConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
	Logger      zerolog.Logger
}

// OpenAIGenerator implements Generator against the OpenAI chat completion API.
type OpenAIGenerator struct {
	client *openai.Client
	cfg    OpenAIConfig
	tracer trace.Tracer
	logger zerolog.Logger
}

// NewOpenAIGenerator builds a new generator using the provided configuration.
func NewOpenAIGenerator(cfg OpenAIConfig) (*OpenAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}

	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 512
	}

	tracer := otel.Tracer("github.com/mathquest/mathquest-api/pkg/ai/openai")
	logger := cfg.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = zerolog.Nop()
	}

	config := openai.DefaultConfig(cfg.APIKey)
	client := openai.NewClientWithConfig(config)

	return &OpenAIGenerator{
		client: client,
		cfg:    cfg,
		tracer: tracer,
		logger: logger,
	}, nil
}

// GenerateProblem requests a schema-constrained word problem for the given
// difficulty and validates the reply before returning it.
func (g *OpenAIGenerator) GenerateProblem(ctx context.Context, difficulty string) (GeneratedProblem, error) {
	content, err := g.complete(ctx, "problem", problemSystemPrompt, buildProblemPrompt(difficulty), true)
	if err != nil {
		return GeneratedProblem{}, err
	}

	problem, err := parseProblemResponse(content)
	if err != nil {
		genFailures.WithLabelValues(g.cfg.Model, "problem").Inc()
		return GeneratedProblem{}, err
	}

	return problem, nil
}

// GenerateSolutionSteps requests a numbered arithmetic derivation ending in
// the stored correct answer. The output is best-effort text.
func (g *OpenAIGenerator) GenerateSolutionSteps(ctx context.Context, problemText string, correctAnswer float64) (string, error) {
	return g.complete(ctx, "solution", solutionSystemPrompt, buildSolutionPrompt(problemText, correctAnswer), false)
}

// GenerateFeedback requests a short encouraging feedback message.
func (g *OpenAIGenerator) GenerateFeedback(ctx context.Context, input FeedbackInput) (string, error) {
	return g.complete(ctx, "feedback", feedbackSystemPrompt, buildFeedbackPrompt(input), false)
}

func (g *OpenAIGenerator) complete(parent context.Context, operation, system, user string, jsonMode bool) (string, error) {
	ctx, span := g.tracer.Start(parent, "openai."+operation, trace.WithAttributes(
		attribute.String("model", g.cfg.Model),
	))
	defer span.End()

	request := openai.ChatCompletionRequest{
		Model:       g.cfg.Model,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: user,
			},
		},
	}
	if jsonMode {
		request.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
	}

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, request)
	genDuration.WithLabelValues(g.cfg.Model, operation).Observe(time.Since(start).Seconds())
	if err != nil {
		genFailures.WithLabelValues(g.cfg.Model, operation).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", fmt.Errorf("openai %s: %w", operation, err)
	}

	if len(resp.Choices) == 0 {
		err := fmt.Errorf("no choices returned from openai")
		genFailures.WithLabelValues(g.cfg.Model, operation).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	g.logger.Debug().Str("operation", operation).Int("tokens", resp.Usage.TotalTokens).Msg("generation completed")

	return content, nil
}
