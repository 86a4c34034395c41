package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fitforge/fitforge-api/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical fitness and recovery coach.

You receive a deterministic readiness analysis for a single athlete: a readiness score, overtraining risk, training-load estimates, consistency and streak figures, and biometric averages. You must base your conclusions only on the provided numbers.

Your goals:
- Describe the athlete's current training state in clear, encouraging language.
- Highlight patterns in training frequency, intensity balance, sleep and fatigue.
- Relate today's readiness to their consistency and streaks.
- Give practical suggestions for the next few training days.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention injuries, diseases, doctors, or treatment.
- Focus only on training behavior (session intensity, rest days, sleep habits, pacing).
- If data is limited, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the athlete's readiness and what drove the score.",
  "observations": [
    "3-6 bullet points about patterns in frequency, intensity, sleep, fatigue, and consistency.",
    "At least one item relating the risk level to the recent schedule.",
    "If relevant, one item about the current or best streak."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions for the coming days.",
    "Include at least one suggestion about rest or sleep if the averages warrant it.",
    "Include at least one suggestion tied to the readiness tier."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this athlete's current state.

- "analysis" is the full readiness snapshot (score, risk, load, consistency, biometric averages).
- "streaks" holds the current and best consecutive-day workout streaks.
- "consistency" breaks workout counts down per week.

JSON:

%s

Based on this data, respond in the required JSON format.`

// CoachLLM is the interface for generating coach commentary using an LLM.
type CoachLLM interface {
	// GenerateCoachInsights takes the analysis context and returns
	// LLM-generated coaching commentary.
	GenerateCoachInsights(ctx context.Context, coachCtx *domain.CoachContext) (*domain.CoachInsights, error)
}

// OpenAIClient implements CoachLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating coach insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// SetSystemPrompt replaces the built-in system prompt, typically with one
// fetched from Langfuse prompt management. Empty prompts are ignored.
func (c *OpenAIClient) SetSystemPrompt(prompt string) {
	if c == nil || strings.TrimSpace(prompt) == "" {
		return
	}
	c.systemPrompt = prompt
}

// GenerateCoachInsights calls OpenAI to generate coaching commentary.
func (c *OpenAIClient) GenerateCoachInsights(ctx context.Context, coachCtx *domain.CoachContext) (*domain.CoachInsights, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	// Serialize context to JSON
	contextJSON, err := json.MarshalIndent(coachCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	// Call OpenAI
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	// Parse the JSON response
	var insights domain.CoachInsights
	if err := json.Unmarshal([]byte(content), &insights); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &insights, nil
}
