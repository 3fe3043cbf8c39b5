package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
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

const systemPrompt = `You are a non-medical jet lag coaching assistant.

You receive a traveler's chronotype profile and their generated day-by-day
circadian adjustment protocol. You must base your conclusions only on the
provided data.

Your goals:
- Explain what the protocol asks of the traveler in clear, neutral language.
- Highlight the highest-leverage interventions (light timing, sleep timing).
- When a single day is provided, focus the briefing on that day.
- Factor in the traveler's chronotype when it helps explain the schedule.
- Give practical, behavioral tips for sticking to the plan.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Treat melatonin, caffeine, and creatine entries as schedule items; never
  adjust doses or suggest new substances.
- If the plan is demanding, say so and suggest how to prioritize.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the plan and what matters most.",
  "observations": [
    "3-6 bullet points about the structure of the plan: direction, shift size, number of days, critical windows.",
    "At least one item about how the traveler's chronotype shapes the schedule."
  ],
  "guidance": [
    "3-5 concrete suggestions for following the plan.",
    "Include at least one suggestion about the light timing windows.",
    "Include at least one suggestion about protecting the target sleep times."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this traveler's adjustment plan.

- "profile" holds their chronotype category, confidence, and circadian markers.
- "protocol" holds the full day-by-day plan with interventions.
- "day", when present, is the single day to focus the briefing on.

JSON:

%s

Based on this data, respond in the required JSON format.`

// AdviceLLM is the interface for generating protocol briefings using an LLM.
type AdviceLLM interface {
	// GenerateAdvice takes a context object and returns an LLM-generated briefing.
	GenerateAdvice(ctx context.Context, adviceCtx *domain.AdviceContext) (*domain.LLMAdviceOutput, error)
}

// OpenAIClient implements AdviceLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating briefings.
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

// WithSystemPrompt overrides the built-in system prompt, e.g. with one
// managed in Langfuse. Empty prompts are ignored.
func (c *OpenAIClient) WithSystemPrompt(prompt string) *OpenAIClient {
	if c == nil || prompt == "" {
		return c
	}
	c.systemPrompt = prompt
	return c
}

// GenerateAdvice calls OpenAI to generate a protocol briefing.
func (c *OpenAIClient) GenerateAdvice(ctx context.Context, adviceCtx *domain.AdviceContext) (*domain.LLMAdviceOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	// Serialize context to JSON
	contextJSON, err := json.MarshalIndent(adviceCtx, "", "  ")
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
	var output domain.LLMAdviceOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
