package domain

import "github.com/google/uuid"

// AdviceRequest selects what the coaching briefing should focus on. With no
// day number the whole protocol is summarized.
type AdviceRequest struct {
	DayNumber *int `json:"day_number,omitempty"`
}

// AdviceContext is the document handed to the language model: the traveler's
// profile plus the generated protocol, optionally narrowed to one day.
type AdviceContext struct {
	Profile  ChronotypeProfile `json:"profile"`
	Protocol Protocol          `json:"protocol"`
	Day      *ProtocolDay      `json:"day,omitempty"`
}

// LLMAdviceOutput is the structured briefing returned by the model.
type LLMAdviceOutput struct {
	Summary      string   `json:"summary"`
	Observations []string `json:"observations"`
	Guidance     []string `json:"guidance"`
}

// AdviceResponse is the response body for the protocol advice endpoint.
type AdviceResponse struct {
	ProtocolID uuid.UUID       `json:"protocol_id"`
	DayNumber  *int            `json:"day_number,omitempty"`
	Advice     LLMAdviceOutput `json:"advice"`

	// TraceID links the briefing to its trace for feedback scoring.
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}
