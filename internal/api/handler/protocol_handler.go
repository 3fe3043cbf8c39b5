package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/api/validation"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/langfuse"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/service"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

type ProtocolHandler struct {
	service        service.ProtocolService
	adviceService  service.AdviceService
	langfuseClient langfuse.Client
}

func NewProtocolHandler(service service.ProtocolService, adviceService service.AdviceService, langfuseClient langfuse.Client) *ProtocolHandler {
	return &ProtocolHandler{
		service:        service,
		adviceService:  adviceService,
		langfuseClient: langfuseClient,
	}
}

// Generate handles POST /v1/users/{userId}/protocols
// @Summary Generate adjustment protocol
// @Description Generate and store a day-by-day jet lag adjustment protocol for a trip. Uses the traveler's latest chronotype assessment unless assessment_id selects another; falls back to an intermediate default.
// @Tags protocols
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.GenerateProtocolRequest true "Trip and preferences"
// @Success 201 {object} domain.ProtocolResponse
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "User or assessment not found"
// @Failure 422 {object} problem.Problem "Trip fails validation"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/protocols [post]
func (h *ProtocolHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.GenerateProtocolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	response, err := h.service.Generate(r.Context(), userID, &req)
	if err != nil {
		writeProtocolError(w, err, "Failed to generate protocol")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

// GetByID handles GET /v1/users/{userId}/protocols/{protocolId}
// @Summary Get protocol
// @Description Fetch a stored protocol with its full day-by-day plan
// @Tags protocols
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param protocolId path string true "Protocol UUID" format(uuid)
// @Success 200 {object} domain.ProtocolResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/protocols/{protocolId} [get]
func (h *ProtocolHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, protocolID, ok := parseProtocolPath(w, r)
	if !ok {
		return
	}

	response, err := h.service.GetByID(r.Context(), userID, protocolID)
	if err != nil {
		writeProtocolError(w, err, "Failed to get protocol")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// List handles GET /v1/users/{userId}/protocols
// @Summary List protocols
// @Description Fetch paginated protocol summaries, newest first
// @Tags protocols
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.ProtocolListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/protocols [get]
func (h *ProtocolHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseProtocolFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeProtocolError(w, err, "Failed to list protocols")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// UpdateInterventionStatus handles PATCH /v1/users/{userId}/protocols/{protocolId}/days/{dayNumber}/interventions/{index}
// @Summary Track an intervention
// @Description Mark a protocol intervention completed or skipped
// @Tags protocols
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param protocolId path string true "Protocol UUID" format(uuid)
// @Param dayNumber path integer true "Protocol day number (negative for pre-departure days)"
// @Param index path integer true "Intervention index within the day"
// @Param request body domain.InterventionStatusRequest true "Status change"
// @Success 200 {object} domain.ProtocolResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Protocol, day, or intervention not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/protocols/{protocolId}/days/{dayNumber}/interventions/{index} [patch]
func (h *ProtocolHandler) UpdateInterventionStatus(w http.ResponseWriter, r *http.Request) {
	userID, protocolID, ok := parseProtocolPath(w, r)
	if !ok {
		return
	}

	dayNumber, err := strconv.Atoi(chi.URLParam(r, "dayNumber"))
	if err != nil {
		problem.BadRequest("Invalid day number").Write(w)
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		problem.BadRequest("Invalid intervention index").Write(w)
		return
	}

	var req domain.InterventionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if req.Completed == nil && req.Skipped == nil {
		problem.BadRequest("Provide completed and/or skipped").Write(w)
		return
	}

	response, err := h.service.UpdateInterventionStatus(r.Context(), userID, protocolID, dayNumber, index, &req)
	if err != nil {
		writeProtocolError(w, err, "Failed to update intervention")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Advice handles POST /v1/users/{userId}/protocols/{protocolId}/advice
// @Summary Get a coaching briefing
// @Description Generate an LLM coaching briefing for a stored protocol, optionally focused on one day
// @Tags protocols
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param protocolId path string true "Protocol UUID" format(uuid)
// @Param request body domain.AdviceRequest false "Focus selection"
// @Success 200 {object} domain.AdviceResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Failure 503 {object} problem.Problem "Advice backend not configured"
// @Router /users/{userId}/protocols/{protocolId}/advice [post]
func (h *ProtocolHandler) Advice(w http.ResponseWriter, r *http.Request) {
	userID, protocolID, ok := parseProtocolPath(w, r)
	if !ok {
		return
	}

	req := &domain.AdviceRequest{}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			problem.BadRequest("Invalid JSON body").Write(w)
			return
		}
	}

	response, err := h.adviceService.Generate(r.Context(), userID, protocolID, req)
	if err != nil {
		if errors.Is(err, domain.ErrAdviceUnavailable) {
			problem.ServiceUnavailable("Advice generation is not configured").Write(w)
			return
		}
		writeProtocolError(w, err, "Failed to generate advice")
		return
	}

	// Attach OTEL trace ID (if present) to response for feedback linking
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		response.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// AdviceFeedbackRequest is the request body for advice feedback.
// @Description Request body for submitting feedback on a coaching briefing.
type AdviceFeedbackRequest struct {
	// Trace ID from the advice response
	TraceID string `json:"trace_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"The briefing was helpful!"`
}

// AdviceFeedback handles POST /v1/users/{userId}/protocols/{protocolId}/advice/feedback
// @Summary Rate a coaching briefing
// @Description Submit a traveler rating and optional comment for a previous advice response.
// @Tags protocols
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param protocolId path string true "Protocol UUID" format(uuid)
// @Param request body AdviceFeedbackRequest true "Feedback"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem
// @Router /users/{userId}/protocols/{protocolId}/advice/feedback [post]
func (h *ProtocolHandler) AdviceFeedback(w http.ResponseWriter, r *http.Request) {
	_, _, ok := parseProtocolPath(w, r)
	if !ok {
		return
	}

	var req AdviceFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	// Errors are logged by the client, not surfaced to the traveler
	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "traveler_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}

func parseProtocolPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return uuid.Nil, uuid.Nil, false
	}
	protocolID, err := uuid.Parse(chi.URLParam(r, "protocolId"))
	if err != nil {
		problem.BadRequest("Invalid protocol ID format").Write(w)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, protocolID, true
}

func parseProtocolFilter(r *http.Request) (domain.ProtocolFilter, []problem.FieldError) {
	var filter domain.ProtocolFilter
	var fieldErrors []problem.FieldError

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	// Parse 'cursor' parameter
	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}

func writeProtocolError(w http.ResponseWriter, err error, fallback string) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("Not found").Write(w)
	case errors.As(err, &verr):
		problem.ValidationError("Trip fails validation", []problem.FieldError{
			{Field: verr.Field, Message: verr.Reason},
		}).Write(w)
	default:
		problem.InternalError(fallback).Write(w)
	}
}
