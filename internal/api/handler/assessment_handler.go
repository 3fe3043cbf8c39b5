package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/api/validation"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/service"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AssessmentHandler struct {
	service service.AssessmentService
}

func NewAssessmentHandler(service service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

// Create handles POST /v1/users/{userId}/assessments
// @Summary Assess chronotype
// @Description Compute and store a chronotype profile from MEQ questionnaire answers and/or a weekly sleep schedule. At least one input family is required.
// @Tags assessments
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateAssessmentRequest true "Assessment inputs"
// @Success 201 {object} domain.AssessmentResponse
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Inputs fail validation"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/assessments [post]
func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	assessment, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeAssessmentError(w, err, "Failed to create assessment")
		return
	}

	response, err := assessment.ToResponse()
	if err != nil {
		problem.InternalError("Failed to encode assessment").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

// GetLatest handles GET /v1/users/{userId}/assessments/latest
// @Summary Get latest assessment
// @Description Fetch the traveler's most recent chronotype profile
// @Tags assessments
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.AssessmentResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User or assessment not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/assessments/latest [get]
func (h *AssessmentHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	assessment, err := h.service.GetLatest(r.Context(), userID)
	if err != nil {
		writeAssessmentError(w, err, "Failed to get assessment")
		return
	}

	response, err := assessment.ToResponse()
	if err != nil {
		problem.InternalError("Failed to encode assessment").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func writeAssessmentError(w http.ResponseWriter, err error, fallback string) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("Not found").Write(w)
	case errors.As(err, &verr):
		problem.ValidationError("Assessment inputs are invalid", []problem.FieldError{
			{Field: verr.Field, Message: verr.Reason},
		}).Write(w)
	default:
		problem.InternalError(fallback).Write(w)
	}
}
