package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/engine"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/repository"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/pkg/pagination"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ProtocolService generates, stores, and tracks adjustment protocols.
type ProtocolService interface {
	Generate(ctx context.Context, userID uuid.UUID, req *domain.GenerateProtocolRequest) (*domain.ProtocolResponse, error)
	GetByID(ctx context.Context, userID, protocolID uuid.UUID) (*domain.ProtocolResponse, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.ProtocolFilter) (*domain.ProtocolListResponse, error)
	UpdateInterventionStatus(ctx context.Context, userID, protocolID uuid.UUID, dayNumber, interventionIndex int, req *domain.InterventionStatusRequest) (*domain.ProtocolResponse, error)
}

type protocolService struct {
	repo           repository.ProtocolRepository
	assessmentRepo repository.AssessmentRepository
	userRepo       repository.UserRepository
	now            func() time.Time
}

// NewProtocolService creates a new ProtocolService. A nil now falls back to
// time.Now.
func NewProtocolService(
	repo repository.ProtocolRepository,
	assessmentRepo repository.AssessmentRepository,
	userRepo repository.UserRepository,
	now func() time.Time,
) ProtocolService {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &protocolService{
		repo:           repo,
		assessmentRepo: assessmentRepo,
		userRepo:       userRepo,
		now:            now,
	}
}

func (s *protocolService) Generate(ctx context.Context, userID uuid.UUID, req *domain.GenerateProtocolRequest) (*domain.ProtocolResponse, error) {
	tracer := otel.Tracer("jetlag-optimizer-api/protocol")
	ctx, span := tracer.Start(ctx, "ProtocolService.Generate",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("trip.origin", req.Trip.OriginCity),
			attribute.String("trip.destination", req.Trip.DestinationCity),
			attribute.Float64("trip.shift_hours", req.Trip.TimezoneShiftHours),
		),
	)
	defer span.End()

	// Validate user exists
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	profile, err := s.resolveProfile(ctx, userID, req.AssessmentID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("profile.category", string(profile.Category)),
		attribute.String("profile.confidence", string(profile.Confidence)),
	)

	// Attach input payload for Langfuse
	if inputJSON, err := json.Marshal(req); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	protocol, err := engine.GenerateProtocol(req.Trip, *profile, req.Preferences, engine.GenerateOptions{Now: s.now})
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(protocol)
	if err != nil {
		return nil, err
	}

	record := &domain.ProtocolRecord{
		ID:              uuid.New(),
		UserID:          userID,
		OriginCity:      req.Trip.OriginCity,
		DestinationCity: req.Trip.DestinationCity,
		Direction:       protocol.Direction,
		ShiftHours:      req.Trip.TimezoneShiftHours,
		Payload:         payload,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("protocol.days", len(protocol.Days)),
		attribute.Int("protocol.estimated_days_to_adjust", protocol.EstimatedDaysToAdjust),
	)
	// Attach output payload for Langfuse
	if outputJSON, err := json.Marshal(protocol); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return record.ToResponse()
}

// resolveProfile loads the requested assessment, the user's latest, or falls
// back to a population-default profile when the user was never assessed.
func (s *protocolService) resolveProfile(ctx context.Context, userID uuid.UUID, assessmentID *uuid.UUID) (*domain.ChronotypeProfile, error) {
	if assessmentID != nil {
		assessment, err := s.assessmentRepo.GetByID(ctx, *assessmentID)
		if err != nil {
			return nil, err
		}
		if assessment.UserID != userID {
			return nil, domain.ErrNotFound
		}
		return assessment.DecodeProfile()
	}

	assessment, err := s.assessmentRepo.GetLatestByUser(ctx, userID)
	if err == domain.ErrNotFound {
		return defaultProfile(), nil
	}
	if err != nil {
		return nil, err
	}
	return assessment.DecodeProfile()
}

// defaultProfile is the intermediate-chronotype fallback used when no
// assessment exists. Tagged low confidence so consumers can surface that.
func defaultProfile() *domain.ChronotypeProfile {
	profile := &domain.ChronotypeProfile{
		Category: domain.ChronotypeIntermediate,
	}
	fillSchedule(profile, nil, nil, nil, nil)

	markers := engine.EstimateMarkers(engine.MarkerInput{})
	profile.DLMO = markers.DLMO
	profile.CBTMin = markers.CBTMin
	profile.Confidence = markers.Confidence
	profile.AdvanceWindow = markers.AdvanceWindow
	profile.DelayWindow = markers.DelayWindow
	profile.DeadZone = markers.DeadZone

	return profile
}

func (s *protocolService) GetByID(ctx context.Context, userID, protocolID uuid.UUID) (*domain.ProtocolResponse, error) {
	record, err := s.loadOwned(ctx, userID, protocolID)
	if err != nil {
		return nil, err
	}
	return record.ToResponse()
}

func (s *protocolService) List(ctx context.Context, userID uuid.UUID, filter domain.ProtocolFilter) (*domain.ProtocolListResponse, error) {
	// Check if user exists
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	records, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(records) > limit

	// Trim to actual limit
	if hasMore {
		records = records[:limit]
	}

	// Build response
	response := &domain.ProtocolListResponse{
		Data: make([]domain.ProtocolSummary, len(records)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, record := range records {
		response.Data[i] = record.Summary()
	}

	// Set next cursor if there are more results
	if hasMore && len(records) > 0 {
		last := records[len(records)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			CreatedAt: last.CreatedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *protocolService) UpdateInterventionStatus(ctx context.Context, userID, protocolID uuid.UUID, dayNumber, interventionIndex int, req *domain.InterventionStatusRequest) (*domain.ProtocolResponse, error) {
	record, err := s.loadOwned(ctx, userID, protocolID)
	if err != nil {
		return nil, err
	}

	protocol, err := record.DecodeProtocol()
	if err != nil {
		return nil, err
	}

	day := protocol.Day(dayNumber)
	if day == nil {
		return nil, domain.ErrNotFound
	}
	if interventionIndex < 0 || interventionIndex >= len(day.Interventions) {
		return nil, domain.ErrNotFound
	}

	intervention := &day.Interventions[interventionIndex]
	if req.Completed != nil {
		intervention.Completed = *req.Completed
	}
	if req.Skipped != nil {
		intervention.Skipped = *req.Skipped
	}

	payload, err := json.Marshal(protocol)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdatePayload(ctx, record.ID, payload); err != nil {
		return nil, err
	}

	record.Payload = payload
	return record.ToResponse()
}

func (s *protocolService) loadOwned(ctx context.Context, userID, protocolID uuid.UUID) (*domain.ProtocolRecord, error) {
	record, err := s.repo.GetByID(ctx, protocolID)
	if err != nil {
		return nil, err
	}
	if record.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return record, nil
}
