package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/langfuse"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/service"
	"github.com/google/uuid"
)

// mockLangfuseClient for testing
type mockLangfuseClient struct {
	enabled    bool
	scoreCalls int
	lastScore  langfuse.ScoreInput
}

func (m *mockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "", nil
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scoreCalls++
	m.lastScore = in
	return nil
}

// MockAssessmentService is a mock implementation of AssessmentService
type MockAssessmentService struct {
	createFunc    func(ctx context.Context, userID uuid.UUID, req *domain.CreateAssessmentRequest) (*domain.Assessment, error)
	getLatestFunc func(ctx context.Context, userID uuid.UUID) (*domain.Assessment, error)
}

func (m *MockAssessmentService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateAssessmentRequest) (*domain.Assessment, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return testAssessment(userID), nil
}

func (m *MockAssessmentService) GetLatest(ctx context.Context, userID uuid.UUID) (*domain.Assessment, error) {
	if m.getLatestFunc != nil {
		return m.getLatestFunc(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

// MockProtocolService is a mock implementation of ProtocolService
type MockProtocolService struct {
	generateFunc     func(ctx context.Context, userID uuid.UUID, req *domain.GenerateProtocolRequest) (*domain.ProtocolResponse, error)
	getByIDFunc      func(ctx context.Context, userID, protocolID uuid.UUID) (*domain.ProtocolResponse, error)
	listFunc         func(ctx context.Context, userID uuid.UUID, filter domain.ProtocolFilter) (*domain.ProtocolListResponse, error)
	updateStatusFunc func(ctx context.Context, userID, protocolID uuid.UUID, dayNumber, index int, req *domain.InterventionStatusRequest) (*domain.ProtocolResponse, error)
}

func (m *MockProtocolService) Generate(ctx context.Context, userID uuid.UUID, req *domain.GenerateProtocolRequest) (*domain.ProtocolResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID, req)
	}
	return testProtocolResponse(userID), nil
}

func (m *MockProtocolService) GetByID(ctx context.Context, userID, protocolID uuid.UUID) (*domain.ProtocolResponse, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, userID, protocolID)
	}
	return nil, domain.ErrNotFound
}

func (m *MockProtocolService) List(ctx context.Context, userID uuid.UUID, filter domain.ProtocolFilter) (*domain.ProtocolListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.ProtocolListResponse{
		Data:       []domain.ProtocolSummary{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockProtocolService) UpdateInterventionStatus(ctx context.Context, userID, protocolID uuid.UUID, dayNumber, index int, req *domain.InterventionStatusRequest) (*domain.ProtocolResponse, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, userID, protocolID, dayNumber, index, req)
	}
	return testProtocolResponse(userID), nil
}

// MockAdviceService is a mock implementation of AdviceService
type MockAdviceService struct {
	generateFunc func(ctx context.Context, userID, protocolID uuid.UUID, req *domain.AdviceRequest) (*domain.AdviceResponse, error)
}

func (m *MockAdviceService) Generate(ctx context.Context, userID, protocolID uuid.UUID, req *domain.AdviceRequest) (*domain.AdviceResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID, protocolID, req)
	}
	return &domain.AdviceResponse{
		ProtocolID: protocolID,
		Advice: domain.LLMAdviceOutput{
			Summary: "Follow the light windows.",
		},
	}, nil
}

var (
	_ service.AssessmentService = (*MockAssessmentService)(nil)
	_ service.ProtocolService   = (*MockProtocolService)(nil)
	_ service.AdviceService     = (*MockAdviceService)(nil)
)

func testAssessment(userID uuid.UUID) *domain.Assessment {
	profile := domain.ChronotypeProfile{
		Category:   domain.ChronotypeIntermediate,
		Confidence: domain.ConfidenceMedium,
	}
	payload, _ := json.Marshal(profile)
	return &domain.Assessment{
		ID:        uuid.New(),
		UserID:    userID,
		Profile:   payload,
		CreatedAt: time.Now(),
	}
}

func testProtocolResponse(userID uuid.UUID) *domain.ProtocolResponse {
	return &domain.ProtocolResponse{
		ID:     uuid.New(),
		UserID: userID,
		Protocol: domain.Protocol{
			Direction:          domain.DirectionEastward,
			TimezoneShiftHours: 5,
		},
		CreatedAt: time.Now(),
	}
}
