package service

import (
	"context"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/llm"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/repository"
	"github.com/google/uuid"
)

// AdviceService generates coaching briefings for stored protocols.
type AdviceService interface {
	// Generate creates a briefing for a protocol, optionally focused on one day.
	Generate(ctx context.Context, userID, protocolID uuid.UUID, req *domain.AdviceRequest) (*domain.AdviceResponse, error)
}

type adviceService struct {
	protocolRepo   repository.ProtocolRepository
	assessmentRepo repository.AssessmentRepository
	llmClient      llm.AdviceLLM
}

// NewAdviceService creates a new AdviceService. A nil llmClient makes every
// call fail with ErrAdviceUnavailable.
func NewAdviceService(
	protocolRepo repository.ProtocolRepository,
	assessmentRepo repository.AssessmentRepository,
	llmClient llm.AdviceLLM,
) AdviceService {
	return &adviceService{
		protocolRepo:   protocolRepo,
		assessmentRepo: assessmentRepo,
		llmClient:      llmClient,
	}
}

func (s *adviceService) Generate(ctx context.Context, userID, protocolID uuid.UUID, req *domain.AdviceRequest) (*domain.AdviceResponse, error) {
	if s.llmClient == nil {
		return nil, domain.ErrAdviceUnavailable
	}

	record, err := s.protocolRepo.GetByID(ctx, protocolID)
	if err != nil {
		return nil, err
	}
	if record.UserID != userID {
		return nil, domain.ErrNotFound
	}

	protocol, err := record.DecodeProtocol()
	if err != nil {
		return nil, err
	}

	profile, err := s.resolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	adviceCtx := &domain.AdviceContext{
		Profile:  *profile,
		Protocol: *protocol,
	}
	if req != nil && req.DayNumber != nil {
		day := protocol.Day(*req.DayNumber)
		if day == nil {
			return nil, domain.ErrNotFound
		}
		adviceCtx.Day = day
	}

	output, err := s.llmClient.GenerateAdvice(ctx, adviceCtx)
	if err != nil {
		return nil, err
	}

	response := &domain.AdviceResponse{
		ProtocolID: record.ID,
		Advice:     *output,
	}
	if req != nil {
		response.DayNumber = req.DayNumber
	}
	return response, nil
}

func (s *adviceService) resolveProfile(ctx context.Context, userID uuid.UUID) (*domain.ChronotypeProfile, error) {
	assessment, err := s.assessmentRepo.GetLatestByUser(ctx, userID)
	if err == domain.ErrNotFound {
		return defaultProfile(), nil
	}
	if err != nil {
		return nil, err
	}
	return assessment.DecodeProfile()
}
