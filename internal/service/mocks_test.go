package service

import (
	"context"
	"sort"
	"time"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockAssessmentRepository is a mock implementation of AssessmentRepository
type MockAssessmentRepository struct {
	assessments map[uuid.UUID]*domain.Assessment
	err         error
}

func NewMockAssessmentRepository() *MockAssessmentRepository {
	return &MockAssessmentRepository{
		assessments: make(map[uuid.UUID]*domain.Assessment),
	}
}

func (m *MockAssessmentRepository) Create(ctx context.Context, assessment *domain.Assessment) error {
	if m.err != nil {
		return m.err
	}
	if assessment.ID == uuid.Nil {
		assessment.ID = uuid.New()
	}
	assessment.CreatedAt = time.Now()
	m.assessments[assessment.ID] = assessment
	return nil
}

func (m *MockAssessmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Assessment, error) {
	if m.err != nil {
		return nil, m.err
	}
	assessment, ok := m.assessments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return assessment, nil
}

func (m *MockAssessmentRepository) GetLatestByUser(ctx context.Context, userID uuid.UUID) (*domain.Assessment, error) {
	if m.err != nil {
		return nil, m.err
	}
	var latest *domain.Assessment
	for _, a := range m.assessments {
		if a.UserID != userID {
			continue
		}
		if latest == nil || a.CreatedAt.After(latest.CreatedAt) {
			latest = a
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	return latest, nil
}

// MockProtocolRepository is a mock implementation of ProtocolRepository
type MockProtocolRepository struct {
	records map[uuid.UUID]*domain.ProtocolRecord
	err     error
}

func NewMockProtocolRepository() *MockProtocolRepository {
	return &MockProtocolRepository{
		records: make(map[uuid.UUID]*domain.ProtocolRecord),
	}
}

func (m *MockProtocolRepository) Create(ctx context.Context, record *domain.ProtocolRecord) error {
	if m.err != nil {
		return m.err
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = time.Now()
	m.records[record.ID] = record
	return nil
}

func (m *MockProtocolRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProtocolRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	record, ok := m.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

func (m *MockProtocolRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ProtocolFilter) ([]domain.ProtocolRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.ProtocolRecord
	for _, record := range m.records {
		if record.UserID == userID {
			result = append(result, *record)
		}
	}
	sort.Slice(result, func(a, b int) bool {
		return result[a].CreatedAt.After(result[b].CreatedAt)
	})
	return result, nil
}

func (m *MockProtocolRepository) UpdatePayload(ctx context.Context, id uuid.UUID, payload []byte) error {
	if m.err != nil {
		return m.err
	}
	record, ok := m.records[id]
	if !ok {
		return domain.ErrNotFound
	}
	record.Payload = payload
	return nil
}

// MockAdviceLLM is a mock implementation of llm.AdviceLLM
type MockAdviceLLM struct {
	output  *domain.LLMAdviceOutput
	err     error
	lastCtx *domain.AdviceContext
}

func (m *MockAdviceLLM) GenerateAdvice(ctx context.Context, adviceCtx *domain.AdviceContext) (*domain.LLMAdviceOutput, error) {
	m.lastCtx = adviceCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func boolPtr(b bool) *bool {
	return &b
}
