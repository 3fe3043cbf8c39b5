package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
	"github.com/google/uuid"
)

type adviceFixture struct {
	protocolRepo   *MockProtocolRepository
	assessmentRepo *MockAssessmentRepository
	llm            *MockAdviceLLM
	userID         uuid.UUID
	protocolID     uuid.UUID
}

func newAdviceFixture(t *testing.T) adviceFixture {
	t.Helper()

	userRepo := NewMockUserRepository()
	user := &domain.User{ID: uuid.New(), HomeTimezone: "America/New_York"}
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	protocolRepo := NewMockProtocolRepository()
	assessmentRepo := NewMockAssessmentRepository()
	now := func() time.Time { return time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC) }
	protocolSvc := NewProtocolService(protocolRepo, assessmentRepo, userRepo, now)

	resp, err := protocolSvc.Generate(context.Background(), user.ID, &domain.GenerateProtocolRequest{
		Trip:        testTrip(),
		Preferences: domain.DefaultPreferences(),
	})
	if err != nil {
		t.Fatalf("seed protocol: %v", err)
	}

	return adviceFixture{
		protocolRepo:   protocolRepo,
		assessmentRepo: assessmentRepo,
		llm: &MockAdviceLLM{output: &domain.LLMAdviceOutput{
			Summary:      "A five-hour eastward shift over a week.",
			Observations: []string{"Morning light drives the advance."},
			Guidance:     []string{"Protect the light-seeking windows."},
		}},
		userID:     user.ID,
		protocolID: resp.ID,
	}
}

func TestAdviceService_Generate(t *testing.T) {
	f := newAdviceFixture(t)
	svc := NewAdviceService(f.protocolRepo, f.assessmentRepo, f.llm)

	resp, err := svc.Generate(context.Background(), f.userID, f.protocolID, &domain.AdviceRequest{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if resp.ProtocolID != f.protocolID {
		t.Errorf("protocol ID = %s, want %s", resp.ProtocolID, f.protocolID)
	}
	if resp.Advice.Summary == "" {
		t.Error("empty advice summary")
	}
	if f.llm.lastCtx == nil {
		t.Fatal("LLM never called")
	}
	if f.llm.lastCtx.Day != nil {
		t.Error("whole-protocol briefing carries a focus day")
	}
	if len(f.llm.lastCtx.Protocol.Days) == 0 {
		t.Error("LLM context has no protocol days")
	}
}

func TestAdviceService_GenerateFocusDay(t *testing.T) {
	f := newAdviceFixture(t)
	svc := NewAdviceService(f.protocolRepo, f.assessmentRepo, f.llm)

	resp, err := svc.Generate(context.Background(), f.userID, f.protocolID, &domain.AdviceRequest{DayNumber: intPtr(1)})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if resp.DayNumber == nil || *resp.DayNumber != 1 {
		t.Errorf("response day number = %v, want 1", resp.DayNumber)
	}
	if f.llm.lastCtx.Day == nil || f.llm.lastCtx.Day.DayNumber != 1 {
		t.Error("LLM context missing the focus day")
	}
}

func TestAdviceService_GenerateUnknownDay(t *testing.T) {
	f := newAdviceFixture(t)
	svc := NewAdviceService(f.protocolRepo, f.assessmentRepo, f.llm)

	_, err := svc.Generate(context.Background(), f.userID, f.protocolID, &domain.AdviceRequest{DayNumber: intPtr(99)})
	if err != domain.ErrNotFound {
		t.Errorf("Generate() error = %v, want ErrNotFound", err)
	}
}

func TestAdviceService_GenerateWithoutClient(t *testing.T) {
	f := newAdviceFixture(t)
	svc := NewAdviceService(f.protocolRepo, f.assessmentRepo, nil)

	_, err := svc.Generate(context.Background(), f.userID, f.protocolID, nil)
	if err != domain.ErrAdviceUnavailable {
		t.Errorf("Generate() error = %v, want ErrAdviceUnavailable", err)
	}
}

func TestAdviceService_GenerateOwnership(t *testing.T) {
	f := newAdviceFixture(t)
	svc := NewAdviceService(f.protocolRepo, f.assessmentRepo, f.llm)

	_, err := svc.Generate(context.Background(), uuid.New(), f.protocolID, nil)
	if err != domain.ErrNotFound {
		t.Errorf("Generate() error = %v, want ErrNotFound", err)
	}
}

func TestAdviceService_UsesLatestAssessmentProfile(t *testing.T) {
	f := newAdviceFixture(t)

	profile, err := BuildProfile(&domain.CreateAssessmentRequest{MEQResponses: meqAnswers(4)})
	if err != nil {
		t.Fatalf("build profile: %v", err)
	}
	payload, err := json.Marshal(profile)
	if err != nil {
		t.Fatalf("marshal profile: %v", err)
	}
	assessment := &domain.Assessment{ID: uuid.New(), UserID: f.userID, Profile: payload}
	if err := f.assessmentRepo.Create(context.Background(), assessment); err != nil {
		t.Fatalf("seed assessment: %v", err)
	}

	svc := NewAdviceService(f.protocolRepo, f.assessmentRepo, f.llm)
	if _, err := svc.Generate(context.Background(), f.userID, f.protocolID, nil); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if f.llm.lastCtx.Profile.Category != domain.ChronotypeDefiniteMorning {
		t.Errorf("LLM profile category = %s, want definite_morning from the latest assessment",
			f.llm.lastCtx.Profile.Category)
	}
}
