package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
	"github.com/google/uuid"
)

func testTrip() domain.Trip {
	return domain.Trip{
		OriginCity:          "New York",
		DestinationCity:     "London",
		OriginTimezone:      "America/New_York",
		DestinationTimezone: "Europe/London",
		DepartureLocal:      time.Date(2026, 10, 5, 19, 0, 0, 0, time.UTC),
		ArrivalLocal:        time.Date(2026, 10, 6, 7, 0, 0, 0, time.UTC),
		FlightDurationMin:   420,
		TimezoneShiftHours:  5,
		Direction:           domain.DirectionEastward,
		TripDurationDays:    7,
	}
}

type protocolFixture struct {
	svc            ProtocolService
	repo           *MockProtocolRepository
	assessmentRepo *MockAssessmentRepository
	userID         uuid.UUID
}

func newProtocolFixture(t *testing.T) protocolFixture {
	t.Helper()
	userRepo := NewMockUserRepository()
	user := &domain.User{ID: uuid.New(), HomeTimezone: "America/New_York"}
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	repo := NewMockProtocolRepository()
	assessmentRepo := NewMockAssessmentRepository()
	now := func() time.Time { return time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC) }

	return protocolFixture{
		svc:            NewProtocolService(repo, assessmentRepo, userRepo, now),
		repo:           repo,
		assessmentRepo: assessmentRepo,
		userID:         user.ID,
	}
}

func (f protocolFixture) seedAssessment(t *testing.T, req *domain.CreateAssessmentRequest) *domain.Assessment {
	t.Helper()
	profile, err := BuildProfile(req)
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
	return assessment
}

func TestProtocolService_GenerateWithoutAssessment(t *testing.T) {
	f := newProtocolFixture(t)

	req := &domain.GenerateProtocolRequest{
		Trip:        testTrip(),
		Preferences: domain.DefaultPreferences(),
	}
	resp, err := f.svc.Generate(context.Background(), f.userID, req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if resp.OriginCity != "New York" || resp.DestinationCity != "London" {
		t.Errorf("response cities = %s -> %s", resp.OriginCity, resp.DestinationCity)
	}
	if resp.Protocol.Direction != domain.DirectionEastward {
		t.Errorf("direction = %s, want eastward", resp.Protocol.Direction)
	}
	if len(resp.Protocol.Days) == 0 {
		t.Fatal("generated protocol has no days")
	}
	if resp.Protocol.FlightDay() == nil {
		t.Error("generated protocol has no flight day")
	}

	// The record must be stored and decodable.
	stored, err := f.repo.GetByID(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("stored record: %v", err)
	}
	if _, err := stored.DecodeProtocol(); err != nil {
		t.Errorf("stored payload does not decode: %v", err)
	}
}

func TestProtocolService_GenerateUsesSelectedAssessment(t *testing.T) {
	f := newProtocolFixture(t)

	// A strongly evening type advances slowly.
	evening := f.seedAssessment(t, &domain.CreateAssessmentRequest{MEQResponses: meqAnswers(1)})

	req := &domain.GenerateProtocolRequest{
		Trip:         testTrip(),
		Preferences:  domain.DefaultPreferences(),
		AssessmentID: &evening.ID,
	}
	resp, err := f.svc.Generate(context.Background(), f.userID, req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	defaultReq := &domain.GenerateProtocolRequest{
		Trip:        testTrip(),
		Preferences: domain.DefaultPreferences(),
	}
	f2 := newProtocolFixture(t)
	defaultResp, err := f2.svc.Generate(context.Background(), f2.userID, defaultReq)
	if err != nil {
		t.Fatalf("default Generate() error = %v", err)
	}

	if resp.Protocol.DailyShiftRateHours >= defaultResp.Protocol.DailyShiftRateHours {
		t.Errorf("evening type advances at %v h/day, intermediate at %v; evening should be slower eastward",
			resp.Protocol.DailyShiftRateHours, defaultResp.Protocol.DailyShiftRateHours)
	}
}

func TestProtocolService_GenerateRejectsForeignAssessment(t *testing.T) {
	f := newProtocolFixture(t)

	other := &domain.Assessment{ID: uuid.New(), UserID: uuid.New(), Profile: []byte("{}")}
	if err := f.assessmentRepo.Create(context.Background(), other); err != nil {
		t.Fatalf("seed assessment: %v", err)
	}

	req := &domain.GenerateProtocolRequest{
		Trip:         testTrip(),
		Preferences:  domain.DefaultPreferences(),
		AssessmentID: &other.ID,
	}
	_, err := f.svc.Generate(context.Background(), f.userID, req)
	if err != domain.ErrNotFound {
		t.Errorf("Generate() error = %v, want ErrNotFound", err)
	}
}

func TestProtocolService_GenerateInvalidTrip(t *testing.T) {
	f := newProtocolFixture(t)

	trip := testTrip()
	trip.TripDurationDays = 0
	req := &domain.GenerateProtocolRequest{Trip: trip, Preferences: domain.DefaultPreferences()}

	_, err := f.svc.Generate(context.Background(), f.userID, req)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Generate() error = %v, want ValidationError", err)
	}

	list, err := f.repo.List(context.Background(), f.userID, domain.ProtocolFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("invalid trip stored %d records", len(list))
	}
}

func TestProtocolService_GetByIDOwnership(t *testing.T) {
	f := newProtocolFixture(t)

	req := &domain.GenerateProtocolRequest{Trip: testTrip(), Preferences: domain.DefaultPreferences()}
	resp, err := f.svc.Generate(context.Background(), f.userID, req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := f.svc.GetByID(context.Background(), f.userID, resp.ID); err != nil {
		t.Errorf("owner GetByID() error = %v", err)
	}
	if _, err := f.svc.GetByID(context.Background(), uuid.New(), resp.ID); err != domain.ErrNotFound {
		t.Errorf("foreign GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestProtocolService_List(t *testing.T) {
	f := newProtocolFixture(t)

	req := &domain.GenerateProtocolRequest{Trip: testTrip(), Preferences: domain.DefaultPreferences()}
	for i := 0; i < 3; i++ {
		if _, err := f.svc.Generate(context.Background(), f.userID, req); err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
	}

	resp, err := f.svc.List(context.Background(), f.userID, domain.ProtocolFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(resp.Data) != 3 {
		t.Errorf("List() returned %d summaries, want 3", len(resp.Data))
	}
	if resp.Pagination.HasMore {
		t.Error("List() reports more pages for 3 records")
	}
	for _, summary := range resp.Data {
		if summary.Direction != domain.DirectionEastward {
			t.Errorf("summary direction = %s, want eastward", summary.Direction)
		}
	}
}

func TestProtocolService_UpdateInterventionStatus(t *testing.T) {
	f := newProtocolFixture(t)

	req := &domain.GenerateProtocolRequest{Trip: testTrip(), Preferences: domain.DefaultPreferences()}
	resp, err := f.svc.Generate(context.Background(), f.userID, req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	updated, err := f.svc.UpdateInterventionStatus(context.Background(), f.userID, resp.ID, 1, 0,
		&domain.InterventionStatusRequest{Completed: boolPtr(true)})
	if err != nil {
		t.Fatalf("UpdateInterventionStatus() error = %v", err)
	}

	day := updated.Protocol.Day(1)
	if day == nil {
		t.Fatal("updated protocol lost day 1")
	}
	if !day.Interventions[0].Completed {
		t.Error("intervention not marked completed")
	}

	// The change must persist through the repository.
	reloaded, err := f.svc.GetByID(context.Background(), f.userID, resp.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !reloaded.Protocol.Day(1).Interventions[0].Completed {
		t.Error("completed flag did not persist")
	}
}

func TestProtocolService_UpdateInterventionStatusBounds(t *testing.T) {
	f := newProtocolFixture(t)

	req := &domain.GenerateProtocolRequest{Trip: testTrip(), Preferences: domain.DefaultPreferences()}
	resp, err := f.svc.Generate(context.Background(), f.userID, req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	status := &domain.InterventionStatusRequest{Skipped: boolPtr(true)}

	if _, err := f.svc.UpdateInterventionStatus(context.Background(), f.userID, resp.ID, 99, 0, status); err != domain.ErrNotFound {
		t.Errorf("unknown day error = %v, want ErrNotFound", err)
	}
	if _, err := f.svc.UpdateInterventionStatus(context.Background(), f.userID, resp.ID, 1, 9999, status); err != domain.ErrNotFound {
		t.Errorf("out-of-range index error = %v, want ErrNotFound", err)
	}
}
