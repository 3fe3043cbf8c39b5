package service

import (
	"context"
	"encoding/json"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/engine"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/repository"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/pkg/clock"
	"github.com/google/uuid"
)

const (
	// Fallback schedule when a traveler supplies only questionnaire data.
	defaultBedtimeHour  = 23
	defaultWakeTimeHour = 7
)

// AssessmentService computes and stores chronotype profiles.
type AssessmentService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateAssessmentRequest) (*domain.Assessment, error)
	GetLatest(ctx context.Context, userID uuid.UUID) (*domain.Assessment, error)
}

type assessmentService struct {
	repo     repository.AssessmentRepository
	userRepo repository.UserRepository
}

// NewAssessmentService creates a new AssessmentService.
func NewAssessmentService(repo repository.AssessmentRepository, userRepo repository.UserRepository) AssessmentService {
	return &assessmentService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *assessmentService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateAssessmentRequest) (*domain.Assessment, error) {
	// Validate user exists
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	profile, err := BuildProfile(req)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(profile)
	if err != nil {
		return nil, err
	}

	assessment := &domain.Assessment{
		ID:      uuid.New(),
		UserID:  userID,
		Profile: payload,
	}
	if err := s.repo.Create(ctx, assessment); err != nil {
		return nil, err
	}

	return assessment, nil
}

func (s *assessmentService) GetLatest(ctx context.Context, userID uuid.UUID) (*domain.Assessment, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.repo.GetLatestByUser(ctx, userID)
}

// BuildProfile computes a chronotype profile from the raw assessment inputs.
// Exported so protocol generation can fall back to a default profile built
// from an empty request.
func BuildProfile(req *domain.CreateAssessmentRequest) (*domain.ChronotypeProfile, error) {
	var meqScore *int
	if len(req.MEQResponses) > 0 {
		score, err := engine.ScoreMEQ(req.MEQResponses)
		if err != nil {
			return nil, err
		}
		meqScore = &score
	}

	workBed, err := parseScheduleTime("workday_bedtime", req.WorkdayBedtime)
	if err != nil {
		return nil, err
	}
	workWake, err := parseScheduleTime("workday_wake_time", req.WorkdayWakeTime)
	if err != nil {
		return nil, err
	}
	freeBed, err := parseScheduleTime("free_day_bedtime", req.FreeDayBedtime)
	if err != nil {
		return nil, err
	}
	freeWake, err := parseScheduleTime("free_day_wake_time", req.FreeDayWakeTime)
	if err != nil {
		return nil, err
	}

	haveSchedule := workBed != nil && workWake != nil && freeBed != nil && freeWake != nil
	if meqScore == nil && !haveSchedule {
		return nil, domain.NewValidationError("assessment",
			"provide meq_responses or a complete workday and free-day sleep schedule")
	}

	var msfsc *clock.TimeOfDay
	if haveSchedule {
		m := engine.CorrectedMidSleep(*workBed, *workWake, *freeBed, *freeWake)
		msfsc = &m
	}

	category, err := engine.ResolveChronotype(meqScore, msfsc)
	if err != nil {
		return nil, err
	}

	profile := &domain.ChronotypeProfile{
		MEQScore:          meqScore,
		MidSleepCorrected: msfsc,
		Category:          category,
	}

	fillSchedule(profile, workBed, workWake, freeBed, freeWake)

	markerInput := engine.MarkerInput{
		MEQScore:          meqScore,
		MidSleepCorrected: msfsc,
	}
	if haveSchedule {
		markerInput.HabitualBedtime = &profile.HabitualBedtime
		markerInput.HabitualWakeTime = &profile.HabitualWakeTime
	}

	markers := engine.EstimateMarkers(markerInput)
	profile.DLMO = markers.DLMO
	profile.CBTMin = markers.CBTMin
	profile.Confidence = markers.Confidence
	profile.AdvanceWindow = markers.AdvanceWindow
	profile.DelayWindow = markers.DelayWindow
	profile.DeadZone = markers.DeadZone

	return profile, nil
}

// fillSchedule sets the schedule fields, falling back to a population-typical
// 23:00-07:00 schedule when times are missing. Habitual times weight workdays
// five to two against free days, matching the mid-sleep correction.
func fillSchedule(profile *domain.ChronotypeProfile, workBed, workWake, freeBed, freeWake *clock.TimeOfDay) {
	defaultBed := clock.New(defaultBedtimeHour, 0)
	defaultWake := clock.New(defaultWakeTimeHour, 0)

	profile.WorkdayBedtime = timeOrDefault(workBed, defaultBed)
	profile.WorkdayWakeTime = timeOrDefault(workWake, defaultWake)
	profile.FreeDayBedtime = timeOrDefault(freeBed, defaultBed)
	profile.FreeDayWakeTime = timeOrDefault(freeWake, defaultWake)

	profile.HabitualBedtime = weeklyWeighted(profile.WorkdayBedtime, profile.FreeDayBedtime)
	profile.HabitualWakeTime = weeklyWeighted(profile.WorkdayWakeTime, profile.FreeDayWakeTime)

	workDur := profile.WorkdayBedtime.Until(profile.WorkdayWakeTime)
	freeDur := profile.FreeDayBedtime.Until(profile.FreeDayWakeTime)
	profile.AvgSleepDurationMin = int((workDur*5 + freeDur*2) / 7 * 60)
}

func timeOrDefault(t *clock.TimeOfDay, fallback clock.TimeOfDay) clock.TimeOfDay {
	if t != nil {
		return *t
	}
	return fallback
}

// weeklyWeighted blends a workday and free-day clock time 5:2, moving from
// the workday time toward the free-day time along the shorter arc.
func weeklyWeighted(work, free clock.TimeOfDay) clock.TimeOfDay {
	return work.Add(work.DiffHours(free) * 2.0 / 7.0)
}

func parseScheduleTime(field string, value *string) (*clock.TimeOfDay, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := clock.Parse(*value)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be a valid HH:MM time")
	}
	return &t, nil
}
