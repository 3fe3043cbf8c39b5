package seed

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/engine"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/service"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type demoTraveler struct {
	id       uuid.UUID
	timezone string
	schedule domain.CreateAssessmentRequest
}

func str(s string) *string { return &s }

var demoTravelers = []demoTraveler{
	{
		id:       uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		timezone: "Europe/Amsterdam",
		schedule: domain.CreateAssessmentRequest{
			WorkdayBedtime:  str("22:30"),
			WorkdayWakeTime: str("06:30"),
			FreeDayBedtime:  str("23:00"),
			FreeDayWakeTime: str("07:30"),
		},
	},
	{
		id:       uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		timezone: "America/New_York",
		schedule: domain.CreateAssessmentRequest{
			WorkdayBedtime:  str("23:30"),
			WorkdayWakeTime: str("07:00"),
			FreeDayBedtime:  str("01:30"),
			FreeDayWakeTime: str("09:30"),
		},
	},
	{
		id:       uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		timezone: "Asia/Tokyo",
		schedule: domain.CreateAssessmentRequest{
			WorkdayBedtime:  str("00:30"),
			WorkdayWakeTime: str("08:00"),
			FreeDayBedtime:  str("02:30"),
			FreeDayWakeTime: str("10:30"),
		},
	},
}

// Run seeds the database with demo travelers, chronotype assessments, and one
// generated protocol each. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.Assessment{}, &domain.ProtocolRecord{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	for _, traveler := range demoTravelers {
		user := domain.User{ID: traveler.id, HomeTimezone: traveler.timezone}
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}

		profile, err := seedAssessment(db, traveler)
		if err != nil {
			return err
		}

		if err := seedProtocol(db, traveler, profile); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedAssessment(db *gorm.DB, traveler demoTraveler) (*domain.ChronotypeProfile, error) {
	profile, err := service.BuildProfile(&traveler.schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to build profile for %s: %w", traveler.id, err)
	}

	payload, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}

	assessment := domain.Assessment{
		ID:      uuid.New(),
		UserID:  traveler.id,
		Profile: payload,
	}
	if err := db.Where("user_id = ?", traveler.id).FirstOrCreate(&assessment).Error; err != nil {
		return nil, fmt.Errorf("failed to create assessment for %s: %w", traveler.id, err)
	}
	return profile, nil
}

func seedProtocol(db *gorm.DB, traveler demoTraveler, profile *domain.ChronotypeProfile) error {
	trip := demoTrip()

	protocol, err := engine.GenerateProtocol(trip, *profile, domain.DefaultPreferences(), engine.GenerateOptions{})
	if err != nil {
		return fmt.Errorf("failed to generate protocol for %s: %w", traveler.id, err)
	}

	payload, err := json.Marshal(protocol)
	if err != nil {
		return fmt.Errorf("failed to encode protocol: %w", err)
	}

	record := domain.ProtocolRecord{
		ID:              uuid.New(),
		UserID:          traveler.id,
		OriginCity:      trip.OriginCity,
		DestinationCity: trip.DestinationCity,
		Direction:       protocol.Direction,
		ShiftHours:      trip.TimezoneShiftHours,
		Payload:         payload,
	}
	if err := db.Where("user_id = ?", traveler.id).FirstOrCreate(&record).Error; err != nil {
		return fmt.Errorf("failed to create protocol for %s: %w", traveler.id, err)
	}
	return nil
}

// demoTrip builds a red-eye from New York to London departing two weeks out.
func demoTrip() domain.Trip {
	departure := time.Now().UTC().AddDate(0, 0, 14).Truncate(24 * time.Hour).Add(19 * time.Hour)

	return domain.Trip{
		OriginCity:              "New York",
		DestinationCity:         "London",
		OriginTimezone:          "America/New_York",
		DestinationTimezone:     "Europe/London",
		OriginUTCOffsetMin:      -300,
		DestinationUTCOffsetMin: 0,
		DepartureLocal:          departure,
		ArrivalLocal:            departure.Add(12 * time.Hour),
		FlightDurationMin:       420,
		TimezoneShiftHours:      5,
		Direction:               domain.DirectionEastward,
		TripDurationDays:        7,
	}
}
