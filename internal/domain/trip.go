package domain

import "time"

// Direction is the travel direction relative to time zones.
type Direction string

const (
	// DirectionEastward crosses zones east: the clock jumps forward and the
	// body clock must advance.
	DirectionEastward Direction = "eastward"
	// DirectionWestward crosses zones west: the clock falls back and the
	// body clock must delay.
	DirectionWestward Direction = "westward"
)

// Trip describes a single one-way journey across time zones. Timezone
// identifiers and UTC offsets are supplied by the caller (city lookup is not
// resolved here). Immutable per generation call.
// @Description Trip itinerary with timezone delta and flight timing.
type Trip struct {
	OriginCity      string `json:"origin_city" validate:"required"`
	DestinationCity string `json:"destination_city" validate:"required"`

	// IANA timezone identifiers, e.g. "America/New_York".
	OriginTimezone      string `json:"origin_timezone" validate:"required,timezone"`
	DestinationTimezone string `json:"destination_timezone" validate:"required,timezone"`

	// UTC offsets in minutes at departure and arrival.
	OriginUTCOffsetMin      int `json:"origin_utc_offset_min" validate:"min=-840,max=840"`
	DestinationUTCOffsetMin int `json:"destination_utc_offset_min" validate:"min=-840,max=840"`

	// Local wall-clock timestamps at the respective airports.
	DepartureLocal time.Time `json:"departure_local" validate:"required"`
	ArrivalLocal   time.Time `json:"arrival_local" validate:"required"`

	FlightDurationMin int `json:"flight_duration_min" validate:"required,min=30"`

	// TimezoneShiftHours is the signed zone delta: positive eastward.
	TimezoneShiftHours float64   `json:"timezone_shift_hours" validate:"min=-14,max=14"`
	Direction          Direction `json:"direction" validate:"omitempty,oneof=eastward westward"`

	// TripDurationDays is the planned stay at the destination.
	TripDurationDays int `json:"trip_duration_days" validate:"required,min=1"`
}

// ExpectedDirection derives the travel direction from the sign of the
// timezone shift.
func (t Trip) ExpectedDirection() Direction {
	if t.TimezoneShiftHours >= 0 {
		return DirectionEastward
	}
	return DirectionWestward
}
