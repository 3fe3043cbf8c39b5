package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ProtocolRecord is a stored generated protocol. The full protocol document
// is kept as JSON; top-level columns exist for listing and filtering. The
// engine never mutates a record after creation — intervention tracking
// updates replace the payload through the repository.
type ProtocolRecord struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_protocols_user_created" json:"user_id"`
	OriginCity      string    `gorm:"type:varchar(128);not null" json:"origin_city"`
	DestinationCity string    `gorm:"type:varchar(128);not null" json:"destination_city"`
	Direction       Direction `gorm:"type:varchar(16);not null" json:"direction"`
	ShiftHours      float64   `gorm:"not null" json:"shift_hours"`
	Payload         []byte    `gorm:"type:jsonb;not null" json:"-"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index:idx_protocols_user_created,sort:desc" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ProtocolRecord) TableName() string {
	return "protocols"
}

// DecodeProtocol unmarshals the stored protocol document.
func (r *ProtocolRecord) DecodeProtocol() (*Protocol, error) {
	var protocol Protocol
	if err := json.Unmarshal(r.Payload, &protocol); err != nil {
		return nil, err
	}
	return &protocol, nil
}

// GenerateProtocolRequest is the request body for generating a protocol.
// @Description Trip and preferences for protocol generation.
type GenerateProtocolRequest struct {
	Trip        Trip            `json:"trip" validate:"required"`
	Preferences UserPreferences `json:"preferences"`
	// AssessmentID selects a specific stored assessment; defaults to the
	// user's latest.
	AssessmentID *uuid.UUID `json:"assessment_id,omitempty"`
}

// ProtocolResponse is the response body for protocol endpoints.
type ProtocolResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	OriginCity      string    `json:"origin_city"`
	DestinationCity string    `json:"destination_city"`
	Protocol        Protocol  `json:"protocol"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToResponse decodes the payload into a response.
func (r *ProtocolRecord) ToResponse() (*ProtocolResponse, error) {
	protocol, err := r.DecodeProtocol()
	if err != nil {
		return nil, err
	}
	return &ProtocolResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		OriginCity:      r.OriginCity,
		DestinationCity: r.DestinationCity,
		Protocol:        *protocol,
		CreatedAt:       r.CreatedAt,
	}, nil
}

// ProtocolListResponse is the response body for listing protocols.
type ProtocolListResponse struct {
	Data       []ProtocolSummary  `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// ProtocolSummary is a listing row without the full day-by-day payload.
type ProtocolSummary struct {
	ID              uuid.UUID `json:"id"`
	OriginCity      string    `json:"origin_city"`
	DestinationCity string    `json:"destination_city"`
	Direction       Direction `json:"direction"`
	ShiftHours      float64   `json:"shift_hours"`
	CreatedAt       time.Time `json:"created_at"`
}

// Summary builds the listing row for a record.
func (r *ProtocolRecord) Summary() ProtocolSummary {
	return ProtocolSummary{
		ID:              r.ID,
		OriginCity:      r.OriginCity,
		DestinationCity: r.DestinationCity,
		Direction:       r.Direction,
		ShiftHours:      r.ShiftHours,
		CreatedAt:       r.CreatedAt,
	}
}

// PaginationResponse contains cursor pagination metadata.
type PaginationResponse struct {
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

// ProtocolFilter contains list query parameters.
type ProtocolFilter struct {
	Limit  int
	Cursor string
}

// InterventionStatusRequest toggles consumer-owned tracking fields on a
// stored intervention.
type InterventionStatusRequest struct {
	Completed *bool `json:"completed,omitempty"`
	Skipped   *bool `json:"skipped,omitempty"`
}
