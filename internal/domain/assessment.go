package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MEQResponse is one answered item of the 19-question morningness-eveningness
// questionnaire.
type MEQResponse struct {
	QuestionID int `json:"question_id" validate:"required,min=1,max=19"`
	Value      int `json:"value" validate:"min=0,max=6"`
}

// Assessment is a stored chronotype assessment. The computed profile is kept
// as a JSON document; it is immutable and replaced wholesale on reassessment.
type Assessment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_assessments_user_created" json:"user_id"`
	Profile   []byte    `gorm:"type:jsonb;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_assessments_user_created,sort:desc" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Assessment) TableName() string {
	return "assessments"
}

// DecodeProfile unmarshals the stored profile document.
func (a *Assessment) DecodeProfile() (*ChronotypeProfile, error) {
	var profile ChronotypeProfile
	if err := json.Unmarshal(a.Profile, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateAssessmentRequest is the request body for submitting chronotype
// inputs. MEQ responses and schedule times are each optional, but at least
// one family should be present for a confident estimate.
// @Description Chronotype assessment inputs: MEQ answers and/or sleep schedule.
type CreateAssessmentRequest struct {
	// MEQResponses must contain exactly 19 items when present.
	MEQResponses []MEQResponse `json:"meq_responses,omitempty" validate:"omitempty,dive"`

	// Schedule times as "HH:MM" wall clock values.
	WorkdayBedtime  *string `json:"workday_bedtime,omitempty" validate:"omitempty,len=5"`
	WorkdayWakeTime *string `json:"workday_wake_time,omitempty" validate:"omitempty,len=5"`
	FreeDayBedtime  *string `json:"free_day_bedtime,omitempty" validate:"omitempty,len=5"`
	FreeDayWakeTime *string `json:"free_day_wake_time,omitempty" validate:"omitempty,len=5"`
}

// AssessmentResponse is the response body for assessment endpoints.
type AssessmentResponse struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Profile   ChronotypeProfile `json:"profile"`
	CreatedAt time.Time         `json:"created_at"`
}

// ToResponse decodes the profile payload into a response. Returns an error
// if the stored document is corrupt.
func (a *Assessment) ToResponse() (*AssessmentResponse, error) {
	profile, err := a.DecodeProfile()
	if err != nil {
		return nil, err
	}
	return &AssessmentResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Profile:   *profile,
		CreatedAt: a.CreatedAt,
	}, nil
}
