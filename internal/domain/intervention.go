package domain

import (
	"encoding/json"
	"fmt"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/pkg/clock"
)

// InterventionType tags the kind of circadian intervention.
type InterventionType string

const (
	InterventionLightSeek  InterventionType = "light_seek"
	InterventionLightAvoid InterventionType = "light_avoid"
	InterventionSleep      InterventionType = "sleep"
	InterventionMelatonin  InterventionType = "melatonin"
	InterventionCaffeine   InterventionType = "caffeine"
	InterventionMeal       InterventionType = "meal"
	InterventionExercise   InterventionType = "exercise"
	InterventionCreatine   InterventionType = "creatine"
)

// Priority ranks how important an intervention is for the shift.
type Priority string

const (
	PriorityCritical    Priority = "critical"
	PriorityRecommended Priority = "recommended"
	PriorityOptional    Priority = "optional"
)

// InterventionDetails is the type-specific payload of an intervention: a
// tagged variant, one concrete struct per InterventionType. Consumers switch
// exhaustively on the concrete type instead of reading optional fields.
type InterventionDetails interface {
	// Kind returns the intervention type this payload belongs to.
	Kind() InterventionType
}

// LightSeekDetails describes a bright-light exposure window.
type LightSeekDetails struct {
	MinLux           int  `json:"min_lux"`
	OutdoorPreferred bool `json:"outdoor_preferred"`
}

func (LightSeekDetails) Kind() InterventionType { return InterventionLightSeek }

// LightAvoidDetails describes a light-avoidance window.
type LightAvoidDetails struct {
	WearSunglasses  bool `json:"wear_sunglasses"`
	DimIndoorLights bool `json:"dim_indoor_lights"`
}

func (LightAvoidDetails) Kind() InterventionType { return InterventionLightAvoid }

// SleepDetails describes a sleep or nap window.
type SleepDetails struct {
	// SleepKind is "core" for the main sleep episode, "nap" for in-flight or
	// strategic naps.
	SleepKind         string `json:"sleep_kind"`
	TargetDurationMin int    `json:"target_duration_min"`
	// FullCycle marks a 90-minute nap sized to a complete sleep cycle.
	FullCycle bool `json:"full_cycle"`
}

func (SleepDetails) Kind() InterventionType { return InterventionSleep }

// MelatoninDetails describes a melatonin dose.
type MelatoninDetails struct {
	DoseMg float64 `json:"dose_mg"`
	// Purpose is "phase_shift" for PRC-timed doses, "sleep_aid" for doses at
	// target bedtime.
	Purpose string `json:"purpose"`
}

func (MelatoninDetails) Kind() InterventionType { return InterventionMelatonin }

// CaffeineDetails describes a caffeine allowance or prohibition window.
type CaffeineDetails struct {
	Allowed     bool             `json:"allowed"`
	CutoffTime  *clock.TimeOfDay `json:"cutoff_time,omitempty"`
	MaxServings int              `json:"max_servings,omitempty"`
}

func (CaffeineDetails) Kind() InterventionType { return InterventionCaffeine }

// MealDetails describes a meal recommendation.
type MealDetails struct {
	// Meal is breakfast, lunch, dinner, or service for in-flight meals.
	Meal string `json:"meal"`
	// Recommendation is "eat", "light", or "skip".
	Recommendation string `json:"recommendation"`
}

func (MealDetails) Kind() InterventionType { return InterventionMeal }

// ExerciseDetails describes an exercise window.
type ExerciseDetails struct {
	Intensity   string `json:"intensity"`
	DurationMin int    `json:"duration_min"`
}

func (ExerciseDetails) Kind() InterventionType { return InterventionExercise }

// CreatineDetails describes a creatine dose.
type CreatineDetails struct {
	DoseG    float64 `json:"dose_g"`
	WithFood bool    `json:"with_food"`
}

func (CreatineDetails) Kind() InterventionType { return InterventionCreatine }

// Intervention is one timed action within a protocol day. The engine
// constructs interventions with Completed and Skipped always false; only the
// consumer toggles those after generation.
// @Description A precisely timed circadian intervention.
type Intervention struct {
	Type  InterventionType `json:"type"`
	Start clock.TimeOfDay  `json:"start"`
	End   *clock.TimeOfDay `json:"end,omitempty"`
	// DurationMin is set when the action has a fixed length (naps, exercise).
	DurationMin *int `json:"duration_min,omitempty"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Rationale   string `json:"rationale,omitempty"`

	Priority Priority `json:"priority"`

	// Pinned forces the intervention to sort first regardless of clock time
	// (used for the boarding marker on the flight day).
	Pinned bool `json:"pinned,omitempty"`

	Details InterventionDetails `json:"-"`

	// Consumer-owned tracking state, never set by generation.
	Completed bool `json:"completed"`
	Skipped   bool `json:"skipped"`
}

// interventionJSON is the wire shape; Details is flattened into a tagged
// object under "details".
type interventionJSON struct {
	Type        InterventionType `json:"type"`
	Start       clock.TimeOfDay  `json:"start"`
	End         *clock.TimeOfDay `json:"end,omitempty"`
	DurationMin *int             `json:"duration_min,omitempty"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Rationale   string           `json:"rationale,omitempty"`
	Priority    Priority         `json:"priority"`
	Pinned      bool             `json:"pinned,omitempty"`
	Details     json.RawMessage  `json:"details,omitempty"`
	Completed   bool             `json:"completed"`
	Skipped     bool             `json:"skipped"`
}

// MarshalJSON encodes the details payload with a "kind" discriminator so the
// variant can be reconstructed on decode.
func (i Intervention) MarshalJSON() ([]byte, error) {
	out := interventionJSON{
		Type:        i.Type,
		Start:       i.Start,
		End:         i.End,
		DurationMin: i.DurationMin,
		Title:       i.Title,
		Description: i.Description,
		Rationale:   i.Rationale,
		Priority:    i.Priority,
		Pinned:      i.Pinned,
		Completed:   i.Completed,
		Skipped:     i.Skipped,
	}

	if i.Details != nil {
		raw, err := json.Marshal(i.Details)
		if err != nil {
			return nil, err
		}
		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
		fields["kind"] = i.Details.Kind()
		tagged, err := json.Marshal(fields)
		if err != nil {
			return nil, err
		}
		out.Details = tagged
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes the tagged details payload back into its concrete
// variant.
func (i *Intervention) UnmarshalJSON(data []byte) error {
	var in interventionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	i.Type = in.Type
	i.Start = in.Start
	i.End = in.End
	i.DurationMin = in.DurationMin
	i.Title = in.Title
	i.Description = in.Description
	i.Rationale = in.Rationale
	i.Priority = in.Priority
	i.Pinned = in.Pinned
	i.Completed = in.Completed
	i.Skipped = in.Skipped
	i.Details = nil

	if len(in.Details) == 0 {
		return nil
	}

	var tag struct {
		Kind InterventionType `json:"kind"`
	}
	if err := json.Unmarshal(in.Details, &tag); err != nil {
		return err
	}

	details, err := decodeDetails(tag.Kind, in.Details)
	if err != nil {
		return err
	}
	i.Details = details
	return nil
}

func decodeDetails(kind InterventionType, raw json.RawMessage) (InterventionDetails, error) {
	switch kind {
	case InterventionLightSeek:
		var d LightSeekDetails
		return d, json.Unmarshal(raw, &d)
	case InterventionLightAvoid:
		var d LightAvoidDetails
		return d, json.Unmarshal(raw, &d)
	case InterventionSleep:
		var d SleepDetails
		return d, json.Unmarshal(raw, &d)
	case InterventionMelatonin:
		var d MelatoninDetails
		return d, json.Unmarshal(raw, &d)
	case InterventionCaffeine:
		var d CaffeineDetails
		return d, json.Unmarshal(raw, &d)
	case InterventionMeal:
		var d MealDetails
		return d, json.Unmarshal(raw, &d)
	case InterventionExercise:
		var d ExerciseDetails
		return d, json.Unmarshal(raw, &d)
	case InterventionCreatine:
		var d CreatineDetails
		return d, json.Unmarshal(raw, &d)
	default:
		return nil, fmt.Errorf("unknown intervention details kind %q", kind)
	}
}
