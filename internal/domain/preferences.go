package domain

// UserPreferences selects which interventions the traveler is willing to use
// and how. Pure configuration: nothing here is derived.
// @Description Intervention preferences for protocol generation.
type UserPreferences struct {
	UseMelatonin    bool    `json:"use_melatonin"`
	MelatoninDoseMg float64 `json:"melatonin_dose_mg" validate:"omitempty,min=0.3,max=10"`

	UseCreatine   bool    `json:"use_creatine"`
	CreatineDoseG float64 `json:"creatine_dose_g" validate:"omitempty,min=1,max=10"`

	UseCaffeine bool `json:"use_caffeine"`
	// CaffeineCutoffHours is how many hours before bed caffeine must stop.
	CaffeineCutoffHours float64 `json:"caffeine_cutoff_hours" validate:"omitempty,min=4,max=12"`

	ExercisesRegularly bool `json:"exercises_regularly"`

	// AggressiveAdjustment trades comfort for a faster shift rate.
	AggressiveAdjustment bool `json:"aggressive_adjustment"`
	// IncludeNapGuidance adds strategic nap suggestions to flight and
	// arrival days.
	IncludeNapGuidance bool `json:"include_nap_guidance"`
}

// DefaultPreferences returns the conservative defaults used when a traveler
// has not configured anything.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		UseCaffeine:         true,
		CaffeineCutoffHours: 8,
		IncludeNapGuidance:  true,
	}
}
