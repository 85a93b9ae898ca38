package models

import "time"

// Gender of the tracked user. Only two values are modelled; anything else
// falls into the non-male branch of the BMR formula.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel scales BMR into TDEE.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityExtra     ActivityLevel = "extra"
)

// activityMultipliers is the single source of truth for valid activity levels.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityActive:    1.725,
	ActivityExtra:     1.9,
}

// Multiplier returns the TDEE multiplier for the level. Unknown or missing
// levels fall back to the sedentary multiplier 1.2.
func (a ActivityLevel) Multiplier() float64 {
	if m, ok := activityMultipliers[a]; ok {
		return m
	}
	return 1.2
}

// Valid reports whether the level is one of the five known values.
func (a ActivityLevel) Valid() bool {
	_, ok := activityMultipliers[a]
	return ok
}

// DefaultWaterGoal is the daily water goal in cups when the profile does not
// set one.
const DefaultWaterGoal = 8

// Profile holds the user's biometric and goal parameters. The JSON tags match
// the document schema, so files written by earlier versions of the app import
// unchanged.
type Profile struct {
	Name          string        `json:"name"`
	Gender        Gender        `json:"gender"`
	Age           int           `json:"age"`
	Height        float64       `json:"height"` // cm
	Weight        float64       `json:"weight"` // kg, current
	TargetWeight  float64       `json:"targetWeight"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	StartDate     string        `json:"startDate"`  // YYYY-MM-DD
	TargetDate    string        `json:"targetDate"` // YYYY-MM-DD
	StartTime     string        `json:"startTime,omitempty"`
	WaterGoal     int           `json:"waterGoal,omitempty"` // cups
}

// EffectiveWaterGoal returns the profile's water goal in cups, falling back
// to the default when unset.
func (p *Profile) EffectiveWaterGoal() int {
	if p.WaterGoal > 0 {
		return p.WaterGoal
	}
	return DefaultWaterGoal
}

// DefaultProfile returns the built-in profile used before the user edits
// anything, with startDate set to the given day.
func DefaultProfile(today string) *Profile {
	return &Profile{
		Name:          "User",
		Gender:        GenderMale,
		Age:           25,
		Height:        175,
		Weight:        70,
		TargetWeight:  65,
		ActivityLevel: ActivityModerate,
		StartDate:     today,
		TargetDate:    "2026-03-01",
		WaterGoal:     DefaultWaterGoal,
	}
}

// DayKeyLayout is the time layout for day keys and profile dates.
const DayKeyLayout = "2006-01-02"

// DayKey formats t as the local calendar day key indexing the log mapping.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDayKey parses a day key in the local time zone.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(DayKeyLayout, key, time.Local)
}
