package models

// EntryKind distinguishes the two lists a LogEntry can live in.
type EntryKind string

const (
	EntryFood     EntryKind = "food"
	EntryActivity EntryKind = "activity"
)

// LogEntry is a single logged food or activity. Entries are never mutated in
// place; they are created on add and destroyed on remove. Cal is unvalidated
// and may be fractional, zero or negative.
type LogEntry struct {
	Name string  `json:"name"`
	Cal  float64 `json:"cal"`
	ID   string  `json:"id"`
}

// DailyLog is one calendar day of tracked data. Intake always equals the sum
// of Foods[].Cal and Outtake the sum of Activities[].Cal; both totals are
// maintained incrementally on every insert and remove.
type DailyLog struct {
	Weight     float64    `json:"weight"` // kg snapshot for the day
	Intake     float64    `json:"intake"` // kcal
	Outtake    float64    `json:"outtake"`
	Water      int        `json:"water,omitempty"` // cups
	Foods      []LogEntry `json:"foods"`
	Activities []LogEntry `json:"activities"`
}

// Net returns intake minus outtake for the day.
func (d *DailyLog) Net() float64 {
	return d.Intake - d.Outtake
}

// Clone returns a deep copy, so synthesized defaults and read results can be
// handed out without exposing the store's own slices.
func (d *DailyLog) Clone() *DailyLog {
	c := *d
	c.Foods = append([]LogEntry(nil), d.Foods...)
	c.Activities = append([]LogEntry(nil), d.Activities...)
	return &c
}

// NewDailyLog returns the synthesized default for a day with no explicit log:
// the profile's current weight and zeroed totals. It is not persisted until
// the first mutation touches the day.
func NewDailyLog(profileWeight float64) *DailyLog {
	return &DailyLog{
		Weight:     profileWeight,
		Foods:      []LogEntry{},
		Activities: []LogEntry{},
	}
}
