package repository

import (
	"time"

	"github.com/namnguyen21-f/Nutrition-Tracker/internal/models"
)

// profileID is the primary key of the single profile row.
const profileID = 1

// ProfileRecord is the persisted form of the user profile. The tracker is
// single-user, so exactly one row exists.
type ProfileRecord struct {
	ID            uint `gorm:"primaryKey"`
	Name          string
	Gender        string `gorm:"size:10"`
	Age           int
	Height        float64
	Weight        float64
	TargetWeight  float64
	ActivityLevel string `gorm:"size:20"`
	StartDate     string `gorm:"size:10"`
	TargetDate    string `gorm:"size:10"`
	StartTime     string `gorm:"size:10"`
	WaterGoal     int
	UpdatedAt     time.Time
}

// TableName returns the table name for ProfileRecord.
func (ProfileRecord) TableName() string {
	return "profile"
}

// DailyLogRecord is one persisted calendar day, keyed by its ISO date. The
// entry lists are stored as JSON columns.
type DailyLogRecord struct {
	Date       string            `gorm:"primaryKey;size:10"`
	Weight     float64
	Intake     float64
	Outtake    float64
	Water      int
	Foods      []models.LogEntry `gorm:"serializer:json"`
	Activities []models.LogEntry `gorm:"serializer:json"`
	UpdatedAt  time.Time
}

// TableName returns the table name for DailyLogRecord.
func (DailyLogRecord) TableName() string {
	return "daily_logs"
}

// MealPlanRecord is one persisted meal slot.
type MealPlanRecord struct {
	Slot      string            `gorm:"primaryKey;size:16"`
	Items     []models.PlanItem `gorm:"serializer:json"`
	UpdatedAt time.Time
}

// TableName returns the table name for MealPlanRecord.
func (MealPlanRecord) TableName() string {
	return "meal_plans"
}

func profileToRecord(p *models.Profile) *ProfileRecord {
	return &ProfileRecord{
		ID:            profileID,
		Name:          p.Name,
		Gender:        string(p.Gender),
		Age:           p.Age,
		Height:        p.Height,
		Weight:        p.Weight,
		TargetWeight:  p.TargetWeight,
		ActivityLevel: string(p.ActivityLevel),
		StartDate:     p.StartDate,
		TargetDate:    p.TargetDate,
		StartTime:     p.StartTime,
		WaterGoal:     p.WaterGoal,
	}
}

func recordToProfile(r *ProfileRecord) *models.Profile {
	return &models.Profile{
		Name:          r.Name,
		Gender:        models.Gender(r.Gender),
		Age:           r.Age,
		Height:        r.Height,
		Weight:        r.Weight,
		TargetWeight:  r.TargetWeight,
		ActivityLevel: models.ActivityLevel(r.ActivityLevel),
		StartDate:     r.StartDate,
		TargetDate:    r.TargetDate,
		StartTime:     r.StartTime,
		WaterGoal:     r.WaterGoal,
	}
}

func dayToRecord(date string, d *models.DailyLog) *DailyLogRecord {
	return &DailyLogRecord{
		Date:       date,
		Weight:     d.Weight,
		Intake:     d.Intake,
		Outtake:    d.Outtake,
		Water:      d.Water,
		Foods:      d.Foods,
		Activities: d.Activities,
	}
}

func recordToDay(r *DailyLogRecord) *models.DailyLog {
	foods := r.Foods
	if foods == nil {
		foods = []models.LogEntry{}
	}
	activities := r.Activities
	if activities == nil {
		activities = []models.LogEntry{}
	}
	return &models.DailyLog{
		Weight:     r.Weight,
		Intake:     r.Intake,
		Outtake:    r.Outtake,
		Water:      r.Water,
		Foods:      foods,
		Activities: activities,
	}
}
