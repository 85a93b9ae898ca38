package service

import (
	"math"
	"time"

	"github.com/namnguyen21-f/Nutrition-Tracker/internal/models"
)

// kcalPerKg is the energy equivalent of one kilogram of body mass.
const kcalPerKg = 7700

// ComputeTarget derives BMR, TDEE and the daily calorie target from the
// profile, evaluated at the current time.
func ComputeTarget(p *models.Profile) *TargetResult {
	return ComputeTargetAt(p, time.Now())
}

// ComputeTargetAt is ComputeTarget with an explicit evaluation time.
//
// It returns nil when age, height, weight, start date or target date is
// missing; that is a precondition guard, not an error. BMR uses Mifflin-St
// Jeor, TDEE scales it by the activity multiplier, and the target spreads the
// remaining weight delta over the days left until the target date. A target
// date in the past (or today) is clamped to a one-day horizon, which
// compresses the whole delta into a single day; extreme, but the accepted
// behavior.
func ComputeTargetAt(p *models.Profile, now time.Time) *TargetResult {
	if p == nil || p.Age == 0 || p.Height == 0 || p.Weight == 0 ||
		p.StartDate == "" || p.TargetDate == "" {
		return nil
	}
	end, err := models.ParseDayKey(p.TargetDate)
	if err != nil {
		return nil
	}

	daysRemaining := int(math.Ceil(end.Sub(now).Hours() / 24))
	if daysRemaining < 1 {
		daysRemaining = 1
	}

	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := bmr * p.ActivityLevel.Multiplier()
	weightDiff := p.TargetWeight - p.Weight
	dailyAdjustment := weightDiff * kcalPerKg / float64(daysRemaining)

	return &TargetResult{
		BMR:            bmr,
		TDEE:           tdee,
		TargetCalories: int(math.Round(tdee + dailyAdjustment)),
	}
}
