package service

import (
	"math"
	"time"

	"github.com/namnguyen21-f/Nutrition-Tracker/internal/models"
)

// TrendWindowDays is the fixed length of the trend window.
const TrendWindowDays = 7

// ProjectTrend derives one summary per day for the 7 consecutive calendar
// days ending at now, oldest first. lookup returns the stored log for a day
// key, or nil when the day was never logged.
//
// Days without a log contribute net 0 and weight 0. A zero weight from a
// missing day is indistinguishable from a logged zero; consumers must not
// read it as "no data". The target is today's target repeated across all
// seven points, not a historical record.
func ProjectTrend(lookup func(key string) *models.DailyLog, targetCalories int, now time.Time) []DaySummary {
	out := make([]DaySummary, 0, TrendWindowDays)
	for i := TrendWindowDays - 1; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		s := DaySummary{
			Date:   models.DayKey(d),
			Label:  d.Format("Mon"),
			Target: targetCalories,
		}
		if log := lookup(s.Date); log != nil {
			s.Weight = log.Weight
			s.NetCalories = int(math.Round(log.Net()))
		}
		out = append(out, s)
	}
	return out
}
