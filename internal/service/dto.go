package service

// TargetResult is the output of the daily-target calculation. BMR and TDEE
// are kept unrounded; only the final target is rounded.
type TargetResult struct {
	BMR            float64
	TDEE           float64
	TargetCalories int
}

// DaySummary is one point of the 7-day trend window, shaped the way the
// charts consume it.
type DaySummary struct {
	Date        string // day key, YYYY-MM-DD
	Label       string // short weekday name for the chart axis
	Weight      float64
	NetCalories int
	Target      int
}
