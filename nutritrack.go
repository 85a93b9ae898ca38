// Package nutritrack is the core engine of the NutriTrack app: daily-target
// calculation, date-keyed log aggregation, 7-day trend derivation and meal
// planning, backed by a local SQLite database and an optional linked JSON
// file that every mutation is synced to. The surrounding UI is an external
// collaborator that drives the engine through App.
package nutritrack

import (
	"github.com/namnguyen21-f/Nutrition-Tracker/internal/database"
	"github.com/namnguyen21-f/Nutrition-Tracker/internal/filesync"
	"github.com/namnguyen21-f/Nutrition-Tracker/internal/models"
	"github.com/namnguyen21-f/Nutrition-Tracker/internal/repository"
	"github.com/namnguyen21-f/Nutrition-Tracker/internal/service"
	"github.com/namnguyen21-f/Nutrition-Tracker/pkg/config"
	"github.com/namnguyen21-f/Nutrition-Tracker/pkg/utils"
)

// Re-exported so that UI code only imports this package.
type (
	Profile       = models.Profile
	DailyLog      = models.DailyLog
	LogEntry      = models.LogEntry
	MealPlans     = models.MealPlans
	PlanItem      = models.PlanItem
	Slot          = models.Slot
	Gender        = models.Gender
	ActivityLevel = models.ActivityLevel
	EntryKind     = models.EntryKind
	Food          = models.Food
	Document      = models.Document
	TargetResult  = service.TargetResult
	DaySummary    = service.DaySummary
	Selection     = service.Selection
	Config        = config.Config
)

const (
	EntryFood     = models.EntryFood
	EntryActivity = models.EntryActivity

	SlotBreakfast = models.SlotBreakfast
	SlotLunch     = models.SlotLunch
	SlotDinner    = models.SlotDinner
	SlotOther     = models.SlotOther

	GenderMale   = models.GenderMale
	GenderFemale = models.GenderFemale
)

// App owns the tracker state container and its persistence plumbing for one
// session. All methods are driven by discrete user actions; the only
// asynchronous part is the fire-and-forget linked-file sync.
type App struct {
	tracker *service.Tracker
	syncer  *filesync.Syncer
	logger  *utils.Logger
}

// Open loads (or creates) the local database, restores the persisted state
// and links the configured external file, if any. A nil cfg loads the
// environment configuration.
func Open(cfg *Config) (*App, error) {
	if cfg == nil {
		cfg = config.Load()
	}
	logger := utils.NewLogger()

	db, err := database.NewSQLite(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrateTables(db,
		&repository.ProfileRecord{},
		&repository.DailyLogRecord{},
		&repository.MealPlanRecord{},
	); err != nil {
		return nil, err
	}

	syncer := filesync.NewSyncer(logger)
	if !cfg.Sync.WatchLinkedFile {
		syncer.DisableWatch()
	}

	tracker, err := service.NewTracker(
		repository.NewProfileRepo(db),
		repository.NewDailyLogRepo(db),
		repository.NewMealPlanRepo(db),
		syncer,
		logger,
	)
	if err != nil {
		syncer.Close()
		return nil, err
	}

	app := &App{tracker: tracker, syncer: syncer, logger: logger}

	if cfg.Sync.LinkedFile != "" {
		// A link failure is a non-fatal abort of the link attempt.
		if err := tracker.LinkFile(cfg.Sync.LinkedFile); err != nil {
			logger.Errorf("nutritrack: linking %s: %v", cfg.Sync.LinkedFile, err)
		}
	}
	return app, nil
}

// Close flushes any pending linked-file write and stops the syncer. The
// local database needs no explicit shutdown.
func (a *App) Close() error {
	return a.syncer.Close()
}

// Profile returns a copy of the current profile.
func (a *App) Profile() Profile { return a.tracker.Profile() }

// UpdateProfile replaces and persists the profile.
func (a *App) UpdateProfile(p Profile) { a.tracker.UpdateProfile(p) }

// Target computes BMR, TDEE and the daily calorie target from the current
// profile; nil when required fields are missing.
func (a *App) Target() *TargetResult { return a.tracker.Target() }

// TodayKey returns the current local day key (YYYY-MM-DD).
func (a *App) TodayKey() string { return a.tracker.TodayKey() }

// Day returns the log for a day key, synthesizing the default for days that
// were never mutated.
func (a *App) Day(date string) *DailyLog { return a.tracker.Day(date) }

// AddEntry logs a food or activity entry; returns the new entry's id, or ""
// when the guarded no-op fired.
func (a *App) AddEntry(date string, kind EntryKind, name string, cal float64) string {
	return a.tracker.AddEntry(date, kind, name, cal)
}

// RemoveEntry removes an entry by id; unknown dates and ids are no-ops.
func (a *App) RemoveEntry(date string, kind EntryKind, id string) {
	a.tracker.RemoveEntry(date, kind, id)
}

// SetWeight overwrites the day's weight snapshot.
func (a *App) SetWeight(date string, weight float64) { a.tracker.SetWeight(date, weight) }

// RecordWeight sets the day's weight snapshot and the profile's current
// weight in one step.
func (a *App) RecordWeight(date string, weight float64) { a.tracker.RecordWeight(date, weight) }

// AdjustWater adds delta cups to the day's water count, clamped at zero.
func (a *App) AdjustWater(date string, delta int) { a.tracker.AdjustWater(date, delta) }

// Trend returns the 7-day summary window ending today, oldest first.
func (a *App) Trend() []DaySummary { return a.tracker.Trend() }

// MealPlans returns a copy of the four meal slots.
func (a *App) MealPlans() MealPlans { return a.tracker.MealPlans() }

// SelectForEditing returns a discardable working copy of a slot.
func (a *App) SelectForEditing(slot Slot) Selection { return a.tracker.SelectForEditing(slot) }

// CommitMealPlan replaces a slot wholesale with the selection.
func (a *App) CommitMealPlan(slot Slot, selection Selection) {
	a.tracker.CommitMealPlan(slot, selection)
}

// ApplyMealPlan logs every item of the slot into the given day; the slot
// itself is unchanged.
func (a *App) ApplyMealPlan(slot Slot, date string) { a.tracker.ApplyMealPlan(slot, date) }

// SearchFoods filters the shipped food list by substring.
func (a *App) SearchFoods(query string) []Food { return models.SearchFoods(query) }

// Export renders the full state document and its dated backup filename.
func (a *App) Export() (filename string, data []byte, err error) { return a.tracker.Export() }

// Import replaces whichever of profile, logs and meal plans the document
// carries; malformed documents are rejected whole.
func (a *App) Import(data []byte) error { return a.tracker.Import(data) }

// LinkFile imports the file once and then syncs every mutation to it.
func (a *App) LinkFile(path string) error { return a.tracker.LinkFile(path) }

// LinkedFile returns the linked file path, or "" when none is linked.
func (a *App) LinkedFile() string { return a.tracker.LinkedFile() }

// Reset clears all persisted state and returns to built-in defaults.
func (a *App) Reset() { a.tracker.Reset() }
