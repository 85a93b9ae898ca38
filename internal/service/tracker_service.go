package service

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/namnguyen21-f/Nutrition-Tracker/internal/filesync"
	"github.com/namnguyen21-f/Nutrition-Tracker/internal/models"
	"github.com/namnguyen21-f/Nutrition-Tracker/internal/repository"
	"github.com/namnguyen21-f/Nutrition-Tracker/pkg/utils"
)

// ErrNoSyncer is returned by LinkFile when the tracker was built without a
// syncer.
var ErrNoSyncer = errors.New("no file syncer configured")

// Tracker is the state container owning the profile, the date-keyed daily
// logs and the meal plans. The in-memory state is the source of truth: every
// mutation is written through to the local repositories before control
// returns, and a snapshot of the full document is enqueued for linked-file
// sync. Repository and sync failures are logged, never raised to the caller,
// and never roll back the in-memory state.
type Tracker struct {
	mu        sync.RWMutex
	profile   *models.Profile
	logs      map[string]*models.DailyLog
	mealPlans *models.MealPlans

	profiles repository.ProfileRepository
	days     repository.DailyLogRepository
	plans    repository.MealPlanRepository
	syncer   *filesync.Syncer
	logger   *utils.Logger
	now      func() time.Time
}

// NewTracker loads the persisted state (missing pieces fall back to built-in
// defaults) and wires the external-change callback of the syncer. The syncer
// may be nil, in which case nothing is synced and LinkFile fails.
func NewTracker(
	profiles repository.ProfileRepository,
	days repository.DailyLogRepository,
	plans repository.MealPlanRepository,
	syncer *filesync.Syncer,
	logger *utils.Logger,
) (*Tracker, error) {
	t := &Tracker{
		profiles: profiles,
		days:     days,
		plans:    plans,
		syncer:   syncer,
		logger:   logger,
		now:      time.Now,
	}
	if err := t.load(); err != nil {
		return nil, err
	}
	if t.syncer != nil {
		t.syncer.OnExternalChange(t.handleExternalChange)
	}
	return t, nil
}

func (t *Tracker) load() error {
	profile, err := t.profiles.Load()
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}
	if profile == nil {
		profile = models.DefaultProfile(models.DayKey(t.now()))
	}

	logs, err := t.days.FindAll()
	if err != nil {
		return fmt.Errorf("loading daily logs: %w", err)
	}

	plans, err := t.plans.Load()
	if err != nil {
		return fmt.Errorf("loading meal plans: %w", err)
	}
	if plans == nil {
		plans = models.DefaultMealPlans()
	}

	t.profile = profile
	t.logs = logs
	t.mealPlans = plans
	return nil
}

// Profile returns a copy of the current profile.
func (t *Tracker) Profile() models.Profile {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return *t.profile
}

// UpdateProfile replaces the profile and persists it. The target is
// recomputed by callers on demand; nothing is cached.
func (t *Tracker) UpdateProfile(p models.Profile) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.profile = &p
	t.persistProfileLocked()
	t.enqueueSyncLocked()
}

// Target computes the current daily target from the profile. It returns nil
// when required profile fields are missing.
func (t *Tracker) Target() *TargetResult {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return ComputeTargetAt(t.profile, t.now())
}

// Day returns the log for a day key. Days that were never mutated get the
// synthesized default (profile weight, zero totals, empty lists, zero water);
// the default is not persisted by reading it. The returned log is a copy.
func (t *Tracker) Day(date string) *models.DailyLog {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if log, ok := t.logs[date]; ok {
		return log.Clone()
	}
	return models.NewDailyLog(t.profile.Weight)
}

// TodayKey returns the day key of the current local date.
func (t *Tracker) TodayKey() string {
	return models.DayKey(t.now())
}

// AddEntry appends a food or activity entry to the day and bumps the matching
// running total by exactly cal. The entry id is returned. An empty name or a
// non-finite cal makes the call a silent no-op returning "".
func (t *Tracker) AddEntry(date string, kind models.EntryKind, name string, cal float64) string {
	if name == "" || math.IsNaN(cal) || math.IsInf(cal, 0) {
		return ""
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	day := t.ensureDayLocked(date)
	id := t.appendEntryLocked(day, kind, name, cal)
	t.persistDayLocked(date)
	t.enqueueSyncLocked()
	return id
}

func (t *Tracker) appendEntryLocked(day *models.DailyLog, kind models.EntryKind, name string, cal float64) string {
	entry := models.LogEntry{Name: name, Cal: cal, ID: uuid.NewString()}
	if kind == models.EntryFood {
		day.Foods = append(day.Foods, entry)
		day.Intake += cal
	} else {
		day.Activities = append(day.Activities, entry)
		day.Outtake += cal
	}
	return entry.ID
}

// RemoveEntry removes the entry with the given id from the day's food or
// activity list and decrements the matching total by that entry's cal. An
// unknown date or id is a no-op.
func (t *Tracker) RemoveEntry(date string, kind models.EntryKind, id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	day, ok := t.logs[date]
	if !ok {
		return
	}

	list := &day.Activities
	total := &day.Outtake
	if kind == models.EntryFood {
		list = &day.Foods
		total = &day.Intake
	}

	for i, entry := range *list {
		if entry.ID == id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			*total -= entry.Cal
			t.persistDayLocked(date)
			t.enqueueSyncLocked()
			return
		}
	}
}

// SetWeight overwrites the day's weight snapshot without touching its other
// fields.
func (t *Tracker) SetWeight(date string, weight float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	day := t.ensureDayLocked(date)
	day.Weight = weight
	t.persistDayLocked(date)
	t.enqueueSyncLocked()
}

// RecordWeight sets the day's weight snapshot and also updates the profile's
// current weight, mirroring the weight dialog of the app.
func (t *Tracker) RecordWeight(date string, weight float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	day := t.ensureDayLocked(date)
	day.Weight = weight
	p := *t.profile
	p.Weight = weight
	t.profile = &p
	t.persistDayLocked(date)
	t.persistProfileLocked()
	t.enqueueSyncLocked()
}

// AdjustWater adds delta cups to the day's water count, clamped at zero.
// There is no upper bound.
func (t *Tracker) AdjustWater(date string, delta int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	day := t.ensureDayLocked(date)
	day.Water += delta
	if day.Water < 0 {
		day.Water = 0
	}
	t.persistDayLocked(date)
	t.enqueueSyncLocked()
}

// Trend derives the 7-day window ending today from the current store state.
// It is recomputed on every call, never cached.
func (t *Tracker) Trend() []DaySummary {
	t.mu.RLock()
	defer t.mu.RUnlock()
	target := 0
	if r := ComputeTargetAt(t.profile, t.now()); r != nil {
		target = r.TargetCalories
	}
	return ProjectTrend(func(key string) *models.DailyLog {
		return t.logs[key]
	}, target, t.now())
}

// MealPlans returns a copy of all four slots.
func (t *Tracker) MealPlans() models.MealPlans {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return *t.mealPlans.Clone()
}

// SelectForEditing returns a working copy of a slot for an edit session.
// Discarding it leaves the slot untouched.
func (t *Tracker) SelectForEditing(slot models.Slot) Selection {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append(Selection{}, t.mealPlans.Get(slot)...)
}

// CommitMealPlan replaces the slot wholesale with the selection and persists
// it. Unknown slots are a no-op.
func (t *Tracker) CommitMealPlan(slot models.Slot, selection Selection) {
	if !slot.Valid() {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mealPlans.Set(slot, append([]models.PlanItem{}, selection...))
	t.persistPlansLocked()
	t.enqueueSyncLocked()
}

// ApplyMealPlan logs every item of the slot into the day as a fresh food
// entry with its own id. The slot itself is unchanged, so it can be applied
// again tomorrow. An empty slot does nothing.
func (t *Tracker) ApplyMealPlan(slot models.Slot, date string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	items := t.mealPlans.Get(slot)
	if len(items) == 0 {
		return
	}
	day := t.ensureDayLocked(date)
	for _, item := range items {
		t.appendEntryLocked(day, models.EntryFood, item.Name, item.Cal)
	}
	t.persistDayLocked(date)
	t.enqueueSyncLocked()
}

// Export renders the full state document and the dated backup filename.
func (t *Tracker) Export() (filename string, data []byte, err error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	data, err = t.documentLocked().Marshal()
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("nutritrack_backup_%s.json", models.DayKey(t.now())), data, nil
}

// Import parses and validates a document, then replaces whichever of
// profile, logs and meal plans it carries. A malformed document is rejected
// as a whole and the in-memory state is left untouched.
func (t *Tracker) Import(data []byte) error {
	return t.importDocument(data, true)
}

func (t *Tracker) importDocument(data []byte, enqueueSync bool) error {
	doc, err := models.ParseDocument(data)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if doc.Profile != nil {
		p := *doc.Profile
		t.profile = &p
		t.persistProfileLocked()
	}
	if doc.Logs != nil {
		logs := make(map[string]*models.DailyLog, len(doc.Logs))
		for key, log := range doc.Logs {
			logs[key] = log.Clone()
		}
		t.logs = logs
		if err := t.days.DeleteAll(); err != nil {
			t.logger.Errorf("tracker: clearing stored logs: %v", err)
		}
		for key := range t.logs {
			t.persistDayLocked(key)
		}
	}
	if doc.MealPlans != nil {
		t.mealPlans = doc.MealPlans.Clone()
		t.persistPlansLocked()
	}
	if enqueueSync {
		t.enqueueSyncLocked()
	}
	return nil
}

// LinkFile establishes a linked external file: a read-once import of its
// content, then write-through on every mutation. A file that cannot be read
// or parsed aborts the link and preserves any previously linked file.
func (t *Tracker) LinkFile(path string) error {
	if t.syncer == nil {
		return ErrNoSyncer
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}
	if len(data) > 0 {
		if err := t.importDocument(data, false); err != nil {
			return err
		}
	}

	if _, err := t.syncer.Link(path); err != nil {
		return err
	}

	// Baseline write so the file reflects the merged state immediately.
	t.mu.RLock()
	defer t.mu.RUnlock()
	t.enqueueSyncLocked()
	return nil
}

// LinkedFile returns the path of the linked file, or "" when none is linked.
func (t *Tracker) LinkedFile() string {
	if t.syncer == nil {
		return ""
	}
	return t.syncer.Linked()
}

// Reset clears all persisted state and returns to the built-in defaults.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.profile = models.DefaultProfile(models.DayKey(t.now()))
	t.logs = map[string]*models.DailyLog{}
	t.mealPlans = models.DefaultMealPlans()

	if err := t.profiles.Delete(); err != nil {
		t.logger.Errorf("tracker: clearing profile: %v", err)
	}
	if err := t.days.DeleteAll(); err != nil {
		t.logger.Errorf("tracker: clearing daily logs: %v", err)
	}
	if err := t.plans.DeleteAll(); err != nil {
		t.logger.Errorf("tracker: clearing meal plans: %v", err)
	}
	t.enqueueSyncLocked()
}

// handleExternalChange re-imports the linked file after an out-of-band edit.
// The re-import is not written back, to avoid a write loop.
func (t *Tracker) handleExternalChange(data []byte) {
	if err := t.importDocument(data, false); err != nil {
		t.logger.Errorf("tracker: linked file changed but was not importable: %v", err)
		return
	}
	t.logger.Info("tracker: linked file changed externally, state re-imported")
}

// ensureDayLocked materializes the day in the mapping on first mutation.
func (t *Tracker) ensureDayLocked(date string) *models.DailyLog {
	if day, ok := t.logs[date]; ok {
		return day
	}
	day := models.NewDailyLog(t.profile.Weight)
	t.logs[date] = day
	return day
}

func (t *Tracker) documentLocked() *models.Document {
	return &models.Document{
		Profile:   t.profile,
		Logs:      t.logs,
		MealPlans: t.mealPlans,
	}
}

func (t *Tracker) persistProfileLocked() {
	if err := t.profiles.Save(t.profile); err != nil {
		t.logger.Errorf("tracker: persisting profile: %v", err)
	}
}

func (t *Tracker) persistDayLocked(date string) {
	if err := t.days.Save(date, t.logs[date]); err != nil {
		t.logger.Errorf("tracker: persisting day %s: %v", date, err)
	}
}

func (t *Tracker) persistPlansLocked() {
	if err := t.plans.Save(t.mealPlans); err != nil {
		t.logger.Errorf("tracker: persisting meal plans: %v", err)
	}
}

func (t *Tracker) enqueueSyncLocked() {
	if t.syncer == nil {
		return
	}
	data, err := t.documentLocked().Marshal()
	if err != nil {
		t.logger.Errorf("tracker: marshaling sync snapshot: %v", err)
		return
	}
	t.syncer.Enqueue(data)
}
