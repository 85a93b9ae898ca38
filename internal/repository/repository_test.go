package repository

import (
	"path/filepath"
	"testing"

	"github.com/namnguyen21-f/Nutrition-Tracker/internal/database"
	"github.com/namnguyen21-f/Nutrition-Tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	err = database.AutoMigrateTables(db,
		&ProfileRecord{},
		&DailyLogRecord{},
		&MealPlanRecord{},
	)
	require.NoError(t, err)
	return db
}

func TestProfileRepoRoundTrip(t *testing.T) {
	repo := NewProfileRepo(setupTestDB(t))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded) // empty database, no profile yet

	p := models.DefaultProfile("2025-01-10")
	p.Name = "Nam"
	require.NoError(t, repo.Save(p))

	loaded, err = repo.Load()
	require.NoError(t, err)
	assert.Equal(t, p, loaded)

	// Saving again overwrites the single row.
	p.Weight = 68.4
	require.NoError(t, repo.Save(p))
	loaded, err = repo.Load()
	require.NoError(t, err)
	assert.Equal(t, 68.4, loaded.Weight)

	require.NoError(t, repo.Delete())
	loaded, err = repo.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestDailyLogRepoRoundTrip(t *testing.T) {
	repo := NewDailyLogRepo(setupTestDB(t))

	day := &models.DailyLog{
		Weight:  70,
		Intake:  450.5,
		Outtake: 120,
		Water:   3,
		Foods: []models.LogEntry{
			{Name: "Phở Bò", Cal: 450.5, ID: "a"},
		},
		Activities: []models.LogEntry{
			{Name: "Run", Cal: 120, ID: "b"},
		},
	}
	require.NoError(t, repo.Save("2025-01-10", day))
	require.NoError(t, repo.Save("2025-01-11", models.NewDailyLog(70)))

	logs, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, day, logs["2025-01-10"])
	assert.Empty(t, logs["2025-01-11"].Foods)

	// Upsert replaces the day's row.
	day.Intake = 900
	day.Foods = append(day.Foods, models.LogEntry{Name: "Chè", Cal: 449.5, ID: "c"})
	require.NoError(t, repo.Save("2025-01-10", day))
	logs, err = repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, logs["2025-01-10"].Foods, 2)
	assert.Equal(t, 900.0, logs["2025-01-10"].Intake)

	require.NoError(t, repo.DeleteAll())
	logs, err = repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestMealPlanRepoRoundTrip(t *testing.T) {
	repo := NewMealPlanRepo(setupTestDB(t))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	plans := models.DefaultMealPlans()
	plans.Set(models.SlotBreakfast, []models.PlanItem{
		{Name: "Phở Bò", Cal: 450},
		{Name: "Trà Đá", Cal: 0},
	})
	require.NoError(t, repo.Save(plans))

	loaded, err = repo.Load()
	require.NoError(t, err)
	assert.Equal(t, plans, loaded)

	require.NoError(t, repo.DeleteAll())
	loaded, err = repo.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
