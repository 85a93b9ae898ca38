package repository

import (
	"github.com/namnguyen21-f/Nutrition-Tracker/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MealPlanRepository persists the four meal slots.
type MealPlanRepository interface {
	Load() (*models.MealPlans, error) // (nil, nil) when nothing is stored yet
	Save(plans *models.MealPlans) error
	DeleteAll() error
}

type mealPlanRepo struct {
	db *gorm.DB
}

func NewMealPlanRepo(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepo{db: db}
}

func (r *mealPlanRepo) Load() (*models.MealPlans, error) {
	var recs []MealPlanRecord
	if err := r.db.Find(&recs).Error; err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	plans := models.DefaultMealPlans()
	for _, rec := range recs {
		plans.Set(models.Slot(rec.Slot), rec.Items)
	}
	return plans, nil
}

func (r *mealPlanRepo) Save(plans *models.MealPlans) error {
	for _, slot := range models.Slots {
		rec := &MealPlanRecord{Slot: string(slot), Items: plans.Get(slot)}
		if err := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(rec).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *mealPlanRepo) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&MealPlanRecord{}).Error
}
