package repository

import (
	"github.com/namnguyen21-f/Nutrition-Tracker/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DailyLogRepository persists the date-keyed log mapping. Only days that were
// explicitly mutated have rows; synthesized defaults are never stored.
type DailyLogRepository interface {
	FindAll() (map[string]*models.DailyLog, error)
	Save(date string, log *models.DailyLog) error
	DeleteAll() error
}

type dailyLogRepo struct {
	db *gorm.DB
}

func NewDailyLogRepo(db *gorm.DB) DailyLogRepository {
	return &dailyLogRepo{db: db}
}

func (r *dailyLogRepo) FindAll() (map[string]*models.DailyLog, error) {
	var recs []DailyLogRecord
	if err := r.db.Find(&recs).Error; err != nil {
		return nil, err
	}
	logs := make(map[string]*models.DailyLog, len(recs))
	for i := range recs {
		logs[recs[i].Date] = recordToDay(&recs[i])
	}
	return logs, nil
}

func (r *dailyLogRepo) Save(date string, log *models.DailyLog) error {
	rec := dayToRecord(date, log)
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(rec).Error
}

func (r *dailyLogRepo) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&DailyLogRecord{}).Error
}
