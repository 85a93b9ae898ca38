package repository

import (
	"errors"

	"github.com/namnguyen21-f/Nutrition-Tracker/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository persists the single user profile.
type ProfileRepository interface {
	Load() (*models.Profile, error) // (nil, nil) when no profile is stored yet
	Save(p *models.Profile) error
	Delete() error
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Load() (*models.Profile, error) {
	var rec ProfileRecord
	err := r.db.First(&rec, profileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return recordToProfile(&rec), nil
}

func (r *profileRepo) Save(p *models.Profile) error {
	rec := profileToRecord(p)
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(rec).Error
}

func (r *profileRepo) Delete() error {
	return r.db.Where("1 = 1").Delete(&ProfileRecord{}).Error
}
