package db

import (
	"github.com/lunahq/luna/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The service is single-tenant, so the profile lives in one fixed row.
const ownerProfileID = 1

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) Get() (models.Profile, bool, error) {
	profile := models.Profile{}
	result := repo.database.Where("id = ?", ownerProfileID).Limit(1).Find(&profile)
	if result.Error != nil {
		return models.Profile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Profile{}, false, nil
	}
	return profile, true, nil
}

func (repo *ProfileRepository) Upsert(profile models.Profile) (models.Profile, error) {
	profile.ID = ownerProfileID
	err := repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"cycle_length",
			"period_length",
			"last_period_start",
			"age_years",
			"stress_level",
			"exercise_frequency",
			"sleep_hours",
			"updated_at",
		}),
	}).Create(&profile).Error
	if err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}
