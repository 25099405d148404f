package db

import (
	"time"

	"github.com/lunahq/luna/internal/models"
	"gorm.io/gorm"
)

type DailyLogRepository struct {
	database *gorm.DB
}

func NewDailyLogRepository(database *gorm.DB) *DailyLogRepository {
	return &DailyLogRepository{database: database}
}

func (repo *DailyLogRepository) ListAll() ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	if err := repo.database.Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DailyLogRepository) ListRange(fromStart *time.Time, toEnd *time.Time) ([]models.DailyLog, error) {
	query := repo.database.Model(&models.DailyLog{})
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	logs := make([]models.DailyLog, 0)
	if err := query.Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DailyLogRepository) FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.DailyLog, bool, error) {
	entry := models.DailyLog{}
	result := repo.database.
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DailyLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *DailyLogRepository) Upsert(entry models.DailyLog) (models.DailyLog, error) {
	dayStart := entry.Date
	dayEnd := dayStart.AddDate(0, 0, 1)

	existing, found, err := repo.FindByDayRange(dayStart, dayEnd)
	if err != nil {
		return models.DailyLog{}, err
	}

	if found {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
		if err := repo.database.Save(&entry).Error; err != nil {
			return models.DailyLog{}, err
		}
		return entry, nil
	}

	if err := repo.database.Create(&entry).Error; err != nil {
		return models.DailyLog{}, err
	}
	return entry, nil
}

func (repo *DailyLogRepository) DeleteByDayRange(dayStart time.Time, dayEnd time.Time) (bool, error) {
	result := repo.database.
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Delete(&models.DailyLog{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
