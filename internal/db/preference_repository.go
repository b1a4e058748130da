package db

import (
	"github.com/quietfawn/nestling/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepository struct {
	database *gorm.DB
}

func NewPreferenceRepository(database *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{database: database}
}

func (repo *PreferenceRepository) Get(deviceID string, key string) (string, bool, error) {
	pref := models.Preference{}
	result := repo.database.
		Where("device_id = ? AND key = ?", deviceID, key).
		Limit(1).
		Find(&pref)
	if result.Error != nil {
		return "", false, result.Error
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return pref.Value, true, nil
}

func (repo *PreferenceRepository) Set(deviceID string, key string, value string) error {
	pref := models.Preference{DeviceID: deviceID, Key: key, Value: value}
	return repo.database.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&pref).Error
}

func (repo *PreferenceRepository) ListByDevice(deviceID string) (map[string]string, error) {
	prefs := make([]models.Preference, 0)
	if err := repo.database.Where("device_id = ?", deviceID).Find(&prefs).Error; err != nil {
		return nil, err
	}

	values := make(map[string]string, len(prefs))
	for _, pref := range prefs {
		values[pref.Key] = pref.Value
	}
	return values, nil
}
