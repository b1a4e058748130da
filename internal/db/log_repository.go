package db

import (
	"github.com/quietfawn/nestling/internal/models"
	"gorm.io/gorm"
)

type LogRepository struct {
	database *gorm.DB
}

func NewLogRepository(database *gorm.DB) *LogRepository {
	return &LogRepository{database: database}
}

// ListByFamily returns every record in the family partition, newest first.
// This ordering is what the snapshot feed serves back to clients.
func (repo *LogRepository) ListByFamily(familyID string) ([]models.LogRecord, error) {
	records := make([]models.LogRecord, 0)
	if err := repo.database.
		Where("family_id = ?", familyID).
		Order("timestamp DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *LogRepository) FindByID(recordID string) (models.LogRecord, bool, error) {
	record := models.LogRecord{}
	result := repo.database.Where("id = ?", recordID).Limit(1).Find(&record)
	if result.Error != nil {
		return models.LogRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.LogRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *LogRepository) Create(record *models.LogRecord) error {
	return repo.database.Create(record).Error
}

func (repo *LogRepository) DeleteByID(recordID string) error {
	return repo.database.Where("id = ?", recordID).Delete(&models.LogRecord{}).Error
}
