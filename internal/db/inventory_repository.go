package db

import (
	"github.com/quietfawn/nestling/internal/models"
	"gorm.io/gorm"
)

type InventoryRepository struct {
	database *gorm.DB
}

func NewInventoryRepository(database *gorm.DB) *InventoryRepository {
	return &InventoryRepository{database: database}
}

// ListStoredByPumpDate returns stored items oldest-expressed first, the FIFO
// consumption order.
func (repo *InventoryRepository) ListStoredByPumpDate(familyID string) ([]models.InventoryItem, error) {
	items := make([]models.InventoryItem, 0)
	if err := repo.database.
		Where("family_id = ? AND status = ?", familyID, models.InventoryStored).
		Order("pump_date ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *InventoryRepository) FindByFamilyAndID(familyID string, itemID string) (models.InventoryItem, bool, error) {
	item := models.InventoryItem{}
	result := repo.database.
		Where("family_id = ? AND id = ?", familyID, itemID).
		Limit(1).
		Find(&item)
	if result.Error != nil {
		return models.InventoryItem{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.InventoryItem{}, false, nil
	}
	return item, true, nil
}

func (repo *InventoryRepository) Create(item *models.InventoryItem) error {
	return repo.database.Create(item).Error
}

func (repo *InventoryRepository) UpdateStatus(familyID string, itemID string, status string) error {
	return repo.database.
		Model(&models.InventoryItem{}).
		Where("family_id = ? AND id = ?", familyID, itemID).
		Update("status", status).Error
}

func (repo *InventoryRepository) DeleteByFamilyAndID(familyID string, itemID string) error {
	return repo.database.
		Where("family_id = ? AND id = ?", familyID, itemID).
		Delete(&models.InventoryItem{}).Error
}
