package db

import (
	"github.com/quietfawn/nestling/internal/models"
	"gorm.io/gorm"
)

type FamilyRepository struct {
	database *gorm.DB
}

func NewFamilyRepository(database *gorm.DB) *FamilyRepository {
	return &FamilyRepository{database: database}
}

func (repo *FamilyRepository) Create(family *models.Family) error {
	return repo.database.Create(family).Error
}

func (repo *FamilyRepository) FindByID(familyID string) (models.Family, bool, error) {
	family := models.Family{}
	result := repo.database.Where("id = ?", familyID).Limit(1).Find(&family)
	if result.Error != nil {
		return models.Family{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Family{}, false, nil
	}
	return family, true, nil
}

type DeviceRepository struct {
	database *gorm.DB
}

func NewDeviceRepository(database *gorm.DB) *DeviceRepository {
	return &DeviceRepository{database: database}
}

func (repo *DeviceRepository) Create(device *models.Device) error {
	return repo.database.Create(device).Error
}

func (repo *DeviceRepository) FindByID(deviceID string) (models.Device, bool, error) {
	device := models.Device{}
	result := repo.database.Where("id = ?", deviceID).Limit(1).Find(&device)
	if result.Error != nil {
		return models.Device{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Device{}, false, nil
	}
	return device, true, nil
}
