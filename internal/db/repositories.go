package db

import "gorm.io/gorm"

type Repositories struct {
	Logs        *LogRepository
	Inventory   *InventoryRepository
	Families    *FamilyRepository
	Devices     *DeviceRepository
	Preferences *PreferenceRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Logs:        NewLogRepository(database),
		Inventory:   NewInventoryRepository(database),
		Families:    NewFamilyRepository(database),
		Devices:     NewDeviceRepository(database),
		Preferences: NewPreferenceRepository(database),
	}
}
