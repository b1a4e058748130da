package models

import "time"

// Preference keys mirror the client-side keys the original app kept locally.
const (
	PrefDisplayName       = "displayName"
	PrefVolumeUnit        = "volumeUnit"
	PrefVisibleCategories = "visibleCategories"
	PrefDarkMode          = "darkMode"
	PrefTimerSession      = "breastTimerState"
)

// Preference is an opaque per-device key/value pair. Each key is read
// independently at startup and written on change.
type Preference struct {
	DeviceID  string    `gorm:"primaryKey"`
	Key       string    `gorm:"primaryKey"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time
}
