package models

import "time"

// Family is the sync partition: every log record and inventory item belongs
// to exactly one family, and every device joined with the shared key sees
// the same feed.
type Family struct {
	ID             string    `gorm:"primaryKey"`
	Name           string    `gorm:"not null"`
	PassphraseHash string    `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`
}

// Device is one joined client identity; its ID travels on every record it
// creates as userId.
type Device struct {
	ID        string    `gorm:"primaryKey"`
	FamilyID  string    `gorm:"not null;index"`
	Label     string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}
