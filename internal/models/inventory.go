package models

import "time"

const (
	InventoryStored   = "stored"
	InventoryThawed   = "thawed"
	InventoryConsumed = "consumed"
)

// InventoryItem is one stored-milk unit. FreezeDate is a calendar date,
// coarser than PumpDate's instant; consumption priority is PumpDate
// ascending, never insertion order.
type InventoryItem struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	FamilyID   string    `gorm:"not null;index" json:"familyId"`
	Volume     float64   `gorm:"not null" json:"volume"`
	PumpDate   time.Time `gorm:"not null" json:"pumpDate"`
	FreezeDate time.Time `gorm:"type:date;not null" json:"freezeDate"`
	Status     string    `gorm:"not null;default:stored" json:"status"`
	CreatedAt  time.Time `json:"-"`
}
