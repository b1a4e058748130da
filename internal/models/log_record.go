package models

import "time"

const (
	TypeFeeding = "feeding"
	TypePumping = "pumping"
	TypeDiaper  = "diaper"
	TypeSleep   = "sleep"
)

const (
	SubTypeBreast = "breast"
	SubTypeBottle = "bottle"
)

const (
	ContentsBreastMilk       = "bm"
	ContentsBreastMilkImport = "breast_milk"
	ContentsFormula          = "formula"
)

const (
	DiaperWet   = "wet"
	DiaperDirty = "dirty"
	DiaperBoth  = "both"
)

const (
	SideLeftShort  = "L"
	SideRightShort = "R"
)

// LogRecord is one immutable care event. The type field selects which of the
// optional payload columns carry meaning; the zero value of every other
// column means "absent", matching the sparse document shape the sync feed
// serves back to clients.
type LogRecord struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	FamilyID  string    `gorm:"not null;index" json:"familyId"`
	DeviceID  string    `gorm:"not null" json:"userId"`
	Type      string    `gorm:"not null" json:"type"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`

	SubType  string `json:"subType,omitempty"`
	Contents string `json:"contents,omitempty"`
	Status   string `json:"status,omitempty"`
	Side     string `json:"side,omitempty"`
	LastSide string `json:"lastSide,omitempty"`

	Amount        float64 `json:"amount,omitempty"`
	LeftDuration  float64 `json:"leftDuration,omitempty"`
	RightDuration float64 `json:"rightDuration,omitempty"`
	TotalDuration float64 `json:"totalDuration,omitempty"`
	Duration      int     `json:"duration,omitempty"`

	Manual bool   `json:"manual,omitempty"`
	Notes  string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"-"`
}

func IsValidLogType(logType string) bool {
	switch logType {
	case TypeFeeding, TypePumping, TypeDiaper, TypeSleep:
		return true
	default:
		return false
	}
}

func IsValidDiaperStatus(status string) bool {
	switch status {
	case DiaperWet, DiaperDirty, DiaperBoth:
		return true
	default:
		return false
	}
}
