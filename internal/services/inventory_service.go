package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/quietfawn/nestling/internal/models"
)

const (
	CheckOutThaw   = "thaw"
	CheckOutDelete = "delete"
)

var (
	ErrInvalidVolume         = errors.New("inventory volume must be positive")
	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrUnknownCheckOutAction = errors.New("unknown check-out action")
)

type InventoryStore interface {
	Create(item *models.InventoryItem) error
	ListStoredByPumpDate(familyID string) ([]models.InventoryItem, error)
	FindByFamilyAndID(familyID string, itemID string) (models.InventoryItem, bool, error)
	UpdateStatus(familyID string, itemID string, status string) error
	DeleteByFamilyAndID(familyID string, itemID string) error
}

type InventoryService struct {
	items InventoryStore
}

// ConsumptionItem is an inventory item annotated for FIFO consumption; the
// first item in a listing (the oldest expressed milk) carries Oldest.
type ConsumptionItem struct {
	models.InventoryItem
	Oldest bool `json:"oldest"`
}

func NewInventoryService(items InventoryStore) *InventoryService {
	return &InventoryService{items: items}
}

// CheckIn stores a new milk unit. Insertion order is irrelevant; consumption
// order is always recomputed from the pump date.
func (service *InventoryService) CheckIn(familyID string, volume float64, pumpDate time.Time, freezeDate time.Time) (models.InventoryItem, error) {
	if volume <= 0 {
		return models.InventoryItem{}, ErrInvalidVolume
	}

	item := models.InventoryItem{
		ID:         uuid.NewString(),
		FamilyID:   familyID,
		Volume:     volume,
		PumpDate:   pumpDate,
		FreezeDate: freezeDate,
		Status:     models.InventoryStored,
	}
	if err := service.items.Create(&item); err != nil {
		return models.InventoryItem{}, err
	}
	return item, nil
}

// CheckOut takes an item out of the stored collection. Thawing marks it
// thawed and keeps the row; deleting removes it.
func (service *InventoryService) CheckOut(familyID string, itemID string, action string) error {
	_, found, err := service.items.FindByFamilyAndID(familyID, itemID)
	if err != nil {
		return err
	}
	if !found {
		return ErrInventoryItemNotFound
	}

	switch action {
	case CheckOutThaw:
		return service.items.UpdateStatus(familyID, itemID, models.InventoryThawed)
	case CheckOutDelete:
		return service.items.DeleteByFamilyAndID(familyID, itemID)
	default:
		return ErrUnknownCheckOutAction
	}
}

// ListForConsumption returns stored items oldest-expressed first, flagging
// the head of the queue.
func (service *InventoryService) ListForConsumption(familyID string) ([]ConsumptionItem, error) {
	items, err := service.items.ListStoredByPumpDate(familyID)
	if err != nil {
		return nil, err
	}

	listing := make([]ConsumptionItem, 0, len(items))
	for index, item := range items {
		listing = append(listing, ConsumptionItem{InventoryItem: item, Oldest: index == 0})
	}
	return listing, nil
}
