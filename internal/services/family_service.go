package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/quietfawn/nestling/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrFamilyExists       = errors.New("family key already taken")
	ErrFamilyNotFound     = errors.New("family not found")
	ErrInvalidFamilyKey   = errors.New("invalid family key")
	ErrWrongPassphrase    = errors.New("wrong passphrase")
	ErrPassphraseTooShort = errors.New("passphrase too short")
)

const minPassphraseLength = 6

type FamilyRepositoryAPI interface {
	Create(family *models.Family) error
	FindByID(familyID string) (models.Family, bool, error)
}

type DeviceRepositoryAPI interface {
	Create(device *models.Device) error
	FindByID(deviceID string) (models.Device, bool, error)
}

type FamilyService struct {
	families FamilyRepositoryAPI
	devices  DeviceRepositoryAPI
}

func NewFamilyService(families FamilyRepositoryAPI, devices DeviceRepositoryAPI) *FamilyService {
	return &FamilyService{families: families, devices: devices}
}

// CreateFamily registers a new sync partition under the shared key and joins
// the creating device in one step.
func (service *FamilyService) CreateFamily(familyKey string, name string, passphrase string, deviceLabel string) (models.Family, models.Device, error) {
	familyKey = NormalizeFamilyKey(familyKey)
	if familyKey == "" {
		return models.Family{}, models.Device{}, ErrInvalidFamilyKey
	}
	if len(passphrase) < minPassphraseLength {
		return models.Family{}, models.Device{}, ErrPassphraseTooShort
	}

	_, exists, err := service.families.FindByID(familyKey)
	if err != nil {
		return models.Family{}, models.Device{}, err
	}
	if exists {
		return models.Family{}, models.Device{}, ErrFamilyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return models.Family{}, models.Device{}, err
	}

	family := models.Family{
		ID:             familyKey,
		Name:           strings.TrimSpace(name),
		PassphraseHash: string(hash),
	}
	if err := service.families.Create(&family); err != nil {
		return models.Family{}, models.Device{}, err
	}

	device, err := service.registerDevice(family.ID, deviceLabel)
	if err != nil {
		return models.Family{}, models.Device{}, err
	}
	return family, device, nil
}

// JoinFamily authenticates the shared key + passphrase pair and registers a
// new device identity in the family.
func (service *FamilyService) JoinFamily(familyKey string, passphrase string, deviceLabel string) (models.Family, models.Device, error) {
	familyKey = NormalizeFamilyKey(familyKey)

	family, found, err := service.families.FindByID(familyKey)
	if err != nil {
		return models.Family{}, models.Device{}, err
	}
	if !found {
		return models.Family{}, models.Device{}, ErrFamilyNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(family.PassphraseHash), []byte(passphrase)) != nil {
		return models.Family{}, models.Device{}, ErrWrongPassphrase
	}

	device, err := service.registerDevice(family.ID, deviceLabel)
	if err != nil {
		return models.Family{}, models.Device{}, err
	}
	return family, device, nil
}

func (service *FamilyService) FindDevice(deviceID string) (models.Device, bool, error) {
	return service.devices.FindByID(deviceID)
}

func (service *FamilyService) registerDevice(familyID string, label string) (models.Device, error) {
	device := models.Device{
		ID:       uuid.NewString(),
		FamilyID: familyID,
		Label:    strings.TrimSpace(label),
	}
	if err := service.devices.Create(&device); err != nil {
		return models.Device{}, err
	}
	return device, nil
}

// NormalizeFamilyKey lowercases and trims the shared key so the same key
// typed on two devices lands in the same partition.
func NormalizeFamilyKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
