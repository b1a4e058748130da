package api

import (
	"time"

	"github.com/quietfawn/nestling/internal/db"
	"github.com/quietfawn/nestling/internal/gateway"
	"github.com/quietfawn/nestling/internal/services"
	"gorm.io/gorm"
)

const sessionCookieName = "nestling_session"

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	tokenTTL     time.Duration
	cookieSecure bool
	location     *time.Location

	repositories     *db.Repositories
	store            *gateway.Store
	familyService    *services.FamilyService
	inventoryService *services.InventoryService
	importService    *services.ImportService
	dedupService     *services.DedupService
	exportService    *services.ExportService
	statsService     *services.StatsService
}

func NewHandler(database *gorm.DB, secretKey string, tokenTTL time.Duration, cookieSecure bool, location *time.Location) *Handler {
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		tokenTTL:     tokenTTL,
		cookieSecure: cookieSecure,
		location:     location,
	}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.store = gateway.NewStore(handler.repositories.Logs)
	handler.familyService = services.NewFamilyService(handler.repositories.Families, handler.repositories.Devices)
	handler.inventoryService = services.NewInventoryService(handler.repositories.Inventory)
	handler.importService = services.NewImportService(handler.store)
	handler.dedupService = services.NewDedupService(handler.store)
	handler.exportService = services.NewExportService(handler.store)
	handler.statsService = services.NewStatsService(handler.store, handler.location)
	return handler
}

// Store exposes the sync gateway for in-process subscribers.
func (handler *Handler) Store() *gateway.Store {
	return handler.store
}
