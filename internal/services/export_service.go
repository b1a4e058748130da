package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/quietfawn/nestling/internal/gateway"
	"github.com/quietfawn/nestling/internal/models"
)

const exportTimestampLayout = "2006-01-02 15:04:05"

var ExportCSVHeaders = []string{
	"Timestamp",
	"Type",
	"Detail",
	"Amount",
	"Unit",
	"Duration (min)",
	"Notes",
}

type ExportService struct {
	store gateway.Gateway
}

func NewExportService(store gateway.Gateway) *ExportService {
	return &ExportService{store: store}
}

// BuildCSV renders the family's full log as CSV in the requesting device's
// volume unit. Detail is whichever of subType, status, or contents the
// record carries; durations are rounded from seconds to whole minutes for
// breast feeds and taken as-is for sleep.
func (service *ExportService) BuildCSV(familyID string, volumeUnit string) (string, error) {
	records, err := service.store.Query(familyID)
	if err != nil {
		return "", fmt.Errorf("fetch logs for export: %w", err)
	}

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(ExportCSVHeaders, ","))
	for _, record := range records {
		lines = append(lines, exportRow(record, volumeUnit))
	}
	return strings.Join(lines, "\n"), nil
}

func exportRow(record models.LogRecord, volumeUnit string) string {
	detail := record.SubType
	if detail == "" {
		detail = record.Status
	}
	if detail == "" {
		detail = record.Contents
	}

	amount := ""
	unit := ""
	if record.Amount != 0 {
		amount = DisplayVolume(record.Amount, volumeUnit)
		unit = volumeUnit
	}

	duration := ""
	if record.TotalDuration > 0 {
		duration = fmt.Sprintf("%d", int(math.Round(record.TotalDuration/60)))
	} else if record.Duration > 0 {
		duration = fmt.Sprintf("%d", record.Duration)
	}

	return strings.Join([]string{
		quoteCSV(record.Timestamp.UTC().Format(exportTimestampLayout)),
		record.Type,
		detail,
		amount,
		unit,
		duration,
		quoteCSV(record.Notes),
	}, ",")
}

func quoteCSV(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
