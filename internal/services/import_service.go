package services

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/quietfawn/nestling/internal/gateway"
	"github.com/quietfawn/nestling/internal/models"
)

const (
	importKindFeeding    = "feeding"
	importKindExpression = "expression"
	importKindDiaper     = "diaper"
)

// importTimestampLayouts covers the legacy export's
// "2006-01-02 15:04:05.840147+00" form plus the plain variants some rows use.
var importTimestampLayouts = []string{
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02 15:04:05.999999-07:00",
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
}

// ImportResult is the single summary a batch run reports: how many rows made
// it into the store, and how many were dropped or failed along the way.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

type ImportService struct {
	store gateway.Gateway
}

func NewImportService(store gateway.Gateway) *ImportService {
	return &ImportService{store: store}
}

// ImportLegacyCSV replays a legacy export into the family log, one append per
// row. Unknown kinds and unparseable rows are skipped, never fatal; a failed
// append counts as failed and the batch continues. Re-running the same file
// creates duplicates by design - deduplication is the companion operation.
func (service *ImportService) ImportLegacyCSV(familyID string, deviceID string, csvText string) ImportResult {
	result := ImportResult{}

	lines := strings.Split(csvText, "\n")
	if len(lines) == 0 {
		return result
	}

	headers := splitCSVLine(strings.TrimRight(lines[0], "\r"))
	for index := range headers {
		headers[index] = strings.TrimSpace(headers[index])
	}

	for lineNumber := 1; lineNumber < len(lines); lineNumber++ {
		line := strings.TrimSpace(lines[lineNumber])
		if line == "" {
			continue
		}

		row := mapRowToHeaders(headers, splitCSVLine(line))

		record, ok := buildImportRecord(row, lineNumber)
		if !ok {
			result.Skipped++
			continue
		}

		record.FamilyID = familyID
		record.DeviceID = deviceID

		if _, err := service.store.Append(&record); err != nil {
			log.Printf("import: append row %d failed: %v", lineNumber, err)
			result.Failed++
			continue
		}
		result.Imported++
	}

	return result
}

// mapRowToHeaders pairs cells with header names positionally; surplus cells
// are ignored and short rows leave trailing fields absent.
func mapRowToHeaders(headers []string, cells []string) map[string]string {
	row := make(map[string]string, len(headers))
	for index, header := range headers {
		if index < len(cells) {
			row[header] = cells[index]
		}
	}
	return row
}

func buildImportRecord(row map[string]string, lineNumber int) (models.LogRecord, bool) {
	kind := row["kind"]
	if kind != importKindFeeding && kind != importKindExpression && kind != importKindDiaper {
		return models.LogRecord{}, false
	}

	rawTimestamp := row["started_at"]
	if rawTimestamp == "" {
		rawTimestamp = row["created_at"]
	}
	timestamp, err := parseImportTimestamp(rawTimestamp)
	if err != nil {
		log.Printf("import: invalid date for row %d: %q", lineNumber, rawTimestamp)
		return models.LogRecord{}, false
	}

	record := models.LogRecord{Timestamp: timestamp.UTC()}

	switch kind {
	case importKindExpression:
		record.Type = models.TypePumping
		record.Amount = parseImportFloat(row["expression_amount_ml"])
		record.Side = row["expression_side"]
		if record.Side == "" {
			record.Side = "both"
		}

	case importKindDiaper:
		record.Type = models.TypeDiaper
		record.Status = row["diaper_kind"]
		if record.Status == "mixed" {
			record.Status = models.DiaperBoth
		}

	case importKindFeeding:
		record.Type = models.TypeFeeding
		switch row["feeding_kind"] {
		case "breast":
			record.SubType = models.SubTypeBreast
			record.Side = row["breast_side"]
			record.TotalDuration = float64(parseImportInt(row["session_seconds"]))
		case "bottle":
			record.SubType = models.SubTypeBottle
			record.Amount = parseImportFloat(row["feeding_amount_ml"])
			record.Contents = models.ContentsFormula
			if row["bottle_content"] == models.ContentsBreastMilkImport {
				record.Contents = models.ContentsBreastMilkImport
			}
		default:
			// Messy legacy rows: an amount means bottle, a session length
			// means breast, anything else is unrecoverable.
			if row["feeding_amount_ml"] != "" {
				record.SubType = models.SubTypeBottle
				record.Amount = parseImportFloat(row["feeding_amount_ml"])
			} else if row["session_seconds"] != "" {
				record.SubType = models.SubTypeBreast
				record.TotalDuration = float64(parseImportInt(row["session_seconds"]))
			} else {
				return models.LogRecord{}, false
			}
		}
	}

	if note := row["note"]; note != "" {
		record.Notes = note
	}

	return record, true
}

func parseImportTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range importTimestampLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseImportFloat(value string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return parsed
}

func parseImportInt(value string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return parsed
}

// splitCSVLine splits one line on commas outside double quotes; a doubled
// quote inside a quoted cell escapes to a single literal quote.
func splitCSVLine(line string) []string {
	cells := make([]string, 0, 20)
	cell := strings.Builder{}
	inQuotes := false

	for index := 0; index < len(line); index++ {
		char := line[index]
		switch {
		case char == '"' && index+1 < len(line) && line[index+1] == '"':
			cell.WriteByte('"')
			index++
		case char == '"':
			inQuotes = !inQuotes
		case char == ',' && !inQuotes:
			cells = append(cells, cell.String())
			cell.Reset()
		default:
			cell.WriteByte(char)
		}
	}
	cells = append(cells, cell.String())
	return cells
}
