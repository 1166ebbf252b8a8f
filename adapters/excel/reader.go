// Package excel reads tabular datasets from Excel and CSV files into records
// the statistics engines consume. Cell parsing happens here and only here:
// numeric-looking cells become float64, empty cells become nulls, everything
// else stays a string. The core never coerces.
package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"driftwatch/domain/dataset"
	"driftwatch/internal"
)

// DataReader handles reading Excel and CSV files
type DataReader struct {
	config Config
	log    *internal.Logger
	kind   string // "xlsx" or "csv"
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(config Config) *DataReader {
	if config.Sheet == "" {
		config.Sheet = "Sheet1"
	}
	kind := "xlsx"
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		kind = "csv"
	}
	return &DataReader{
		config: config,
		log:    internal.DefaultLogger,
		kind:   kind,
	}
}

// ReadDataset reads the file into records ready for baselining or profiling
func (r *DataReader) ReadDataset() (dataset.Dataset, error) {
	sheet, err := r.readSheet()
	if err != nil {
		return nil, err
	}
	return sheet.Records(), nil
}

// readSheet reads the raw string grid from disk
func (r *DataReader) readSheet() (*SheetData, error) {
	if _, err := os.Stat(r.config.FilePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.kind), r.config.FilePath)
	}

	switch r.kind {
	case "csv":
		return r.readCSV()
	default:
		return r.readExcel()
	}
}

func (r *DataReader) readExcel() (*SheetData, error) {
	f, err := excelize.OpenFile(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.config.Sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", r.config.Sheet, err)
	}
	r.log.Debug("read %d rows from %s", len(rows), r.config.FilePath)

	return buildSheet(rows)
}

func (r *DataReader) readCSV() (*SheetData, error) {
	file, err := os.Open(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	r.log.Debug("read %d rows from %s", len(rows), r.config.FilePath)

	return buildSheet(rows)
}

// buildSheet converts a raw string grid into headers plus row maps
func buildSheet(rows [][]string) (*SheetData, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("file must have at least a header row and one data row")
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	data := &SheetData{Headers: headers}
	for _, row := range rows[1:] {
		rec := make(RawRowData, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				rec[header] = strings.TrimSpace(row[i])
			}
		}
		data.Rows = append(data.Rows, rec)
	}
	return data, nil
}

// Records converts raw string rows into typed records: numeric-looking cells
// become float64, empty cells become nil, everything else stays a string
func (s *SheetData) Records() dataset.Dataset {
	ds := make(dataset.Dataset, 0, len(s.Rows))
	for _, row := range s.Rows {
		rec := make(dataset.Record, len(row))
		for key, raw := range row {
			rec[key] = parseCell(raw)
		}
		ds = append(ds, rec)
	}
	return ds
}

func parseCell(raw string) interface{} {
	if raw == "" {
		return nil
	}
	if num, err := strconv.ParseFloat(raw, 64); err == nil {
		return num
	}
	return raw
}
