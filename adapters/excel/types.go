package excel

// RawRowData represents a row of raw spreadsheet data as string key-value pairs
type RawRowData map[string]string

// SheetData represents a complete sheet read from disk
type SheetData struct {
	Headers []string     // Column headers
	Rows    []RawRowData // Data rows
}
