package excel

// Config holds configuration for the spreadsheet data source
type Config struct {
	FilePath string `json:"file_path"`
	Sheet    string `json:"sheet"`
}

// DefaultConfig returns sensible defaults for spreadsheet reading
func DefaultConfig(filePath string) Config {
	return Config{
		FilePath: filePath,
		Sheet:    "Sheet1",
	}
}
