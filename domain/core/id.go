package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	BaselineID ID
	ColumnKey  ID
	ReportID   ID
)

// String conversions for domain IDs
func (id BaselineID) String() string { return ID(id).String() }
func (id ColumnKey) String() string  { return ID(id).String() }
func (id ReportID) String() string   { return ID(id).String() }

// ParseBaselineID parses a string into BaselineID
func ParseBaselineID(s string) (BaselineID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("baseline ID cannot be empty")
	}
	return BaselineID(s), nil
}

// ParseColumnKey parses a string into ColumnKey
func ParseColumnKey(s string) (ColumnKey, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("column key cannot be empty")
	}
	return ColumnKey(s), nil
}

// SortColumnKeys returns the keys sorted lexicographically for stable output
func SortColumnKeys(keys []ColumnKey) []ColumnKey {
	out := make([]ColumnKey, len(keys))
	copy(out, keys)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
