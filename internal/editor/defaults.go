package editor

import (
	"strings"

	"esign-editor-api/internal/domain"
)

// Default placement sizes per field type, in document space (unscaled page
// coordinates). One table for every type; signature and date fields carry
// their own proportions, checkboxes are square, everything else is a
// standard input box.
var defaultSizes = map[domain.FieldType]Size{
	domain.FieldTypeSignature: {Width: 150, Height: 48},
	domain.FieldTypeInitial:   {Width: 100, Height: 32},
	domain.FieldTypeDate:      {Width: 110, Height: 32},
	domain.FieldTypeCheckbox:  {Width: 24, Height: 24},
}

// fallbackSize is used for every type without a dedicated entry
var fallbackSize = Size{Width: 140, Height: 32}

// DefaultSize returns the default placement size for a field type
func DefaultSize(t domain.FieldType) Size {
	if s, ok := defaultSizes[t]; ok {
		return s
	}
	return fallbackSize
}

// DefaultLabel returns the default display label for a field type
// (the type name with its first letter upper-cased)
func DefaultLabel(t domain.FieldType) string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
