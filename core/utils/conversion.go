// Package utils provides common utility functions shared across the
// audit-manager application, mainly loose scalar conversions for
// spreadsheet cell values.
package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts various types to int using explicit type switching.
// Spreadsheet cells frequently hold integer quantities formatted as
// floats ("10.0"), so the string path falls back to float parsing.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		s := strings.TrimSpace(v)
		if i, err := strconv.Atoi(s); err == nil {
			return i
		}
		f, _ := strconv.ParseFloat(s, 64)
		return int(f)
	case []byte:
		return ToInt(string(v))
	default:
		return ToInt(fmt.Sprintf("%v", v))
	}
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
