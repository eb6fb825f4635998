package service

import (
	"fmt"
	"strconv"
	"strings"
)

// Normalize canonicalizes one value into comparable text: stringify,
// trim, lower-case, collapse every whitespace run to a single space.
// Total over all cell values, no state, idempotent.
func Normalize(v any) string {
	return collapseSpaces(strings.ToLower(CellString(v)))
}

// CellString renders a dataset cell as text. Absent values become the
// empty string; numbers keep their shortest exact representation.
func CellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
