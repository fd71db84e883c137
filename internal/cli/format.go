// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ThinkBotz/samattendx/internal/model"
)

// FormatPercent formats an attendance percentage (0-100 scale).
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

// FormatMonth renders a month key as a readable label.
// e.g., "2025-09" -> "September 2025"
func FormatMonth(month string) string {
	t, err := time.Parse(model.MonthFormat, month)
	if err != nil {
		return month
	}
	return t.Format("January 2006")
}

// FormatDate renders an ISO date as a readable label.
// e.g., "2025-09-08" -> "Mon, 08 Sep 2025"
func FormatDate(iso string) string {
	t, err := time.Parse(model.DateFormat, iso)
	if err != nil {
		return iso
	}
	return t.Format("Mon, 02 Jan 2006")
}

// FormatRatio renders "present / total".
func FormatRatio(present, total int) string {
	return fmt.Sprintf("%d / %d", present, total)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// StatusLabel renders an attendance status for table cells.
func StatusLabel(s model.Status) string {
	switch s {
	case model.StatusPresent:
		return "present"
	case model.StatusAbsent:
		return "ABSENT"
	case model.StatusCancelled:
		return "cancelled"
	default:
		return "-"
	}
}
