package field

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxDurationMinutes caps duration values at 999999:59.
const MaxDurationMinutes = 999999*60 + 59

// ParseDuration converts an "H:MM" string (hours unbounded, minutes 00-59)
// to total minutes. Comparisons of duration bounds go through this parser so
// that textual ordering ("9:00" vs "10:00") cannot mislead them.
func ParseDuration(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid duration %q: expected H:MM", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("invalid duration %q: bad hours", s)
	}
	if len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid duration %q: minutes must be two digits", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid duration %q: bad minutes", s)
	}
	total := hours*60 + minutes
	if total > MaxDurationMinutes {
		return 0, fmt.Errorf("invalid duration %q: exceeds maximum", s)
	}
	return total, nil
}

// FormatDuration renders total minutes back to the canonical "H:MM" form.
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
