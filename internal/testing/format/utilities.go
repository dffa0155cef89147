// Package format renders durations, sizes and counts for terminal tables.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// Duration picks the coarsest unit that keeps a check timing readable.
func Duration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%.1fm", d.Minutes())
	}
}

var byteUnits = []string{"KB", "MB", "GB"}

// Bytes renders a report or fixture size in 1024-based units.
func Bytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}

	size := float64(n) / 1024
	unit := 0

	for size >= 1024 && unit < len(byteUnits)-1 {
		size /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", size, byteUnits[unit])
}

// Int formats an integer for table cells.
func Int(n int) string {
	return strconv.Itoa(n)
}

// Percent returns part as a percentage of total, 0 when total is 0.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(part) / float64(total) * 100
}
