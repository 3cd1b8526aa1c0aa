package canto

import (
	"strconv"
	"strings"

	"github.com/leekchan/accounting"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count as a human-readable size using 1024-based
// units, e.g. 2621440 -> "2.5 MB".
func FormatSize(size int64) string {
	if size < 0 {
		return ""
	}
	if size < 1024 {
		return strconv.FormatInt(size, 10) + " B"
	}

	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	formatted := accounting.FormatNumber(value, 1, ",", ".")
	formatted = strings.TrimSuffix(formatted, ".0")

	return formatted + " " + sizeUnits[unit]
}
