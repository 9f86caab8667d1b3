package estimator

import (
	"math"
	"strconv"
)

var byteUnits = [...]string{"Bytes", "KB", "MB", "GB"}

// FormatBytes renders a byte count on a binary (1024-based) unit ladder with
// up to two decimal places, trailing zeros trimmed. A zero count renders as
// "0 Bytes".
func FormatBytes(n float64) string {
	if n <= 0 {
		return "0 Bytes"
	}

	unit := 0
	for n >= 1024 && unit < len(byteUnits)-1 {
		n /= 1024
		unit++
	}

	n = math.Round(n*100) / 100
	return strconv.FormatFloat(n, 'f', -1, 64) + " " + byteUnits[unit]
}
