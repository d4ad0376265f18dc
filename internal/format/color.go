package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Lighten shifts a 6-hex-digit color toward white (positive percent) or
// black (negative percent) by adding a proportional offset to each RGB
// channel, clamped to [0, 255]. Percent 0 is the identity. Input that is not
// a 6-hex-digit color (with or without a leading '#') passes through
// unchanged.
func Lighten(hex string, percent float64) string {
	if percent == 0 {
		return hex
	}

	raw := strings.TrimPrefix(hex, "#")
	if len(raw) != 6 {
		return hex
	}

	n, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return hex
	}

	offset := int(255 * percent / 100)
	r := clampChannel(int(n>>16&0xff) + offset)
	g := clampChannel(int(n>>8&0xff) + offset)
	b := clampChannel(int(n&0xff) + offset)

	out := fmt.Sprintf("%02x%02x%02x", r, g, b)
	if strings.HasPrefix(hex, "#") {
		return "#" + out
	}
	return out
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
