// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatDuration renders seconds for humans: "123ms", "1.5s", "2:05.75m",
// "1:01:01.5h". Milliseconds are kept only when non zero, without trailing
// zeros.
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		return "-" + FormatDuration(-seconds)
	}

	ms := int64(math.Round(seconds * 1000))
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}

	secs := ms / 1000
	frac := ""
	if rem := ms % 1000; rem != 0 {
		frac = "." + strings.TrimRight(fmt.Sprintf("%03d", rem), "0")
	}

	switch {
	case secs < 60:
		return fmt.Sprintf("%d%ss", secs, frac)
	case secs < 3600:
		return fmt.Sprintf("%d:%02d%sm", secs/60, secs%60, frac)
	}
	return fmt.Sprintf("%d:%02d:%02d%sh", secs/3600, secs/60%60, secs%60, frac)
}

var sampleUnits = [...]string{"k", "M", "G", "T"}

// FormatSamples renders a sample count with a metric suffix: "500spl",
// "1.5kspl", "12.3Mspl".
func FormatSamples(n uint64) string {
	if n < 1000 {
		return fmt.Sprintf("%dspl", n)
	}

	div := uint64(1000)
	for i, unit := range sampleUnits {
		if n < div*1000 || i == len(sampleUnits)-1 {
			return fmt.Sprintf("%.1f%sspl", float64(n)/float64(div), unit)
		}
		div *= 1000
	}
	panic("unreachable")
}
