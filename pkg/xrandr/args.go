package xrandr

import (
	"math"
	"strconv"
)

// Mode returns the mode arguments for an output: a fixed mode when one is
// given, automatic negotiation otherwise.
func Mode(fixed string) []string {
	if fixed == "" {
		return []string{"--auto"}
	}
	return []string{"--mode", fixed}
}

func Off(output string) []string {
	return []string{"--output", output, "--off"}
}

// FormatBrightness rounds v to two decimals.
func FormatBrightness(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', 2, 64)
}

func SetBrightness(output string, v float64) []string {
	return []string{"--output", output, "--brightness", FormatBrightness(v)}
}
