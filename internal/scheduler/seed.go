package scheduler

import (
	"math"
	"unicode/utf16"

	"github.com/rich365/rich365/internal/domain"
)

// Seed derives the per-day fallback seed from the profile and dayKey, where
// dayKey is month*100 + day. Strings are summed as UTF-16 code units.
func Seed(p domain.Profile, dayKey int) int {
	return codeUnitSum(string(p.PersonalityType))*1000 + codeUnitSum(string(p.Role))*100 + dayKey
}

// SeededRandom maps seed to a reproducible value in [0, 1).
func SeededRandom(seed int) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}

func codeUnitSum(s string) int {
	sum := 0
	for _, u := range utf16.Encode([]rune(s)) {
		sum += int(u)
	}
	return sum
}
