package entities

import (
	"fmt"
	"math"
	"strconv"
)

// Injury severity multiplier tiers offered on the public form.
const (
	SeverityMinor     = 1.5 // minor injuries
	SeveritySevere    = 3   // severe / surgery
	SeverityPermanent = 5   // permanent / death
)

// commercialMultiplier floors the effective multiplier for cases involving
// a heavy commercial vehicle, regardless of the selected injury tier.
const commercialMultiplier = 10

// EstimateRange is the settlement band quoted to a submitter. Low and High
// are whole dollars; Display is the exact string shown (and later stored on
// the Lead as its immutable snapshot).

type EstimateRange struct {
	Low     int64  `json:"low"`
	High    int64  `json:"high"`
	Display string `json:"display"`
}

// CalculateEstimate computes the settlement range for an accident case.
//
// This is a marketing estimate, not a financial computation: every input is
// coerced to a safe default instead of rejected. Negative or NaN damages
// become 0, and a severity outside the fixed tiers falls back to the lowest
// tier. The band is base*0.8 .. base*1.2 with both bounds rounded to the
// nearest whole dollar.
func CalculateEstimate(economicDamages, severity float64, isCommercial bool) EstimateRange {
	if math.IsNaN(economicDamages) || economicDamages < 0 {
		economicDamages = 0
	}

	mult := severity
	switch severity {
	case SeverityMinor, SeveritySevere, SeverityPermanent:
	default:
		mult = SeverityMinor
	}
	if isCommercial {
		mult = math.Max(mult, commercialMultiplier)
	}

	base := economicDamages * mult
	low := int64(math.Round(base * 0.8))
	high := int64(math.Round(base * 1.2))

	return EstimateRange{
		Low:     low,
		High:    high,
		Display: fmt.Sprintf("$%s - $%s", groupThousands(low), groupThousands(high)),
	}
}

// groupThousands renders n with comma separators, e.g. 2400 -> "2,400".
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
