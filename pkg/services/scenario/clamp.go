package scenario

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/de-tools/ecodent-simulator/pkg/models/domain"
)

const (
	MinCasesPerMonth = 0
	MaxCasesPerMonth = 200
)

func ClampCases(n int) int {
	return min(MaxCasesPerMonth, max(MinCasesPerMonth, n))
}

// ClampAmount floors money amounts at zero. Non-finite values become zero.
func ClampAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ParseCases reads a raw cases value. Anything unparsable counts as zero and
// fractions truncate toward zero.
func ParseCases(raw string) int {
	v := parseNumber(raw)
	switch {
	case v <= MinCasesPerMonth:
		return MinCasesPerMonth
	case v >= MaxCasesPerMonth:
		return MaxCasesPerMonth
	}
	return int(math.Trunc(v))
}

func ParseAmount(raw string) float64 {
	return ClampAmount(parseNumber(raw))
}

func ClampInput(in domain.ScenarioInput) domain.ScenarioInput {
	in.CasesPerMonth = ClampCases(in.CasesPerMonth)
	in.PatientFee = ClampAmount(in.PatientFee)
	in.EcodentCost = ClampAmount(in.EcodentCost)
	in.InitialInvestment = ClampAmount(in.InitialInvestment)
	return in
}

// parseNumber keeps overflowing values as ±Inf so cases saturate at the
// bounds; NaN and non-numeric text become zero.
func parseNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	if math.IsNaN(v) {
		return 0
	}
	return v
}
