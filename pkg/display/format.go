// Package display turns raw scenario figures into locale-aware strings.
// Rounding lives here and never feeds back into a ScenarioResult.
package display

import (
	"fmt"
	"math"
	"strconv"

	"github.com/de-tools/ecodent-simulator/pkg/models/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultLocale   = "fr-FR"
	DefaultCurrency = "€"
)

type Formatter struct {
	printer  *message.Printer
	currency string
}

func NewFormatter(locale, currency string) (*Formatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Formatter{printer: message.NewPrinter(tag), currency: currency}, nil
}

// Currency rounds half up to a whole amount, like JavaScript's Math.round.
func (f *Formatter) Currency(v float64) string {
	return f.printer.Sprintf("%d", roundHalfUp(v)) + " " + f.currency
}

// Decimal always uses a dot with one fractional digit, whatever the locale.
// Only currency amounts get locale grouping.
func (f *Formatter) Decimal(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func (f *Formatter) Hours(v float64) string {
	return f.Decimal(v) + " h"
}

// Months returns "" when there is no meaningful payback.
func (f *Formatter) Months(v *float64) string {
	if v == nil || *v == 0 {
		return ""
	}
	return f.Decimal(*v) + " months"
}

func (f *Formatter) Integer(n int) string {
	return f.printer.Sprintf("%d", n)
}

func (f *Formatter) CurrencySymbol() string {
	return f.currency
}

// Scenario is the formatted view of one result.
type Scenario struct {
	IncomePerCase      string
	MonthlyIncome      string
	YearlyIncome       string
	PaybackMonths      string
	HoursSavedPerMonth string
}

func (f *Formatter) Scenario(in domain.ScenarioInput, res domain.ScenarioResult) Scenario {
	view := Scenario{
		IncomePerCase: f.Currency(res.IncomePerCase),
		MonthlyIncome: f.Currency(res.MonthlyIncome),
		YearlyIncome:  f.Currency(res.YearlyIncome),
	}
	switch in.Role {
	case domain.RoleInvestor:
		view.PaybackMonths = f.Months(res.PaybackMonths)
	case domain.RoleDentist:
		view.HoursSavedPerMonth = f.Hours(res.HoursSavedPerMonth)
	}
	return view
}

func roundHalfUp(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int64(math.Floor(v + 0.5))
}
