package converter

import (
	"errors"
	"fmt"
)

// Currency a currency code
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	JPY Currency = "JPY"
)

// Currencies lists the supported currency codes.
func Currencies() []Currency {
	return []Currency{USD, EUR, JPY}
}

// Amount a monetary amount. Any sign or magnitude is accepted.
type Amount float64

// Rate an exchange rate
type Rate float64

// Rates maps a target currency to the rate from some source currency.
type Rates map[Currency]Rate

// UnsupportedCurrencyMessage is what callers see when a conversion is not possible.
const UnsupportedCurrencyMessage = "Error: unsupported currency."

// ErrUnsupportedCurrency is matched by every failed conversion.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// UnsupportedPairError there is no rate from From to To.
type UnsupportedPairError struct {
	From Currency
	To   Currency
}

func (e *UnsupportedPairError) Error() string {
	return fmt.Sprintf("unsupported currency pair %v -> %v", e.From, e.To)
}

func (e *UnsupportedPairError) Is(target error) bool {
	return target == ErrUnsupportedCurrency
}

// Exchanged the result of a conversion.
type Exchanged struct {
	From     Currency
	To       Currency
	Original Amount
	Rate     Rate
	Amount   Amount

	// Identity is set when From == To and no rate was applied.
	Identity bool
}

// String formats the converted amount followed by the target currency.
// Pass-through conversions keep the amount's shortest %v representation
// (exponent form from 1e21 and below 1e-4), everything else is rounded to two decimals.
func (e Exchanged) String() string {
	if e.Identity {
		return fmt.Sprintf("%v %s", float64(e.Amount), e.To)
	}
	return fmt.Sprintf("%.2f %s", float64(e.Amount), e.To)
}
