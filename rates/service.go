package rates

import (
	"context"
	"fmt"

	converter "go-currency-converter-agent"
)

// ErrUnknownCurrency no rates are published for the requested source currency.
var ErrUnknownCurrency = fmt.Errorf("unknown currency: %w", converter.ErrUnsupportedCurrency)

// Service looks up the exchange rates published for a source currency.
type Service interface {
	ExchangeRates(ctx context.Context, currency converter.Currency) (converter.Rates, error)
}

// fixed maps a source currency to its rates. Never mutated after init.
// No EUR <-> JPY rate is defined in either direction.
var fixed = map[converter.Currency]converter.Rates{
	converter.EUR: {converter.USD: 1.07},
	converter.JPY: {converter.USD: 0.0064},
	converter.USD: {converter.EUR: 0.93, converter.JPY: 157.0},
}

// service serves the fixed rate table
type service struct {
	table map[converter.Currency]converter.Rates
}

// NewFixedService constructs a Service backed by the fixed rate table.
func NewFixedService() Service {
	return &service{
		table: fixed,
	}
}

// ExchangeRates returns a copy of the rates for currency, so callers can never alter the table.
func (s *service) ExchangeRates(_ context.Context, currency converter.Currency) (converter.Rates, error) {
	rates, ok := s.table[currency]
	if !ok {
		return nil, fmt.Errorf("exchange rates [%v]: %w", currency, ErrUnknownCurrency)
	}
	return copyRates(rates), nil
}

// Table returns a copy of the complete fixed rate table.
func Table() map[converter.Currency]converter.Rates {
	table := make(map[converter.Currency]converter.Rates, len(fixed))
	for currency, rates := range fixed {
		table[currency] = copyRates(rates)
	}
	return table
}

func copyRates(rates converter.Rates) converter.Rates {
	out := make(converter.Rates, len(rates))
	for k, v := range rates {
		out[k] = v
	}
	return out
}
