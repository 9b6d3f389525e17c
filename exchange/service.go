package exchange

import (
	"context"
	"errors"
	"fmt"

	converter "go-currency-converter-agent"
	"go-currency-converter-agent/rates"
)

// Service converts an amount from one currency to another
type Service interface {
	Convert(ctx context.Context, amount converter.Amount, from converter.Currency, to converter.Currency) (converter.Exchanged, error)
}

// service converts with the rates published by a rates.Service
type service struct {
	// rateService to lookup exchange rates.
	rateService rates.Service
}

// NewService constructs a valid Service
func NewService(s rates.Service) Service {
	return &service{
		rateService: s,
	}
}

// Convert computes a conversion from one currency to another.
// Converting a currency to itself never consults the rates.
// Any missing rate, whether the currency is unknown or only the pair is, yields a
// *converter.UnsupportedPairError. Other rate lookup failures are wrapped as is.
func (s *service) Convert(ctx context.Context, amount converter.Amount, from converter.Currency, to converter.Currency) (converter.Exchanged, error) {
	if from == to {
		return converter.Exchanged{
			From:     from,
			To:       to,
			Original: amount,
			Rate:     1,
			Amount:   amount,
			Identity: true,
		}, nil
	}

	published, err := s.rateService.ExchangeRates(ctx, from)
	if errors.Is(err, converter.ErrUnsupportedCurrency) {
		return converter.Exchanged{}, &converter.UnsupportedPairError{From: from, To: to}
	}
	if err != nil {
		return converter.Exchanged{}, fmt.Errorf("convert from [%v]: %w", from, err)
	}

	rate, ok := published[to]
	if !ok {
		return converter.Exchanged{}, &converter.UnsupportedPairError{From: from, To: to}
	}

	result := converter.Exchanged{
		From:     from,
		To:       to,
		Original: amount,
		Rate:     rate,
		Amount:   converter.Amount(float64(amount) * float64(rate)),
	}

	return result, nil
}
