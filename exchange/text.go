package exchange

import (
	"context"
	"errors"

	converter "go-currency-converter-agent"
)

// Text converts and renders the outcome as the agent's answer: the formatted
// amount on success, converter.UnsupportedCurrencyMessage when the pair is not
// supported. Any other failure is returned as an error.
func Text(ctx context.Context, s Service, amount converter.Amount, from converter.Currency, to converter.Currency) (string, error) {
	result, err := s.Convert(ctx, amount, from, to)
	if errors.Is(err, converter.ErrUnsupportedCurrency) {
		return converter.UnsupportedCurrencyMessage, nil
	}
	if err != nil {
		return "", err
	}
	return result.String(), nil
}
