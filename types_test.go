package converter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencies(t *testing.T) {
	assert.Equal(t, []Currency{"USD", "EUR", "JPY"}, Currencies())
}

func TestExchanged_String(t *testing.T) {
	tests := []struct {
		name string
		ex   Exchanged
		want string
	}{
		{"rounded", Exchanged{To: EUR, Amount: 93.00000000000001}, "93.00 EUR"},
		{"padded", Exchanged{To: USD, Amount: 6.4}, "6.40 USD"},
		{"negative", Exchanged{To: JPY, Amount: -15.7}, "-15.70 JPY"},
		{"identity integral", Exchanged{To: USD, Amount: 50, Identity: true}, "50 USD"},
		{"identity fraction", Exchanged{To: EUR, Amount: 12.345, Identity: true}, "12.345 EUR"},
		{"identity large", Exchanged{To: JPY, Amount: 1234567, Identity: true}, "1234567 JPY"},
		{"identity huge", Exchanged{To: USD, Amount: 1e21, Identity: true}, "1e+21 USD"},
		{"identity tiny", Exchanged{To: USD, Amount: 1e-7, Identity: true}, "1e-07 USD"},
		{"identity negative", Exchanged{To: EUR, Amount: -3, Identity: true}, "-3 EUR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ex.String())
		})
	}
}

func TestUnsupportedPairError(t *testing.T) {
	var err error = &UnsupportedPairError{From: EUR, To: JPY}
	wrapped := fmt.Errorf("convert: %w", err)

	assert.True(t, errors.Is(wrapped, ErrUnsupportedCurrency))
	assert.EqualError(t, err, "unsupported currency pair EUR -> JPY")

	var pair *UnsupportedPairError
	assert.True(t, errors.As(wrapped, &pair))
	assert.Equal(t, EUR, pair.From)
	assert.Equal(t, JPY, pair.To)
}
