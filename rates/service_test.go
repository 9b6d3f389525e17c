package rates

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	converter "go-currency-converter-agent"
)

func TestService_ExchangeRates(t *testing.T) {
	s := NewFixedService()

	tests := []struct {
		name     string
		currency converter.Currency
		want     converter.Rates
		wantErr  bool
	}{
		{"eur", converter.EUR, converter.Rates{converter.USD: 1.07}, false},
		{"jpy", converter.JPY, converter.Rates{converter.USD: 0.0064}, false},
		{"usd", converter.USD, converter.Rates{converter.EUR: 0.93, converter.JPY: 157.0}, false},
		{"gbp", "GBP", nil, true},
		{"empty", "", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ExchangeRates(context.Background(), tt.currency)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownCurrency))
				assert.True(t, errors.Is(err, converter.ErrUnsupportedCurrency))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_ExchangeRatesNoCrossRate(t *testing.T) {
	s := NewFixedService()

	eur, err := s.ExchangeRates(context.Background(), converter.EUR)
	require.NoError(t, err)
	_, ok := eur[converter.JPY]
	assert.False(t, ok, "EUR -> JPY must not be defined")

	jpy, err := s.ExchangeRates(context.Background(), converter.JPY)
	require.NoError(t, err)
	_, ok = jpy[converter.EUR]
	assert.False(t, ok, "JPY -> EUR must not be defined")
}

func TestService_ExchangeRatesReadOnly(t *testing.T) {
	s := NewFixedService()

	rates, err := s.ExchangeRates(context.Background(), converter.USD)
	require.NoError(t, err)
	rates[converter.EUR] = 42
	rates["GBP"] = 1

	again, err := s.ExchangeRates(context.Background(), converter.USD)
	require.NoError(t, err)
	assert.Equal(t, converter.Rate(0.93), again[converter.EUR])
	assert.Len(t, again, 2)
}

func TestTable(t *testing.T) {
	table := Table()
	assert.Len(t, table, 3)
	assert.Equal(t, converter.Rate(157.0), table[converter.USD][converter.JPY])

	table[converter.EUR][converter.JPY] = 160
	delete(table, converter.USD)

	fresh := Table()
	_, ok := fresh[converter.EUR][converter.JPY]
	assert.False(t, ok)
	assert.Contains(t, fresh, converter.USD)
}
