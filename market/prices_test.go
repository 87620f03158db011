package market

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/papertrade/account"
)

func TestStaticPricesLookup(t *testing.T) {
	t.Parallel()

	p := Default()

	tests := []struct {
		name   string
		symbol string
		want   float64
	}{
		{name: "uppercase", symbol: "AAPL", want: 150.00},
		{name: "lowercase", symbol: "googl", want: 2500.00},
		{name: "mixed_case", symbol: "TsLa", want: 700.00},
		{name: "surrounding_space", symbol: " aapl ", want: 150.00},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := p.Price(tt.symbol)
			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestStaticPricesUnknownSymbol(t *testing.T) {
	t.Parallel()

	p := Default()

	_, err := p.Price("XXXX")
	assert.True(t, errors.Is(err, account.ErrUnknownSymbol))
	assert.True(t, errors.Is(err, account.ErrTrading))
}

func TestNewStaticPricesNormalizesSymbols(t *testing.T) {
	t.Parallel()

	p, err := NewStaticPrices(map[string]float64{"msft": 410.25})
	require.NoError(t, err)

	got, err := p.Price("MSFT")
	assert.NoError(t, err)
	assert.InDelta(t, 410.25, got, 1e-9)

	// Custom tables replace the default one entirely.
	_, err = p.Price("AAPL")
	assert.True(t, errors.Is(err, account.ErrUnknownSymbol))
}

func TestNewStaticPricesRejectsNonPositivePrice(t *testing.T) {
	t.Parallel()

	_, err := NewStaticPrices(map[string]float64{"AAPL": 0})
	assert.Error(t, err)

	_, err = NewStaticPrices(map[string]float64{"AAPL": -1.5})
	assert.Error(t, err)
}

func TestStaticPricesSymbols(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"AAPL", "GOOGL", "TSLA"}, Default().Symbols())
}
