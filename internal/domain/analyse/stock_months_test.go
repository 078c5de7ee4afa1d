package analyse

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockMonths_MarshalNumerico(t *testing.T) {
	sm := NumericStockMonths(decimal.RequireFromString("3.456"))
	b, err := json.Marshal(sm)
	require.NoError(t, err)
	assert.Equal(t, `"3.46"`, string(b)) // decimal serializa como string con 2 decimales
	assert.True(t, sm.IsNumeric())
}

func TestStockMonths_MarshalRupture(t *testing.T) {
	b, err := json.Marshal(RuptureStockMonths())
	require.NoError(t, err)
	assert.Equal(t, `"RUPTURE"`, string(b))
}

func TestStockMonths_MarshalStockInfini(t *testing.T) {
	b, err := json.Marshal(InfiniteStockMonths())
	require.NoError(t, err)
	assert.Equal(t, `"STOCK_INFINI"`, string(b))
}

func TestDeltaPct_ReferenciaCero_NA(t *testing.T) {
	d := DeltaPct(decimal.NewFromInt(50), decimal.Zero)
	assert.False(t, d.IsNumeric())

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"N/A"`, string(b))
}

func TestDeltaPct_Variacion(t *testing.T) {
	d := DeltaPct(decimal.NewFromInt(150), decimal.NewFromInt(100))
	require.True(t, d.IsNumeric())
	assert.True(t, d.Value().Equal(decimal.NewFromInt(50)), "esperado +50%%, obtenido %s", d.Value())

	d = DeltaPct(decimal.NewFromInt(80), decimal.NewFromInt(100))
	require.True(t, d.IsNumeric())
	assert.True(t, d.Value().Equal(decimal.NewFromInt(-20)))
}
