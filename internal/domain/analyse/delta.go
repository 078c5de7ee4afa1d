package analyse

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Delta variación porcentual entre dos valores, o N/A cuando el valor de
// referencia es cero (unión discriminada, no número|string mezclados).
type Delta struct {
	valid bool
	value decimal.Decimal
}

// NumericDelta variación calculada.
func NumericDelta(pct decimal.Decimal) Delta {
	return Delta{valid: true, value: pct}
}

// NADelta variación no calculable (referencia cero).
func NADelta() Delta {
	return Delta{}
}

// DeltaPct variación porcentual (current - previous) / previous * 100.
// previous cero -> N/A.
func DeltaPct(current, previous decimal.Decimal) Delta {
	if previous.IsZero() {
		return NADelta()
	}
	return NumericDelta(current.Sub(previous).Div(previous).Mul(hundred))
}

// IsNumeric indica si la variación es un número.
func (d Delta) IsNumeric() bool { return d.valid }

// Value devuelve el porcentaje; solo tiene sentido si IsNumeric().
func (d Delta) Value() decimal.Decimal { return d.value }

// MarshalJSON serializa como número (2 decimales) o "N/A".
func (d Delta) MarshalJSON() ([]byte, error) {
	if !d.valid {
		return json.Marshal("N/A")
	}
	return json.Marshal(d.value.Round(2))
}
