package analyse

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Etiquetas JSON de los centinelas de cobertura de stock.
const (
	labelRupture  = "RUPTURE"
	labelInfinite = "STOCK_INFINI"
)

// StockMonthsKind discrimina los tres estados posibles de la cobertura.
type StockMonthsKind int

const (
	// StockMonthsNumeric cobertura calculable: stock_total / venta_media_mensual.
	StockMonthsNumeric StockMonthsKind = iota
	// StockMonthsRupture stock total 0, sea cual sea la demanda.
	StockMonthsRupture
	// StockMonthsInfinite stock positivo sin ninguna venta media (cobertura infinita).
	StockMonthsInfinite
)

// StockMonths unión discriminada para los meses de cobertura de stock:
// un número de meses, RUPTURE o STOCK_INFINI. Evita los valores de tipo
// mixto número|string y hace exhaustivos la comparación y el orden.
type StockMonths struct {
	kind  StockMonthsKind
	value decimal.Decimal
}

// NumericStockMonths cobertura numérica en meses.
func NumericStockMonths(months decimal.Decimal) StockMonths {
	return StockMonths{kind: StockMonthsNumeric, value: months}
}

// RuptureStockMonths centinela de ruptura (stock total 0).
func RuptureStockMonths() StockMonths {
	return StockMonths{kind: StockMonthsRupture}
}

// InfiniteStockMonths centinela de stock sin rotación (ventas medias 0 con stock positivo).
func InfiniteStockMonths() StockMonths {
	return StockMonths{kind: StockMonthsInfinite}
}

// Kind devuelve el discriminante.
func (sm StockMonths) Kind() StockMonthsKind { return sm.kind }

// IsNumeric indica si la cobertura es comparable con un umbral numérico.
func (sm StockMonths) IsNumeric() bool { return sm.kind == StockMonthsNumeric }

// Value devuelve los meses de cobertura; solo tiene sentido si IsNumeric().
func (sm StockMonths) Value() decimal.Decimal { return sm.value }

// MarshalJSON serializa como número (2 decimales) o como centinela string.
func (sm StockMonths) MarshalJSON() ([]byte, error) {
	switch sm.kind {
	case StockMonthsRupture:
		return json.Marshal(labelRupture)
	case StockMonthsInfinite:
		return json.Marshal(labelInfinite)
	default:
		return json.Marshal(sm.value.Round(2))
	}
}
