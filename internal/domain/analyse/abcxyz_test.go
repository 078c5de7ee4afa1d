package analyse

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var (
	seuilA = decimal.NewFromInt(80)
	seuilB = decimal.NewFromInt(95)
)

func TestClassifyABC_Fronteras(t *testing.T) {
	tests := []struct {
		name string
		cum  string
		want ABCClass
	}{
		{"muy por debajo de seuilA", "12.5", ClassA},
		{"exactamente en seuilA es A, no B", "80.00", ClassA},
		{"justo encima de seuilA", "80.01", ClassB},
		{"exactamente en seuilB es B", "95.00", ClassB},
		{"por encima de seuilB", "95.01", ClassC},
		{"ultimo producto (100%)", "100", ClassC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyABC(decimal.RequireFromString(tt.cum), seuilA, seuilB)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyXYZ_Fronteras(t *testing.T) {
	assert.Equal(t, ClassX, ClassifyXYZ(0.3, 0.5, 1.0))
	assert.Equal(t, ClassX, ClassifyXYZ(0.5, 0.5, 1.0)) // frontera inclusiva
	assert.Equal(t, ClassY, ClassifyXYZ(0.7, 0.5, 1.0))
	assert.Equal(t, ClassZ, ClassifyXYZ(1.5, 0.5, 1.0))
	// Centinela de demanda nula -> siempre Z con los umbrales por defecto
	assert.Equal(t, ClassZ, ClassifyXYZ(CVSentinel, 0.5, 1.0))
}

func TestCellOf_NueveCeldas(t *testing.T) {
	assert.Equal(t, CellAX, CellOf(ClassA, ClassX))
	assert.Equal(t, CellAZ, CellOf(ClassA, ClassZ))
	assert.Equal(t, CellBY, CellOf(ClassB, ClassY))
	assert.Equal(t, CellCX, CellOf(ClassC, ClassX))
	assert.Equal(t, CellCZ, CellOf(ClassC, ClassZ))
	assert.Equal(t, "AX", CellAX.String())
	assert.Equal(t, "CZ", CellCZ.String())
}

// Las 9 celdas llevan estrategias distintas, con 2 a 3 acciones cada una.
func TestStrategyFor_NueveEstrategiasDistintas(t *testing.T) {
	seen := make(map[string]bool, 9)
	for _, cell := range Cells {
		s := StrategyFor(cell)
		assert.NotEmpty(t, s.Text, "celda %s sin estrategia", cell)
		assert.GreaterOrEqual(t, len(s.Actions), 2, "celda %s con menos de 2 acciones", cell)
		assert.LessOrEqual(t, len(s.Actions), 3, "celda %s con más de 3 acciones", cell)
		assert.False(t, seen[s.Text], "estrategia duplicada en la celda %s", cell)
		seen[s.Text] = true
	}
}
