// Package analyse contiene los objetos de valor y el cálculo puro del dominio
// analítico: estadísticos de demanda, unión discriminada de cobertura de stock,
// celdas ABC/XYZ y perfil estacional. Sin I/O ni dependencias de infraestructura.
package analyse

import "math"

// CVSentinel valor centinela del coeficiente de variación cuando la media es 0:
// un producto sin demanda se trata como máximamente irregular, nunca se divide
// por cero.
const CVSentinel = 999.0

// Mean media aritmética de la serie. 0 si la serie está vacía.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDevPop desviación estándar poblacional (divisor n, no n-1).
func StdDevPop(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// CoefficientVariation CV = stdev/media de la serie.
// Media 0 -> CVSentinel (999).
func CoefficientVariation(values []float64) float64 {
	mean := Mean(values)
	if mean == 0 {
		return CVSentinel
	}
	return StdDevPop(values) / mean
}
