package analyse

import "github.com/shopspring/decimal"

// ABCClass clase de importancia en valor (parte acumulada del CA).
type ABCClass string

// XYZClass clase de regularidad de la demanda (coeficiente de variación).
type XYZClass string

const (
	ClassA ABCClass = "A"
	ClassB ABCClass = "B"
	ClassC ABCClass = "C"

	ClassX XYZClass = "X"
	ClassY XYZClass = "Y"
	ClassZ XYZClass = "Z"
)

// ClassifyABC clasifica según el porcentaje de CA acumulado:
// A si acumulado <= seuilA, B si <= seuilB, si no C.
// La frontera es inclusiva: un producto exactamente en seuilA es A.
func ClassifyABC(cumulativePct, seuilA, seuilB decimal.Decimal) ABCClass {
	switch {
	case cumulativePct.LessThanOrEqual(seuilA):
		return ClassA
	case cumulativePct.LessThanOrEqual(seuilB):
		return ClassB
	default:
		return ClassC
	}
}

// ClassifyXYZ clasifica según el coeficiente de variación mensual:
// X si cv <= seuilX, Y si cv <= seuilY, si no Z.
func ClassifyXYZ(cv, seuilX, seuilY float64) XYZClass {
	switch {
	case cv <= seuilX:
		return ClassX
	case cv <= seuilY:
		return ClassY
	default:
		return ClassZ
	}
}

// Cell una de las 9 celdas de la matriz ABC/XYZ.
// Enum cerrado en lugar de claves string: el lookup de estrategias es
// exhaustivo y verificado por el compilador.
type Cell int

const (
	CellAX Cell = iota
	CellAY
	CellAZ
	CellBX
	CellBY
	CellBZ
	CellCX
	CellCY
	CellCZ
)

// Cells las 9 celdas en orden AX..CZ, para iterar la matriz.
var Cells = [9]Cell{CellAX, CellAY, CellAZ, CellBX, CellBY, CellBZ, CellCX, CellCY, CellCZ}

// CellOf combina las dos clases en la celda correspondiente.
func CellOf(abc ABCClass, xyz XYZClass) Cell {
	row := 0
	switch abc {
	case ClassB:
		row = 1
	case ClassC:
		row = 2
	}
	col := 0
	switch xyz {
	case ClassY:
		col = 1
	case ClassZ:
		col = 2
	}
	return Cell(row*3 + col)
}

var labels = [9]string{"AX", "AY", "AZ", "BX", "BY", "BZ", "CX", "CY", "CZ"}

// String devuelve la etiqueta de dos letras ("AX".."CZ").
func (c Cell) String() string {
	return labels[c]
}

// Strategy recomendación estratégica fija de una celda.
type Strategy struct {
	Text    string
	Actions []string
}

// strategies tabla estática: una estrategia distinta por celda.
var strategies = [9]Strategy{
	CellAX: {
		Text: "Produit stratégique à forte valeur et demande stable : priorité absolue.",
		Actions: []string{
			"Automatiser le réapprovisionnement avec un stock de sécurité réduit",
			"Négocier les conditions d'achat auprès du fournisseur",
			"Surveiller toute rupture en temps réel",
		},
	},
	CellAY: {
		Text: "Forte valeur avec demande variable : surveillance rapprochée requise.",
		Actions: []string{
			"Maintenir un stock de sécurité dimensionné sur la variabilité",
			"Réviser les prévisions chaque mois",
		},
	},
	CellAZ: {
		Text: "Forte valeur mais demande erratique : risque financier élevé.",
		Actions: []string{
			"Commander au plus près du besoin, par petites quantités",
			"Analyser les causes de l'irrégularité (promotions, saisonnalité)",
			"Envisager un accord de livraison rapide avec le fournisseur",
		},
	},
	CellBX: {
		Text: "Valeur moyenne et demande régulière : gestion automatisable.",
		Actions: []string{
			"Passer en réapprovisionnement automatique",
			"Contrôle trimestriel suffisant",
		},
	},
	CellBY: {
		Text: "Valeur moyenne, demande variable : gestion standard.",
		Actions: []string{
			"Stock de sécurité modéré",
			"Revue mensuelle des paramètres de commande",
		},
	},
	CellBZ: {
		Text: "Valeur moyenne, demande irrégulière : limiter l'engagement de stock.",
		Actions: []string{
			"Commander à la demande quand c'est possible",
			"Surveiller le taux de rotation",
		},
	},
	CellCX: {
		Text: "Faible valeur mais demande stable : automatiser sans surveillance.",
		Actions: []string{
			"Réapprovisionnement automatique par lots économiques",
			"Réduire la fréquence des contrôles",
		},
	},
	CellCY: {
		Text: "Faible valeur, demande variable : gestion simplifiée.",
		Actions: []string{
			"Commandes groupées avec les autres références du fournisseur",
			"Contrôle semestriel",
		},
	},
	CellCZ: {
		Text: "Faible valeur et demande erratique : candidat au déréférencement.",
		Actions: []string{
			"Étudier l'arrêt de la référence ou le passage en commande client",
			"Écouler le stock résiduel sans racheter",
		},
	},
}

// StrategyFor devuelve la estrategia fija de la celda.
func StrategyFor(c Cell) Strategy {
	return strategies[c]
}
