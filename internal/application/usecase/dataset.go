// Package usecase contiene los casos de uso analíticos: marge, stock, Pareto,
// ABC/XYZ, saisonnalité y evolution. Todos comparten el mismo ensamblaje de
// datos (DatasetBuilder) y difieren solo en el post-procesado.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phardev/pharmanalyse-api/internal/application/dto"
	"github.com/phardev/pharmanalyse-api/internal/domain/entity"
	"github.com/phardev/pharmanalyse-api/internal/domain/repository"
)

// Clock inyección del instante de evaluación: las promociones y las ventanas
// relativas ("12 derniers mois") dependen de "now", así que los analizadores
// lo reciben en lugar de leer el reloj del sistema.
type Clock func() time.Time

var hundred = decimal.NewFromInt(100)

// EffectivePrice precio y coste vigentes de un producto en el instante evaluado.
type EffectivePrice struct {
	BaseTTC      decimal.Decimal // precio de venta base TTC
	EffectiveTTC decimal.Decimal // promo si está activa, si no el base
	PromoActive  bool
	HasPrice     bool // existe fila de precio de venta vigente
	NetCostHT    decimal.Decimal // coste neto de la fila de compra más reciente
	CostTTC      decimal.Decimal // NetCostHT × (1 + TVA/100)
	HasCost      bool // existe fila de precio de compra vigente
}

// SalesSummary ventas agregadas de un producto en el período consultado.
type SalesSummary struct {
	Total   int64
	ParMois map[string]int64 // "YYYY-MM" -> cantidad
}

// Dataset datos ensamblados para un análisis: instantánea read-only, un
// resultado nuevo por petición, sin estado compartido.
type Dataset struct {
	Products []entity.Product
	Prices   map[string]EffectivePrice
	Sales    map[string]SalesSummary
	Stocks   map[string]entity.Stock
	Requete  string // descripción legible de la consulta masiva equivalente
}

// DatasetBuilder resuelve productos y ensambla precios, ventas y stock.
// Las tres consultas dependientes solo del conjunto de ids se lanzan en
// paralelo; el cálculo posterior es síncrono y puro.
type DatasetBuilder struct {
	products repository.ProductRepository
	prices   repository.PriceRepository
	sales    repository.SalesRepository
	stocks   repository.StockRepository
}

// NewDatasetBuilder construye el ensamblador compartido por los analizadores.
func NewDatasetBuilder(
	products repository.ProductRepository,
	prices repository.PriceRepository,
	sales repository.SalesRepository,
	stocks repository.StockRepository,
) *DatasetBuilder {
	return &DatasetBuilder{products: products, prices: prices, sales: sales, stocks: stocks}
}

// ResolveProducts devuelve los productos ACTIVE que cumplen los filtros.
// El filtro fournisseur exige una intersección con los productos que tienen
// al menos un precio de compra de ese proveedor (relación indirecta).
// Sin coincidencias devuelve slice vacío, nunca error.
func (b *DatasetBuilder) ResolveProducts(ctx context.Context, f dto.ProduitFilters) ([]entity.Product, error) {
	products, err := b.products.FindActive(ctx, repository.ProductFilter{
		PharmacyID: f.PharmacieID,
		FamilyID:   f.FamilleID,
		EAN13:      f.EAN13,
	})
	if err != nil {
		return nil, fmt.Errorf("résoudre produits: %w", err)
	}
	if f.FournisseurID == "" || len(products) == 0 {
		return products, nil
	}

	ids, err := b.prices.ProductIDsBySupplier(ctx, f.FournisseurID)
	if err != nil {
		return nil, fmt.Errorf("résoudre produits fournisseur: %w", err)
	}
	bySupplier := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		bySupplier[id] = struct{}{}
	}

	filtered := products[:0]
	for _, p := range products {
		if _, ok := bySupplier[p.ID]; ok {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Build ensambla el dataset completo de un análisis: productos, luego precios,
// ventas y stock en paralelo (sin dependencia de datos entre ellos).
func (b *DatasetBuilder) Build(
	ctx context.Context,
	f dto.ProduitFilters,
	from, to time.Time,
	now time.Time,
) (*Dataset, error) {
	products, err := b.ResolveProducts(ctx, f)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{
		Products: products,
		Prices:   map[string]EffectivePrice{},
		Sales:    map[string]SalesSummary{},
		Stocks:   map[string]entity.Stock{},
		Requete:  describeRequete(f, from, to),
	}
	if len(products) == 0 {
		return ds, nil
	}

	ids := make([]string, len(products))
	vatByID := make(map[string]decimal.Decimal, len(products))
	for i, p := range products {
		ids[i] = p.ID
		vatByID[p.ID] = p.VATRateOrDefault()
	}

	// ── Tres consultas en paralelo ────────────────────────────────────────────
	type pricesResult struct {
		prices map[string]EffectivePrice
		err    error
	}
	type salesResult struct {
		sales map[string]SalesSummary
		err   error
	}
	type stocksResult struct {
		stocks map[string]entity.Stock
		err    error
	}

	pricesCh := make(chan pricesResult, 1)
	salesCh := make(chan salesResult, 1)
	stocksCh := make(chan stocksResult, 1)

	go func() {
		prices, err := b.resolvePrices(ctx, ids, vatByID, now)
		pricesCh <- pricesResult{prices, err}
	}()
	go func() {
		sales, err := b.AggregateSales(ctx, ids, from, to)
		salesCh <- salesResult{sales, err}
	}()
	go func() {
		stocks, err := b.resolveStocks(ctx, ids)
		stocksCh <- stocksResult{stocks, err}
	}()

	pricesRes := <-pricesCh
	salesRes := <-salesCh
	stocksRes := <-stocksCh

	if pricesRes.err != nil {
		return nil, pricesRes.err
	}
	if salesRes.err != nil {
		return nil, salesRes.err
	}
	if stocksRes.err != nil {
		return nil, stocksRes.err
	}

	ds.Prices = pricesRes.prices
	ds.Sales = salesRes.sales
	ds.Stocks = stocksRes.stocks
	return ds, nil
}

// resolvePrices combina la fila de compra y de venta más recientes de cada
// producto en un EffectivePrice: promo aplicada si now cae en su ventana,
// coste TTC = coste neto × (1 + TVA/100), TVA 20% por defecto.
func (b *DatasetBuilder) resolvePrices(
	ctx context.Context,
	ids []string,
	vatByID map[string]decimal.Decimal,
	now time.Time,
) (map[string]EffectivePrice, error) {
	purchases, err := b.prices.LatestPurchasePrices(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("prix d'achat: %w", err)
	}
	sales, err := b.prices.LatestSalePrices(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("prix de vente: %w", err)
	}

	prices := make(map[string]EffectivePrice, len(ids))
	for _, pp := range purchases {
		ep := prices[pp.ProductID]
		ep.NetCostHT = pp.NetCostHT
		vat := vatByID[pp.ProductID]
		ep.CostTTC = pp.NetCostHT.Mul(decimal.NewFromInt(1).Add(vat.Div(hundred)))
		ep.HasCost = true
		prices[pp.ProductID] = ep
	}
	for _, sp := range sales {
		ep := prices[sp.ProductID]
		ep.BaseTTC = sp.PriceTTC
		ep.PromoActive = sp.PromoActiveAt(now)
		ep.EffectiveTTC = sp.EffectivePriceAt(now)
		ep.HasPrice = true
		prices[sp.ProductID] = ep
	}
	return prices, nil
}

// AggregateSales suma las ventas mensuales por producto en [from, to]:
// total y desglose por clave "YYYY-MM". La selección de meses (incluido el
// ensanchamiento multi-año) la aplica el repositorio.
func (b *DatasetBuilder) AggregateSales(
	ctx context.Context,
	ids []string,
	from, to time.Time,
) (map[string]SalesSummary, error) {
	rows, err := b.sales.MonthlySales(ctx, ids, from, to)
	if err != nil {
		return nil, fmt.Errorf("ventes mensuelles: %w", err)
	}
	sales := make(map[string]SalesSummary, len(ids))
	for _, row := range rows {
		s := sales[row.ProductID]
		if s.ParMois == nil {
			s.ParMois = make(map[string]int64, 12)
		}
		s.Total += row.Quantity
		s.ParMois[row.PeriodKey()] += row.Quantity
		sales[row.ProductID] = s
	}
	return sales, nil
}

func (b *DatasetBuilder) resolveStocks(ctx context.Context, ids []string) (map[string]entity.Stock, error) {
	rows, err := b.stocks.LatestStocks(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("stocks: %w", err)
	}
	stocks := make(map[string]entity.Stock, len(rows))
	for _, row := range rows {
		stocks[row.ProductID] = row
	}
	return stocks, nil
}

// describeRequete representación legible de la consulta masiva equivalente,
// devuelta en el diagnóstico de cada análisis.
func describeRequete(f dto.ProduitFilters, from, to time.Time) string {
	var filters []string
	if f.PharmacieID != "" {
		filters = append(filters, "pharmacie="+f.PharmacieID)
	}
	if f.FamilleID != "" {
		filters = append(filters, "famille="+f.FamilleID)
	}
	if f.EAN13 != "" {
		filters = append(filters, "ean13="+f.EAN13)
	}
	if f.FournisseurID != "" {
		filters = append(filters, "fournisseur="+f.FournisseurID)
	}
	clause := ""
	if len(filters) > 0 {
		clause = " [" + strings.Join(filters, " ") + "]"
	}
	return fmt.Sprintf(
		"produits actifs%s → prix courants + ventes [%s..%s] + stocks",
		clause, from.Format("2006-01"), to.Format("2006-01"),
	)
}

// monthsBetween número de meses calendario del rango [from, to] inclusive.
func monthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month()) + 1
}

// monthKeys enumera las claves "YYYY-MM" de los meses nominales del rango.
func monthKeys(from, to time.Time) []string {
	n := monthsBetween(from, to)
	if n <= 0 {
		return nil
	}
	keys := make([]string, 0, n)
	cur := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		keys = append(keys, cur.Format("2006-01"))
		cur = cur.AddDate(0, 1, 0)
	}
	return keys
}
