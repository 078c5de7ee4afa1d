// Package pdf genera el informe imprimible del análisis de Pareto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período analizado                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SÍNTESIS: CA total / CA objetivo / referencias necesarias   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Rang | Produit | EAN13 | CA | % cumulé | Qté         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/phardev/pharmanalyse-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 96, Blue: 80}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// maxTableRows límite de filas del informe; más allá el PDF pierde utilidad.
const maxTableRows = 200

// ParetoReportGenerator genera el informe Pareto con Maroto v2.
type ParetoReportGenerator struct{}

// NewParetoReportGenerator construye el generador.
func NewParetoReportGenerator() *ParetoReportGenerator { return &ParetoReportGenerator{} }

// Generate genera el PDF del análisis y devuelve sus bytes.
func (g *ParetoReportGenerator) Generate(_ context.Context, analyse *dto.AnalyseParetoDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Analyse Pareto", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(analyse))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(resumeRow(analyse.Resume))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(analyse) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(analyse *dto.AnalyseParetoDTO) core.Row {
	periode := fmt.Sprintf("Période : %s — %s", analyse.Criteres.DateDebut, analyse.Criteres.DateFin)

	return row.New(16).Add(
		col.New(7).Add(
			text.New("Analyse Pareto du chiffre d'affaires", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(periode, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Seuil : %.0f %%", analyse.Criteres.SeuilPareto), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 4,
			}),
		),
	)
}

func resumeRow(resume dto.ParetoResumeDTO) core.Row {
	return row.New(14).Add(
		summaryCol("CA total", resume.CATotal.StringFixed(2)+" €"),
		summaryCol("CA objectif", resume.CACible.StringFixed(2)+" €"),
		summaryCol("Références", fmt.Sprintf("%d / %d", resume.NbProduitsSeuil, resume.NbProduitsTotal)),
		summaryCol("Part du catalogue", resume.PourcentageReferences.StringFixed(1)+" %"),
	)
}

func summaryCol(label, value string) core.Col {
	return col.New(3).Add(
		text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
		text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string, al align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: al, Color: colorPrimary,
		}))
	}
	return row.New(7).Add(
		header(1, "Rang", align.Left),
		header(4, "Produit", align.Left),
		header(2, "EAN13", align.Left),
		header(2, "CA", align.Right),
		header(2, "% cumulé", align.Right),
		header(1, "Qté", align.Right),
	)
}

func tableRows(analyse *dto.AnalyseParetoDTO) []core.Row {
	produits := analyse.Produits
	if len(produits) > maxTableRows {
		produits = produits[:maxTableRows]
	}

	rows := make([]core.Row, 0, len(produits))
	for _, p := range produits {
		cell := func(size int, value string, al align.Type, style fontstyle.Type) core.Col {
			return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: al, Style: style}))
		}
		style := fontstyle.Normal
		if p.Rang <= analyse.Resume.NbProduitsSeuil {
			style = fontstyle.Bold // referencias que componen el objetivo
		}
		rows = append(rows, row.New(5).Add(
			cell(1, fmt.Sprintf("%d", p.Rang), align.Left, style),
			cell(4, p.Nom, align.Left, style),
			cell(2, p.EAN13, align.Left, fontstyle.Normal),
			cell(2, p.CA.StringFixed(2), align.Right, style),
			cell(2, p.PourcentageCumule.StringFixed(1), align.Right, style),
			cell(1, fmt.Sprintf("%d", p.Quantite), align.Right, fontstyle.Normal),
		))
	}
	return rows
}
