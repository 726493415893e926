// Package pdf genera la ficha descargable de una startup con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre + Industria  │  Fundada / Sitio web         │
//	│  CONTACTO: Dirección / Email / Móvil                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FINANCIACIÓN: Meta / Recaudado / Ingresos / Equity          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIONES: Problema, Solución, Tracción, Mercado...         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EQUIPO: Nombre | Rol | Email                                │
//	│  FOOTER: QR al sitio web (si existe)                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/startnet-api/internal/application/ports"
	"github.com/jhoicas/startnet-api/internal/domain/entity"
)

var _ ports.StartupSheetGenerator = (*StartupSheetGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// StartupSheetGenerator implementa ports.StartupSheetGenerator usando Maroto v2.
type StartupSheetGenerator struct{}

// NewStartupSheetGenerator construye el generador.
func NewStartupSheetGenerator() *StartupSheetGenerator { return &StartupSheetGenerator{} }

// Generate arma la ficha y devuelve los bytes del PDF.
func (g *StartupSheetGenerator) Generate(s *entity.Startup) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(s.StartupName, true).
		WithSubject("Startup sheet", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(s))
	m.AddRows(contactRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(fundingRows(s)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionRows(s)...)
	if len(s.Team) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(teamRows(s.Team)...)
	}
	if s.Website != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(websiteRow(s.Website))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ficha: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(s *entity.Startup) core.Row {
	founded := "-"
	if s.Founded > 0 {
		founded = strconv.Itoa(s.Founded)
	}
	return row.New(18).Add(
		col.New(8).Add(
			text.New(s.StartupName, props.Text{Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(s.Industry, "-"), props.Text{Size: 10, Top: 10, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Founded: "+founded, props.Text{Size: 9, Align: align.Right, Top: 2}),
			text.New(nonEmpty(s.Website, ""), props.Text{Size: 8, Align: align.Right, Top: 9, Color: colorGray}),
		),
	)
}

func contactRow(s *entity.Startup) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Address: %s   |   Email: %s   |   Mobile: %s",
			nonEmpty(s.Address, "-"), nonEmpty(s.Email, "-"), nonEmpty(s.Mobile, "-"),
		), props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

func fundingRows(s *entity.Startup) []core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1}),
			text.New(value, props.Text{Size: 10, Top: 6}),
		)
	}
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(title("FUNDING"))),
		row.New(14).Add(
			cell("Funding goal", formatUSD(s.FundingGoal)),
			cell("Raised so far", formatUSD(s.RaisedSoFar)),
			cell("Annual revenue", formatUSD(s.AnnualRevenue)),
			cell("Equity available", nonEmpty(s.EquityAvailable, "-")),
		),
	}
	for _, kv := range [][2]string{
		{"Seeking", s.Seeking},
		{"Investor ROI", s.InvestorROI},
		{"Projected revenue", s.ProjectedRevenue},
		{"Previous funding", s.PreviousFunding},
	} {
		if kv[1] != "" {
			rows = append(rows, labelled(kv[0], kv[1]))
		}
	}
	return rows
}

// sectionRows bloques de texto libre; los vacíos se omiten.
func sectionRows(s *entity.Startup) []core.Row {
	var rows []core.Row
	for _, sec := range [][2]string{
		{"About", s.Description},
		{"Problem", s.Problem},
		{"Solution", s.Solution},
		{"Traction", s.Traction},
		{"Target market", s.TargetMarket},
		{"TAM", s.TAM},
		{"Demand", s.Demand},
		{"Scalability", s.Scalability},
		{"Competitors", s.Competitors},
		{"Competitive advantage", s.Advantage},
		{"Revenue streams", s.RevenueStreams},
	} {
		if strings.TrimSpace(sec[1]) == "" {
			continue
		}
		rows = append(rows,
			row.New(6).Add(col.New(12).Add(title(strings.ToUpper(sec[0])))),
			row.New().Add(col.New(12).Add(text.New(sec[1], props.Text{Size: 9, Top: 1}))),
		)
	}
	return rows
}

func teamRows(team []entity.TeamMember) []core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}))
	}
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(title("TEAM"))),
		row.New(6).Add(h("Name", 4), h("Role", 3), h("Email", 5)),
	}
	for _, m := range team {
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(m.Name, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(m.Role, props.Text{Size: 8, Top: 1})),
			col.New(5).Add(text.New(m.Email, props.Text{Size: 8, Top: 1, Color: colorGray})),
		))
	}
	return rows
}

func websiteRow(url string) core.Row {
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(url, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(text.New("Scan to visit "+url, props.Text{Size: 8, Top: 12, Left: 3, Color: colorGray})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func title(s string) core.Component {
	return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1})
}

func labelled(label, value string) core.Row {
	return row.New().Add(
		col.New(3).Add(text.New(label+":", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
		col.New(9).Add(text.New(value, props.Text{Size: 8, Top: 1})),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatUSD "$1,234,567.50"; los montos enteros van sin decimales.
func formatUSD(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	out := sign + "$" + groupThousands(intPart)
	if frac != "00" {
		out += "." + frac
	}
	return out
}

// groupThousands inserta comas de miles en un string numérico sin signo.
// Ej: "25000" → "25,000", "1000000" → "1,000,000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
