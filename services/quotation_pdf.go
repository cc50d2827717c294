package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotationPDF renders a quotation document to PDF bytes using
// maroto/v2.
func GenerateQuotationPDF(doc QuotationDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(10).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuotationHeader(m, doc)
	addProjectDetails(m, doc)

	for _, section := range doc.Sections() {
		addSection(m, section)
	}

	addTotals(m, doc)
	addTerms(m, doc)

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return generated.GetBytes(), nil
}

// addQuotationHeader adds the company title, reference number and date.
func addQuotationHeader(m core.Maroto, doc QuotationDocument) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("RERA EASY", props.Text{
					Size:  18,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New("QUOTATION", props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Reference: %s", doc.ReferenceNumber()), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", doc.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
		row.New(4),
	)
}

// addProjectDetails adds the developer/project block.
func addProjectDetails(m core.Maroto, doc QuotationDocument) {
	label := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	value := props.Text{Size: 8, Align: align.Left}

	details := []struct {
		name  string
		value string
	}{
		{"Developer", doc.DeveloperName},
		{"Project", doc.ProjectName},
		{"Region", doc.ProjectRegion},
		{"Plot Area", fmt.Sprintf("%.0f sq.m.", doc.PlotArea)},
		{"RERA No.", doc.ReraNumber},
		{"Validity", doc.Validity},
		{"Payment Schedule", doc.PaymentSchedule},
	}

	for _, d := range details {
		if d.value == "" {
			continue
		}
		m.AddRows(
			row.New(5).Add(
				col.New(3).Add(text.New(d.name, label)),
				col.New(9).Add(text.New(d.value, value)),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addSection renders one header block: a title band with the section amount,
// then each deliverable line.
func addSection(m core.Maroto, section DocumentSection) {
	bandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	bandCell := props.Cell{BackgroundColor: bandBg}
	bandText := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	bandAmount := bandText
	bandAmount.Align = align.Right

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New(section.Header, bandText)).WithStyle(&bandCell),
			col.New(3).Add(text.New(FormatINR(section.Amount), bandAmount)).WithStyle(&bandCell),
		),
	)

	lineBg := &props.Color{Red: 248, Green: 248, Blue: 248}
	lineCell := props.Cell{BackgroundColor: lineBg}
	lineText := props.Text{Size: 7, Align: align.Left}

	for _, line := range section.Lines {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(text.New("• "+line, lineText)).WithStyle(&lineCell),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addTotals renders the grand total in figures and words.
func addTotals(m core.Maroto, doc QuotationDocument) {
	total := doc.GrandTotal()

	totalBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	totalCell := props.Cell{BackgroundColor: totalBg}

	m.AddRows(
		row.New(9).Add(
			col.New(9).Add(
				text.New("Total Amount", props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			).WithStyle(&totalCell),
			col.New(3).Add(
				text.New(FormatINR(total), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			).WithStyle(&totalCell),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New(AmountToWords(total), props.Text{
					Size:  8,
					Style: fontstyle.Italic,
					Align: align.Right,
				}),
			),
		),
	)
}

// addTerms renders the terms and conditions block.
func addTerms(m core.Maroto, doc QuotationDocument) {
	m.AddRows(
		row.New(6),
		row.New(7).Add(
			col.New(12).Add(
				text.New("Terms & Conditions", props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	termText := props.Text{Size: 7, Align: align.Left}
	for i, term := range doc.Terms() {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(text.New(fmt.Sprintf("%d. %s", i+1, term), termText)),
			),
		)
	}
}
