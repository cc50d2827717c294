package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuotationExcel renders a quotation document as an Excel workbook
// and returns the file contents.
func GenerateQuotationExcel(doc QuotationDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := doc.ReferenceNumber()
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Quotation"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	if err := f.SetColWidth(sheetName, "A", "A", 80); err != nil {
		return nil, fmt.Errorf("set col width A: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", 18); err != nil {
		return nil, fmt.Errorf("set col width B: %w", err)
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	lineStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, fmt.Errorf("create line style: %w", err)
	}

	amountStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create amount style: %w", err)
	}

	// ── Content ─────────────────────────────────────────────────────────

	rowNum := 1
	setCell := func(cell string, value any, style int) error {
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
		if style != 0 {
			if err := f.SetCellStyle(sheetName, cell, cell, style); err != nil {
				return fmt.Errorf("style cell %s: %w", cell, err)
			}
		}
		return nil
	}

	if err := setCell(fmt.Sprintf("A%d", rowNum), "RERA EASY - QUOTATION", titleStyle); err != nil {
		return nil, err
	}
	rowNum++
	if err := setCell(fmt.Sprintf("A%d", rowNum),
		fmt.Sprintf("%s  |  %s  |  %s", doc.ReferenceNumber(), doc.DeveloperName, doc.CreatedDate),
		subtitleStyle); err != nil {
		return nil, err
	}
	rowNum += 2

	for _, section := range doc.Sections() {
		headerCellA := fmt.Sprintf("A%d", rowNum)
		headerCellB := fmt.Sprintf("B%d", rowNum)
		if err := setCell(headerCellA, section.Header, headerStyle); err != nil {
			return nil, err
		}
		if err := setCell(headerCellB, FormatINR(section.Amount), headerStyle); err != nil {
			return nil, err
		}
		rowNum++

		for _, line := range section.Lines {
			if err := setCell(fmt.Sprintf("A%d", rowNum), "• "+line, lineStyle); err != nil {
				return nil, err
			}
			rowNum++
		}
		rowNum++
	}

	total := doc.GrandTotal()
	if err := setCell(fmt.Sprintf("A%d", rowNum), "Total Amount", amountStyle); err != nil {
		return nil, err
	}
	if err := setCell(fmt.Sprintf("B%d", rowNum), FormatINR(total), amountStyle); err != nil {
		return nil, err
	}
	rowNum++
	if err := setCell(fmt.Sprintf("A%d", rowNum), AmountToWords(total), subtitleStyle); err != nil {
		return nil, err
	}
	rowNum += 2

	if err := setCell(fmt.Sprintf("A%d", rowNum), "Terms & Conditions", headerStyle); err != nil {
		return nil, err
	}
	rowNum++
	for i, term := range doc.Terms() {
		if err := setCell(fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%d. %s", i+1, term), lineStyle); err != nil {
			return nil, err
		}
		rowNum++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
