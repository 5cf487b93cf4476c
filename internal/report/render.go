package report

import (
	"bytes"
	"fmt"

	"teamboard/internal/entities"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

const (
	reportHeading = "Team Management System Report"

	contentTypePDF   = "application/pdf"
	contentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Renderer turns a payload into a binary document.
type Renderer interface {
	Render(p Payload) (entities.Document, error)
}

// Renderers maps each supported format to its renderer.
type Renderers map[entities.ReportFormat]Renderer

// DefaultRenderers returns the PDF and Excel renderers.
func DefaultRenderers() Renderers {
	return Renderers{
		entities.FormatPDF:   PDFRenderer{},
		entities.FormatExcel: ExcelRenderer{},
	}
}

// For returns the renderer for format.
func (r Renderers) For(format entities.ReportFormat) (Renderer, error) {
	rr, ok := r[format]
	if !ok {
		return nil, fmt.Errorf("%w: format %q", entities.ErrInvalidArgument, format)
	}
	return rr, nil
}

// PDFRenderer renders reports with fpdf.
type PDFRenderer struct{}

// Render implements Renderer.
func (PDFRenderer) Render(p Payload) (entities.Document, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, reportHeading, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Report Type: "+p.Title(), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Generated: "+p.GeneratedAt.Format(entities.DateLayout), "", 1, "L", false, 0, "")
	if label := p.RangeLabel(); label != "" {
		pdf.CellFormat(0, 6, "Date Range: "+label, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	table := p.Table()
	pdf.SetFont("Helvetica", "BU", 14)
	pdf.CellFormat(0, 8, table.Heading, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(table.Columns))

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range table.Columns {
		pdf.CellFormat(colW, 7, c, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range table.Rows {
		for _, v := range row {
			pdf.CellFormat(colW, 7, tr(fmt.Sprint(v)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return entities.Document{}, fmt.Errorf("render pdf: %w", err)
	}
	return entities.Document{
		Body:        buf.Bytes(),
		Filename:    string(p.Type) + "-report.pdf",
		ContentType: contentTypePDF,
	}, nil
}

// ExcelRenderer renders reports as a single-sheet workbook with excelize.
type ExcelRenderer struct{}

const sheetName = "Report"

// Render implements Renderer.
func (ExcelRenderer) Render(p Payload) (entities.Document, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return entities.Document{}, fmt.Errorf("rename sheet: %w", err)
	}

	row := 1
	write := func(values ...any) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		row++
		return f.SetSheetRow(sheetName, cell, &values)
	}

	header := [][]any{
		{reportHeading},
		{"Report Type: " + p.Title()},
		{"Generated: " + p.GeneratedAt.Format(entities.DateLayout)},
	}
	if label := p.RangeLabel(); label != "" {
		header = append(header, []any{"Date Range: " + label})
	}
	header = append(header, []any{})

	table := p.Table()
	columns := make([]any, 0, len(table.Columns))
	for _, c := range table.Columns {
		columns = append(columns, c)
	}

	lines := append(header, []any{table.Heading}, columns)
	lines = append(lines, table.Rows...)
	columnsRow := len(header) + 2
	for _, l := range lines {
		if err := write(l...); err != nil {
			return entities.Document{}, fmt.Errorf("write row: %w", err)
		}
	}

	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return entities.Document{}, fmt.Errorf("title style: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return entities.Document{}, fmt.Errorf("bold style: %w", err)
	}
	if err := f.SetRowStyle(sheetName, 1, 1, title); err != nil {
		return entities.Document{}, fmt.Errorf("style title: %w", err)
	}
	if err := f.SetRowStyle(sheetName, 2, 2, bold); err != nil {
		return entities.Document{}, fmt.Errorf("style type: %w", err)
	}
	if err := f.SetRowStyle(sheetName, columnsRow, columnsRow, bold); err != nil {
		return entities.Document{}, fmt.Errorf("style columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return entities.Document{}, fmt.Errorf("render excel: %w", err)
	}
	return entities.Document{
		Body:        buf.Bytes(),
		Filename:    string(p.Type) + "-report.xlsx",
		ContentType: contentTypeExcel,
	}, nil
}
