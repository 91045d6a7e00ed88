package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// RegistrationExporter renders grouped registration data. Every format emits
// the same canonical layout: a header row, then per group one group-header
// row (GroupId + member count), the member rows, and a blank separator row.
type RegistrationExporter interface {
	// WriteCSV streams rows to w; a mid-stream write error stops cleanly
	// with whatever was already flushed.
	WriteCSV(w io.Writer, groups []RegistrationGroup) error
	// Export builds an in-memory file for buffered formats (xlsx, pdf) and
	// returns data, filename and content type.
	Export(format, eventName string, groups []RegistrationGroup) ([]byte, string, string, error)
}

type registrationExporter struct{}

func NewRegistrationExporter() RegistrationExporter {
	return &registrationExporter{}
}

func (e *registrationExporter) WriteCSV(w io.Writer, groups []RegistrationGroup) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeaders); err != nil {
		return err
	}

	blank := make([]string, len(exportHeaders))
	for _, g := range groups {
		if err := writer.Write(groupHeaderRow(g)); err != nil {
			return err
		}
		for _, p := range g.Members {
			if err := writer.Write(memberRow(p)); err != nil {
				return err
			}
		}
		if err := writer.Write(blank); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func (e *registrationExporter) Export(format, eventName string, groups []RegistrationGroup) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatExcel:
		data, err := e.exportExcel(groups)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("participants_%s.xlsx", timestamp)
		return data, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		data, err := e.exportPDF(eventName, groups)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("participants_%s.pdf", timestamp)
		return data, filename, "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported export format: %s", format)
	}
}

func (e *registrationExporter) exportExcel(groups []RegistrationGroup) ([]byte, error) {
	f := excelize.NewFile()
	sheetName := "Participants"
	f.SetSheetName("Sheet1", sheetName)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	row := 2
	writeRow := func(values []string) {
		for i, v := range values {
			if v == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
		row++
	}

	for _, g := range groups {
		writeRow(groupHeaderRow(g))
		for _, p := range g.Members {
			writeRow(memberRow(p))
		}
		row++ // blank separator row
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *registrationExporter) exportPDF(eventName string, groups []RegistrationGroup) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Participants - %s", eventName))
	pdf.Ln(12)

	colWidths := []float64{28, 16, 28, 32, 45, 25, 32, 20, 22, 14, 25}

	pdf.SetFont("Arial", "B", 8)
	for i, header := range exportHeaders {
		pdf.CellFormat(colWidths[i], 7, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	writeRow := func(values []string, bold bool) {
		if bold {
			pdf.SetFont("Arial", "B", 8)
		}
		for i, v := range values {
			pdf.CellFormat(colWidths[i], 6, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		if bold {
			pdf.SetFont("Arial", "", 8)
		}
	}

	for _, g := range groups {
		writeRow(groupHeaderRow(g), true)
		for _, p := range g.Members {
			writeRow(memberRow(p), false)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
