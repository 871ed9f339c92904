package export

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/diillson/shipping-report/internal/domain/entity"
	"github.com/jung-kurt/gofpdf"
)

var (
	headerColor       = [3]int{40, 40, 40}
	headerTextColor   = [3]int{255, 255, 255}
	sectionTitleColor = [3]int{0, 0, 0}
	bodyTextColor     = [3]int{50, 50, 50}
	lineColor         = [3]int{200, 200, 200}
	barColor          = [3]int{52, 101, 164}
)

func (r *ExportRepositoryImpl) ExportToPDF(report entity.ShippingReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	generated := report.GeneratedAt.Format("2006-01-02 15:04")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Generated by Shipping Report | %s", generated)), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	sectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	drawTable := func(headers [2]string, rows [][2]string) {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(120, 7, tr(headers[0]), "B", 0, "L", false, 0, "")
		pdf.CellFormat(70, 7, tr(headers[1]), "B", 1, "R", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, row := range rows {
			pdf.CellFormat(120, 6, tr(row[0]), "", 0, "L", false, 0, "")
			pdf.CellFormat(70, 6, tr(row[1]), "", 1, "R", false, 0, "")
		}
		pdf.Ln(8)
	}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, "  Shipping Cost Report", "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	summary := fmt.Sprintf("  Shipments: %d   Joined: %d   Dropped: %d   Total cost: %s",
		report.TotalShipments, report.JoinedShipments, report.DroppedShipments, formatCost(report.TotalCost()))
	pdf.CellFormat(0, 8, tr(summary), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	labels := report.Labels

	sectionTitle("Shipments per Department")
	counts := make([][2]string, len(report.DepartmentCounts))
	maxCount := 0
	for i, dc := range report.DepartmentCounts {
		counts[i] = [2]string{dc.Department, strconv.Itoa(dc.Count)}
		if dc.Count > maxCount {
			maxCount = dc.Count
		}
	}
	drawTable([2]string{labels.Department, labels.Count}, counts)

	// Gráfico de barras simples, uma barra horizontal por departamento
	if maxCount > 0 {
		pdf.SetFont("Arial", "", 9)
		pdf.SetFillColor(barColor[0], barColor[1], barColor[2])
		for _, dc := range report.DepartmentCounts {
			pdf.CellFormat(30, 6, tr(dc.Department), "", 0, "L", false, 0, "")
			width := float64(dc.Count) / float64(maxCount) * 140
			x, y := pdf.GetXY()
			pdf.Rect(x, y+1, width, 4, "F")
			pdf.SetX(x + width + 2)
			pdf.CellFormat(20, 6, strconv.Itoa(dc.Count), "", 1, "L", false, 0, "")
		}
		pdf.Ln(8)
	}

	sectionTitle("Shipping Cost per Department")
	costs := make([][2]string, len(report.DepartmentCosts))
	for i, dc := range report.DepartmentCosts {
		costs[i] = [2]string{dc.Department, formatCost(dc.Total)}
	}
	drawTable([2]string{labels.Department, labels.Sum}, costs)

	sectionTitle("Shipping Cost per Destination")
	if report.TopDestination != nil {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetTextColor(192, 0, 0)
		pdf.MultiCell(190, 5, tr(report.TopDestinationLine()), "", "L", false)
		pdf.Ln(4)
	}
	destinations := make([][2]string, len(report.DestinationCosts))
	for i, dc := range report.DestinationCosts {
		destinations[i] = [2]string{dc.Name, formatCost(dc.Total)}
	}
	drawTable([2]string{labels.Name, labels.Sum}, destinations)

	if len(report.UnmatchedCodes) > 0 {
		sectionTitle("Unmatched Destination Codes")
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(strings.Join(report.UnmatchedCodes, ", ")), "", "L", false)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}
