package export

import (
	"fmt"
	"path/filepath"

	"github.com/diillson/shipping-report/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

// Nomes das planilhas do relatório XLSX.
const (
	sheetDepartmentCounts = "Department counts"
	sheetDepartmentCosts  = "Department costs"
	sheetDestinationCosts = "Destination costs"
)

func (r *ExportRepositoryImpl) ExportToXLSX(report entity.ShippingReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	labels := report.Labels

	counts := [][]interface{}{{labels.Department, labels.Count}}
	for _, dc := range report.DepartmentCounts {
		counts = append(counts, []interface{}{dc.Department, dc.Count})
	}
	costs := [][]interface{}{{labels.Department, labels.Sum}}
	for _, dc := range report.DepartmentCosts {
		costs = append(costs, []interface{}{dc.Department, dc.Total})
	}
	destinations := [][]interface{}{{labels.Name, labels.Sum}}
	for _, dc := range report.DestinationCosts {
		destinations = append(destinations, []interface{}{dc.Name, dc.Total})
	}

	// A planilha padrão "Sheet1" é renomeada para a primeira seção
	if err := f.SetSheetName(f.GetSheetName(0), sheetDepartmentCounts); err != nil {
		return "", fmt.Errorf("error naming sheet: %w", err)
	}
	for _, name := range []string{sheetDepartmentCosts, sheetDestinationCosts} {
		if _, err := f.NewSheet(name); err != nil {
			return "", fmt.Errorf("error creating sheet %s: %w", name, err)
		}
	}

	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{sheetDepartmentCounts, counts},
		{sheetDepartmentCosts, costs},
		{sheetDestinationCosts, destinations},
	}
	for _, s := range sheets {
		if err := writeRows(f, s.name, s.rows); err != nil {
			return "", err
		}
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("error writing sheet %s: %w", sheet, err)
		}
	}
	return nil
}
