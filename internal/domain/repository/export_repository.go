package repository

import (
	"github.com/diillson/shipping-report/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(report entity.ShippingReport, filename string, outputDir string) (string, error)
	ExportToJSON(report entity.ShippingReport, filename string, outputDir string) (string, error)
	ExportToPDF(report entity.ShippingReport, filename string, outputDir string) (string, error)
	ExportToXLSX(report entity.ShippingReport, filename string, outputDir string) (string, error)
}
