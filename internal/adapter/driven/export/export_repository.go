package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/diillson/shipping-report/internal/domain/entity"
	"github.com/diillson/shipping-report/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// --- Funções de Exportação do Relatório de Envios ---

func (r *ExportRepositoryImpl) ExportToCSV(report entity.ShippingReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	labels := report.Labels
	var records [][]string

	records = append(records, []string{"Department counts"}, []string{labels.Department, labels.Count})
	for _, dc := range report.DepartmentCounts {
		records = append(records, []string{dc.Department, strconv.Itoa(dc.Count)})
	}

	records = append(records, []string{}, []string{"Department costs"}, []string{labels.Department, labels.Sum})
	for _, dc := range report.DepartmentCosts {
		records = append(records, []string{dc.Department, formatCost(dc.Total)})
	}

	records = append(records, []string{}, []string{"Destination costs"}, []string{labels.Name, labels.Sum})
	for _, dc := range report.DestinationCosts {
		records = append(records, []string{dc.Name, formatCost(dc.Total)})
	}

	if report.TopDestination != nil {
		records = append(records, []string{}, []string{"Maximum shipping cost"}, []string{labels.Name, labels.Sum},
			[]string{report.TopDestination.Name, formatCost(report.TopDestination.Total)})
	}

	if err := writer.WriteAll(records); err != nil {
		return "", fmt.Errorf("error writing CSV data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(report entity.ShippingReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", sanitizeBase(base), timestamp, ext)
	return filepath.Join(dir, filename), nil
}

var unsafeNameRegex = regexp.MustCompile(`[^\w.\- ]+`)

// sanitizeBase remove separadores de caminho e caracteres problemáticos do nome base.
func sanitizeBase(base string) string {
	base = unsafeNameRegex.ReplaceAllString(filepath.Base(base), "_")
	if base == "" || base == "." {
		return "shipping_report"
	}
	return base
}

func formatCost(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
