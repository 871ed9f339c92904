package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/diillson/shipping-report/internal/domain/entity"
	"github.com/diillson/shipping-report/internal/domain/repository"
	"github.com/diillson/shipping-report/internal/domain/table"
	"github.com/diillson/shipping-report/internal/shared/types"
)

// ReportUseCase handles the shipping report pipeline.
type ReportUseCase struct {
	datasetRepo repository.DatasetRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
	now         func() time.Time
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	datasetRepo repository.DatasetRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		datasetRepo: datasetRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
		now:         time.Now,
	}
}

// RunReport executa o relatório completo: configuração, carga, agregação,
// exibição e exportação.
func (uc *ReportUseCase) RunReport(ctx context.Context, args *types.CLIArgs) error {
	cfg, err := uc.ResolveConfig(args)
	if err != nil {
		return err
	}

	report, err := uc.BuildReport(ctx, cfg)
	if err != nil {
		return err
	}

	// Exporta o relatório se um nome de relatório for fornecido
	if cfg.ReportName != "" {
		uc.exportReport(report, cfg)
	}
	return nil
}

// BuildReport loads the inputs described by cfg, prints every table and
// returns the computed report.
func (uc *ReportUseCase) BuildReport(ctx context.Context, cfg *types.Config) (entity.ShippingReport, error) {
	cols := cfg.Columns
	opts := types.LoadOptions{Delimiter: ',', Profile: cfg.Profile}
	if d := []rune(cfg.Delimiter); len(d) > 0 {
		opts.Delimiter = d[0]
	}

	locations := append(append([]string{}, cfg.Departures...), cfg.Countries)
	tables, err := uc.loadAll(ctx, locations, opts)
	if err != nil {
		return entity.ShippingReport{}, err
	}
	departures, countries := tables[:len(cfg.Departures)], tables[len(cfg.Departures)]

	summaries := make([]entity.SourceSummary, len(departures))
	for i, t := range departures {
		summaries[i] = summarize(cfg.Departures[i], t)
	}

	for i, t := range departures {
		uc.printTable(cfg.Departures[i], t)
	}
	uc.printTable(cfg.Countries, countries)

	status := uc.console.Status("Computing shipment totals...")
	agg, err := Aggregate(departures, countries, cols, cfg.StrictJoinEnabled())
	status.Stop()
	if err != nil {
		return entity.ShippingReport{}, err
	}

	report, err := uc.toReport(agg, cols)
	if err != nil {
		return entity.ShippingReport{}, err
	}
	report.Departures = summaries
	report.Countries = summarize(cfg.Countries, countries)

	if report.DroppedShipments > 0 {
		uc.console.LogWarning("%d of %d shipments have no matching destination country and were left out of the cost totals: %s",
			report.DroppedShipments, report.TotalShipments, strings.Join(report.UnmatchedCodes, ", "))
	}

	uc.printTable("Shipments per department", agg.Counts)
	if !cfg.ChartDisabled() {
		bars := make([]types.Bar, len(report.DepartmentCounts))
		for i, dc := range report.DepartmentCounts {
			bars[i] = types.Bar{Label: dc.Department, Value: dc.Count}
		}
		if err := uc.console.DisplayBarChart(fmt.Sprintf("%s by %s", cols.Count, cols.Department), bars); err != nil {
			uc.console.LogWarning("Could not render bar chart: %s", err)
		}
	}

	uc.printTable("Shipping cost per department", agg.ByDepartment)

	if report.TopDestination != nil {
		top, err := agg.ByDestination.Row(0)
		if err != nil {
			return entity.ShippingReport{}, err
		}
		uc.console.Printf("\n%s\n", top)
		uc.console.Printf("%s\n\n", pterm.FgYellow.Sprint(report.TopDestinationLine()))
	} else {
		uc.console.LogWarning("No shipment matched a destination country; there is no maximum shipping cost")
	}

	uc.printTable("Shipping cost per destination", agg.ByDestination)

	costBars := make([]types.CostBar, len(report.DestinationCosts))
	for i, dc := range report.DestinationCosts {
		costBars[i] = types.CostBar{Label: dc.Name, Cost: dc.Total}
	}
	uc.console.DisplayCostBars("Shipping Cost by Destination", costBars)

	uc.console.LogSuccess("Processed %d shipments from %d departure files, total shipping cost %.2f",
		report.TotalShipments, len(cfg.Departures), report.TotalCost())

	return report, nil
}

// loadAll lê as entradas na ordem dada, parando na primeira falha.
func (uc *ReportUseCase) loadAll(ctx context.Context, locations []string, opts types.LoadOptions) ([]*table.Table, error) {
	progress := uc.console.Progress(locations)
	defer progress.Stop()

	tables := make([]*table.Table, 0, len(locations))
	for _, location := range locations {
		t, err := uc.datasetRepo.Load(ctx, location, opts)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
		progress.Increment()
	}
	return tables, nil
}

// printTable exibe uma tabela completa com título.
func (uc *ReportUseCase) printTable(title string, t *table.Table) {
	records := t.Records()

	display := uc.console.CreateTable()
	for _, name := range records[0] {
		display.AddColumn(name)
	}
	for _, rec := range records[1:] {
		cells := make([]interface{}, len(rec))
		for i, cell := range rec {
			cells[i] = cell
		}
		display.AddRow(cells...)
	}

	uc.console.Printf("\n%s\n", pterm.FgCyan.Sprintf("%s (%d rows)", title, t.Len()))
	uc.console.Println(display.Render())
}

// toReport converte as tabelas agregadas na entidade do relatório.
func (uc *ReportUseCase) toReport(agg *Aggregates, cols types.Columns) (entity.ShippingReport, error) {
	report := entity.ShippingReport{
		GeneratedAt:      uc.now(),
		TotalShipments:   agg.Departures.Len(),
		JoinedShipments:  agg.Joined.Len(),
		DroppedShipments: agg.Unmatched.Len(),
		Labels: entity.ReportLabels{
			Department: cols.Department,
			Count:      cols.Count,
			Name:       cols.Name,
			Sum:        cols.Sum,
		},
	}

	if agg.Unmatched.Len() > 0 {
		codes, err := distinctValues(agg.Unmatched, cols.CountryCode)
		if err != nil {
			return report, err
		}
		report.UnmatchedCodes = codes
	}

	for i := 0; i < agg.Counts.Len(); i++ {
		dept, _ := agg.Counts.Value(i, cols.Department)
		count, _ := agg.Counts.Value(i, cols.Count)
		n, _ := count.Int()
		report.DepartmentCounts = append(report.DepartmentCounts, entity.DepartmentCount{
			Department: dept.String(),
			Count:      int(n),
		})
	}

	for i := 0; i < agg.ByDepartment.Len(); i++ {
		dept, _ := agg.ByDepartment.Value(i, cols.Department)
		sum, _ := agg.ByDepartment.Value(i, cols.Sum)
		total, _ := sum.Float()
		report.DepartmentCosts = append(report.DepartmentCosts, entity.DepartmentCost{
			Department: dept.String(),
			Total:      total,
		})
	}

	for i := 0; i < agg.ByDestination.Len(); i++ {
		name, _ := agg.ByDestination.Value(i, cols.Name)
		sum, _ := agg.ByDestination.Value(i, cols.Sum)
		total, _ := sum.Float()
		report.DestinationCosts = append(report.DestinationCosts, entity.DestinationCost{
			Name:  name.String(),
			Total: total,
		})
	}
	// a primeira linha da tabela ordenada é o destino mais caro
	if agg.ByDestination.Len() > 0 {
		top, err := agg.ByDestination.Row(0)
		if err != nil {
			return report, err
		}
		name, _ := top.Get(cols.Name)
		sum, _ := top.Get(cols.Sum)
		total, _ := sum.Float()
		report.TopDestination = &entity.DestinationCost{Name: name.String(), Total: total}
	}

	return report, nil
}

// exportReport grava o relatório em cada formato pedido. Falhas são
// registradas e não interrompem os demais formatos.
func (uc *ReportUseCase) exportReport(report entity.ShippingReport, cfg *types.Config) {
	for _, reportType := range cfg.ReportType {
		var (
			path string
			err  error
		)
		switch reportType {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(report, cfg.ReportName, cfg.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(report, cfg.ReportName, cfg.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(report, cfg.ReportName, cfg.Dir)
		case "xlsx":
			path, err = uc.exportRepo.ExportToXLSX(report, cfg.ReportName, cfg.Dir)
		default:
			uc.console.LogWarning("Unknown report type '%s', skipping", reportType)
			continue
		}
		if err != nil {
			uc.console.LogError("Failed to export report to %s: %s", strings.ToUpper(reportType), err)
			continue
		}
		uc.console.LogSuccess("Successfully exported report to %s: %s", strings.ToUpper(reportType), path)
	}
}

func summarize(location string, t *table.Table) entity.SourceSummary {
	summary := entity.SourceSummary{Location: location, Rows: t.Len(), Columns: t.Columns()}
	for _, name := range summary.Columns {
		c, _ := t.Column(name)
		summary.Kinds = append(summary.Kinds, c.Kind().String())
	}
	return summary
}
