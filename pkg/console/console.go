package console

import (
	"fmt"
	"strings"

	"github.com/diillson/shipping-report/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// progressHandle é uma implementação do ProgressHandle.
type progressHandle struct {
	bar *pterm.ProgressbarPrinter
}

// Progress cria uma barra de progresso para os itens especificados.
func (c *Console) Progress(items []string) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.WithTotal(len(items)).Start()
	return &progressHandle{bar: bar}
}

// Increment incrementa a barra de progresso.
func (h *progressHandle) Increment() {
	if h.bar != nil {
		h.bar.Increment()
	}
}

// Stop pára a barra de progresso.
func (h *progressHandle) Stop() {
	if h.bar != nil {
		h.bar.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	// Convertemos cada célula para string
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	// Use o pterm para criar uma tabela visualmente agradável
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayBarChart desenha um gráfico de barras vertical com os valores inteiros.
func (c *Console) DisplayBarChart(title string, bars []types.Bar) error {
	rendered, err := SprintBarChart(bars)
	if err != nil {
		return err
	}
	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(rendered)
	fmt.Println("\n" + panel)
	return nil
}

// SprintBarChart renderiza as barras sem imprimir.
func SprintBarChart(bars []types.Bar) (string, error) {
	if len(bars) == 0 {
		return "", fmt.Errorf("bar chart has no bars")
	}
	chartBars := make(pterm.Bars, len(bars))
	for i, b := range bars {
		chartBars[i] = pterm.Bar{
			Label: b.Label,
			Value: b.Value,
			Style: pterm.NewStyle(pterm.FgBlue),
		}
	}
	return pterm.DefaultBarChart.
		WithBars(chartBars).
		WithShowValue().
		WithHeight(12).
		Srender()
}

// DisplayCostBars exibe um painel com barras de custo proporcionais ao maior valor.
func (c *Console) DisplayCostBars(title string, costs []types.CostBar) {
	if len(costs) == 0 {
		pterm.Warning.Println("No costs to display")
		return
	}
	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(SprintCostBars(costs))
	fmt.Println("\n" + panel)
}

// SprintCostBars renderiza a tabela de barras de custo. O maior custo recebe
// uma barra de 40 blocos; custos zerados não recebem barra.
func SprintCostBars(costs []types.CostBar) string {
	// Encontra o valor máximo para escala
	maxCost := 0.0
	for _, cost := range costs {
		if cost.Cost > maxCost {
			maxCost = cost.Cost
		}
	}

	tableData := pterm.TableData{
		{"Destination", "Cost", "", "Share"},
	}

	var total float64
	for _, cost := range costs {
		total += cost.Cost
	}

	for i, cost := range costs {
		barLength := 0
		if maxCost > 0 && cost.Cost > 0 {
			barLength = int((cost.Cost / maxCost) * 40)
		}
		bar := strings.Repeat("█", barLength)

		// O primeiro item é o de maior custo
		barColor := pterm.FgBlue.Sprint(bar)
		if i == 0 {
			barColor = pterm.FgRed.Sprint(bar)
		}

		share := "N/A"
		if total > 0 {
			share = fmt.Sprintf("%.2f%%", cost.Cost/total*100)
		}

		tableData = append(tableData, []string{
			cost.Label,
			fmt.Sprintf("%.2f", cost.Cost),
			barColor,
			share,
		})
	}

	rendered, _ := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	return rendered
}
