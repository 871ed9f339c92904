package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle
	Progress(items []string) ProgressHandle

	CreateTable() TableInterface
	DisplayBarChart(title string, bars []Bar) error
	DisplayCostBars(title string, costs []CostBar)
}

// StatusHandle é uma interface para encerrar uma mensagem de status.
type StatusHandle interface {
	Stop()
}

// ProgressHandle é uma interface para atualizar uma barra de progresso.
type ProgressHandle interface {
	Increment()
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// Bar é uma categoria do gráfico de barras com seu valor inteiro.
type Bar struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// CostBar representa o custo total de uma categoria, usado nos painéis de custo.
type CostBar struct {
	Label string  `json:"label"`
	Cost  float64 `json:"cost"`
}
