package main

import (
	"fmt"
	"os"

	"github.com/diillson/shipping-report/internal/adapter/driven/config"
	"github.com/diillson/shipping-report/internal/adapter/driven/dataset"
	"github.com/diillson/shipping-report/internal/adapter/driven/export"
	"github.com/diillson/shipping-report/internal/adapter/driving/cli"
	"github.com/diillson/shipping-report/internal/application/usecase"
	"github.com/diillson/shipping-report/pkg/console"
	"github.com/diillson/shipping-report/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	datasetRepo := dataset.NewDatasetRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository(".env")
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	reportUseCase := usecase.NewReportUseCase(
		datasetRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetReportUseCase(reportUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
