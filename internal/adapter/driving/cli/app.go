package cli

import (
	"context"
	"path/filepath"

	"github.com/diillson/shipping-report/pkg/version"

	"github.com/diillson/shipping-report/internal/application/usecase"
	"github.com/diillson/shipping-report/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           "shipping-report",
		Short:         "Shipping Report CLI",
		Long:          "Counts shipments per department and totals shipping cost per department and per destination country.",
		Version:       formattedVersion,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Shipping Report version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringSliceP("departures", "i", []string{types.DefaultDeparture, types.DefaultDeparture2}, "Departure files to merge (comma-separated, local paths or s3://bucket/key)")
	rootCmd.PersistentFlags().StringP("countries", "k", types.DefaultCountries, "Country of destination file")
	rootCmd.PersistentFlags().String("delimiter", types.DefaultDelimiter, "Field delimiter of the text inputs (use \"tab\" for tab-separated files)")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile used to read s3:// inputs")
	rootCmd.PersistentFlags().Bool("strict-join", false, "Fail when a shipment references a country code missing from the country file")
	rootCmd.PersistentFlags().Bool("no-chart", false, "Do not draw the shipments per department bar chart")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf, xlsx")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	departures, _ := flags.GetStringSlice("departures")
	countries, _ := flags.GetString("countries")
	delimiter, _ := flags.GetString("delimiter")
	profile, _ := flags.GetString("profile")
	strictJoin, _ := flags.GetBool("strict-join")
	noChart, _ := flags.GetBool("no-chart")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")

	// Convert to absolute path; an empty dir means the current directory
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	changed := make(map[string]bool)
	for _, name := range []string{
		"departures", "countries", "delimiter", "profile", "strict-join",
		"no-chart", "report-name", "report-type", "dir",
	} {
		changed[name] = flags.Changed(name)
	}

	args := &types.CLIArgs{
		ConfigFile:  configFile,
		Departures:  departures,
		Countries:   countries,
		Delimiter:   delimiter,
		Profile:     profile,
		StrictJoin:  strictJoin,
		NoChart:     noChart,
		ReportName:  reportName,
		ReportType:  reportType,
		Dir:         dir,
		ChangedArgs: changed,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return app.reportUseCase.RunReport(ctx, cliArgs)
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}
