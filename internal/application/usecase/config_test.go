package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/shipping-report/internal/adapter/driven/config"
	"github.com/diillson/shipping-report/internal/adapter/driven/dataset"
	"github.com/diillson/shipping-report/internal/adapter/driven/export"
	"github.com/diillson/shipping-report/internal/shared/types"
)

func newConfigUseCase() (*ReportUseCase, *recordingConsole) {
	console := &recordingConsole{}
	return NewReportUseCase(dataset.NewDatasetRepository(), export.NewExportRepository(), config.NewConfigRepository(""), console), console
}

func TestResolveConfigDefaults(t *testing.T) {
	uc, _ := newConfigUseCase()

	cfg, err := uc.ResolveConfig(&types.CLIArgs{})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestResolveConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "report.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
departures: [a.csv, b.csv]
countries: file-countries.csv
delimiter: ";"
report_name: from-file
strict_join: true
no_chart: true
columns:
  weight: kg
`), 0644))

	t.Setenv("SHIPPING_REPORT_COUNTRIES", "env-countries.csv")
	t.Setenv("SHIPPING_REPORT_REPORT_NAME", "from-env")
	t.Setenv("SHIPPING_REPORT_STRICT_JOIN", "false")

	uc, console := newConfigUseCase()
	cfg, err := uc.ResolveConfig(&types.CLIArgs{
		ConfigFile:  file,
		ReportName:  "from-flag",
		Delimiter:   "|",
		ChangedArgs: map[string]bool{"report-name": true},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.csv", "b.csv"}, cfg.Departures)
	assert.Equal(t, "env-countries.csv", cfg.Countries)
	assert.Equal(t, "from-flag", cfg.ReportName)
	// the delimiter flag was not set explicitly
	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, "kg", cfg.Columns.Weight)
	// an explicit false in the environment turns off the file's true
	assert.False(t, cfg.StrictJoinEnabled())
	assert.True(t, cfg.ChartDisabled())
	assert.Equal(t, "price for delivery 1KH", cfg.Columns.Price)
	assert.Contains(t, console.out.String(), "Loaded configuration from "+file)
}

func TestResolveConfigFlagFalseOverridesEnv(t *testing.T) {
	t.Setenv("SHIPPING_REPORT_NO_CHART", "true")
	t.Setenv("SHIPPING_REPORT_STRICT_JOIN", "true")

	uc, _ := newConfigUseCase()
	cfg, err := uc.ResolveConfig(&types.CLIArgs{
		NoChart:     false,
		ChangedArgs: map[string]bool{"no-chart": true},
	})
	require.NoError(t, err)
	assert.False(t, cfg.ChartDisabled())
	assert.True(t, cfg.StrictJoinEnabled())
}

func TestResolveConfigTabDelimiter(t *testing.T) {
	uc, _ := newConfigUseCase()

	cfg, err := uc.ResolveConfig(&types.CLIArgs{
		Delimiter:   "tab",
		ChangedArgs: map[string]bool{"delimiter": true},
	})
	require.NoError(t, err)
	assert.Equal(t, "\t", cfg.Delimiter)
}

func TestResolveConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args *types.CLIArgs
		want string
	}{
		{
			name: "no departures",
			args: &types.CLIArgs{Departures: []string{}, ChangedArgs: map[string]bool{"departures": true}},
			want: types.ErrNoDepartureSources.Error(),
		},
		{
			name: "empty countries",
			args: &types.CLIArgs{Countries: "", ChangedArgs: map[string]bool{"countries": true}},
			want: "country of destination",
		},
		{
			name: "long delimiter",
			args: &types.CLIArgs{Delimiter: ";;", ChangedArgs: map[string]bool{"delimiter": true}},
			want: types.ErrInvalidDelimiter.Error(),
		},
		{
			name: "unknown report type",
			args: &types.CLIArgs{ReportType: []string{"html"}, ChangedArgs: map[string]bool{"report-type": true}},
			want: `"html"`,
		},
		{
			name: "missing config file",
			args: &types.CLIArgs{ConfigFile: "does-not-exist.toml"},
			want: "error accessing config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newConfigUseCase()
			_, err := uc.ResolveConfig(tt.args)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestAggregateRequiresDepartures(t *testing.T) {
	_, err := Aggregate(nil, nil, types.DefaultColumns(), false)
	assert.ErrorIs(t, err, types.ErrNoDepartureSources)
}
