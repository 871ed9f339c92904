package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/shipping-report/internal/adapter/driven/config"
	"github.com/diillson/shipping-report/internal/adapter/driven/dataset"
	"github.com/diillson/shipping-report/internal/adapter/driven/export"
	"github.com/diillson/shipping-report/internal/shared/types"
)

// recordingConsole captures everything the use case writes.
type recordingConsole struct {
	out      strings.Builder
	warnings []string
	errors   []string
	charts   [][]types.Bar
	costBars [][]types.CostBar
}

func (c *recordingConsole) Printf(format string, a ...interface{}) { fmt.Fprintf(&c.out, format, a...) }
func (c *recordingConsole) Println(a ...interface{})               { fmt.Fprintln(&c.out, a...) }
func (c *recordingConsole) LogInfo(format string, a ...interface{}) {
	fmt.Fprintf(&c.out, format+"\n", a...)
}
func (c *recordingConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *recordingConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *recordingConsole) LogSuccess(format string, a ...interface{}) {
	fmt.Fprintf(&c.out, format+"\n", a...)
}
func (c *recordingConsole) Status(string) types.StatusHandle       { return noopHandle{} }
func (c *recordingConsole) Progress([]string) types.ProgressHandle { return noopHandle{} }
func (c *recordingConsole) CreateTable() types.TableInterface      { return &textTable{} }
func (c *recordingConsole) DisplayBarChart(_ string, bars []types.Bar) error {
	c.charts = append(c.charts, bars)
	return nil
}
func (c *recordingConsole) DisplayCostBars(_ string, costs []types.CostBar) {
	c.costBars = append(c.costBars, costs)
}

type noopHandle struct{}

func (noopHandle) Increment() {}
func (noopHandle) Stop()      {}

type textTable struct{ lines []string }

func (t *textTable) AddColumn(name string, _ ...interface{}) { t.lines = append(t.lines, "col:"+name) }
func (t *textTable) AddRow(cells ...interface{})             { t.lines = append(t.lines, fmt.Sprint(cells...)) }
func (t *textTable) Render() string                          { return strings.Join(t.lines, "\n") }

const (
	departureCSV = `department number,destination country code,weight,sender
1,UA,10,Kyiv
2,PL,4,Lviv
3,DE,2,Odesa
1,ZZ,7,Kyiv
`
	departure2CSV = `department number,destination country code,weight,sender
1,UA,5,Kyiv
2,DE,1.5,Lviv
4,PL,3,Dnipro
`
	countriesCSV = `destination country code,name,price for delivery 1KH
UA,Ukraine,2
PL,Poland,6
DE,Germany,8.5
`
)

type fixture struct {
	dir     string
	console *recordingConsole
	uc      *ReportUseCase
	cfg     *types.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	for name, content := range map[string]string{
		types.DefaultDeparture:  departureCSV,
		types.DefaultDeparture2: departure2CSV,
		types.DefaultCountries:  countriesCSV,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	console := &recordingConsole{}
	uc := NewReportUseCase(dataset.NewDatasetRepository(), export.NewExportRepository(), config.NewConfigRepository(""), console)
	uc.now = func() time.Time { return time.Date(2024, 11, 9, 0, 0, 0, 0, time.UTC) }

	cfg := DefaultConfig()
	cfg.Departures = []string{filepath.Join(dir, types.DefaultDeparture), filepath.Join(dir, types.DefaultDeparture2)}
	cfg.Countries = filepath.Join(dir, types.DefaultCountries)

	return &fixture{dir: dir, console: console, uc: uc, cfg: cfg}
}

func TestBuildReport(t *testing.T) {
	f := newFixture(t)

	report, err := f.uc.BuildReport(context.Background(), f.cfg)
	require.NoError(t, err)

	assert.Equal(t, 7, report.TotalShipments)
	assert.Equal(t, 6, report.JoinedShipments)
	assert.Equal(t, 1, report.DroppedShipments)
	assert.Equal(t, []string{"ZZ"}, report.UnmatchedCodes)
	require.Len(t, report.Departures, 2)
	assert.Equal(t, []string{"int", "string", "float", "string"}, report.Departures[1].Kinds)
	assert.Equal(t, []string{"string", "string", "float"}, report.Countries.Kinds)

	// dept 1 appears three times, 2 twice, 3 and 4 once
	counts := map[string]int{}
	total := 0
	for _, dc := range report.DepartmentCounts {
		counts[dc.Department] = dc.Count
		total += dc.Count
	}
	assert.Equal(t, map[string]int{"1": 3, "2": 2, "3": 1, "4": 1}, counts)
	assert.Equal(t, report.TotalShipments, total)
	assert.Equal(t, "1", report.DepartmentCounts[0].Department)

	// 1: (10+5)*2, 2: 4*6 + 1.5*8.5, 3: 2*8.5, 4: 3*6; ZZ is dropped
	costs := map[string]float64{}
	for _, dc := range report.DepartmentCosts {
		costs[dc.Department] = dc.Total
	}
	assert.InDelta(t, 30.0, costs["1"], 1e-9)
	assert.InDelta(t, 36.75, costs["2"], 1e-9)
	assert.InDelta(t, 17.0, costs["3"], 1e-9)
	assert.InDelta(t, 18.0, costs["4"], 1e-9)

	// Poland 24+18, Germany 12.75+17, Ukraine 30
	require.Len(t, report.DestinationCosts, 3)
	assert.Equal(t, "Poland", report.DestinationCosts[0].Name)
	assert.InDelta(t, 42.0, report.DestinationCosts[0].Total, 1e-9)
	for i := 1; i < len(report.DestinationCosts); i++ {
		assert.GreaterOrEqual(t, report.DestinationCosts[i-1].Total, report.DestinationCosts[i].Total)
	}
	require.NotNil(t, report.TopDestination)
	assert.Equal(t, report.DestinationCosts[0], *report.TopDestination)

	require.Len(t, f.console.charts, 1)
	assert.Len(t, f.console.charts[0], 4)
	require.Len(t, f.console.costBars, 1)
	assert.Equal(t, "Poland", f.console.costBars[0][0].Label)

	require.Len(t, f.console.warnings, 1)
	assert.Contains(t, f.console.warnings[0], "ZZ")
	assert.Contains(t, f.console.out.String(), "name  Poland\nsum   42\n")
	assert.Contains(t, f.console.out.String(), "Poland have a maximum shipping cost: 42.00")
	assert.Contains(t, f.console.out.String(), "col:value of premise")
}

func TestBuildReportIsDeterministic(t *testing.T) {
	f := newFixture(t)

	first, err := f.uc.BuildReport(context.Background(), f.cfg)
	require.NoError(t, err)
	second, err := f.uc.BuildReport(context.Background(), f.cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildReportStrictJoin(t *testing.T) {
	f := newFixture(t)
	strict := true
	f.cfg.StrictJoin = &strict

	_, err := f.uc.BuildReport(context.Background(), f.cfg)
	require.ErrorIs(t, err, types.ErrUnmatchedCountryCodes)
	assert.Contains(t, err.Error(), "ZZ")
}

func TestBuildReportNoChart(t *testing.T) {
	f := newFixture(t)
	noChart := true
	f.cfg.NoChart = &noChart

	_, err := f.uc.BuildReport(context.Background(), f.cfg)
	require.NoError(t, err)
	assert.Empty(t, f.console.charts)
}

func TestBuildReportFailures(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.Departures = append(f.cfg.Departures, filepath.Join(f.dir, "departure 3.txt"))

		_, err := f.uc.BuildReport(context.Background(), f.cfg)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("renamed column", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.Columns.Weight = "Weight"

		_, err := f.uc.BuildReport(context.Background(), f.cfg)
		assert.ErrorContains(t, err, `"Weight"`)
	})

	t.Run("non numeric weight", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.Columns.Weight = "sender"

		_, err := f.uc.BuildReport(context.Background(), f.cfg)
		assert.ErrorContains(t, err, "not numeric")
	})
}

func TestRunReportExports(t *testing.T) {
	f := newFixture(t)
	out := filepath.Join(f.dir, "out")

	args := &types.CLIArgs{
		Departures: f.cfg.Departures,
		Countries:  f.cfg.Countries,
		ReportName: "shipping",
		ReportType: []string{"csv", "json", "xlsx", "pdf"},
		Dir:        out,
		NoChart:    true,
		ChangedArgs: map[string]bool{
			"departures": true, "countries": true, "report-name": true,
			"report-type": true, "dir": true, "no-chart": true,
		},
	}
	require.NoError(t, f.uc.RunReport(context.Background(), args))
	assert.Empty(t, f.console.errors)

	for _, ext := range []string{"csv", "json", "xlsx", "pdf"} {
		matches, err := filepath.Glob(filepath.Join(out, "shipping_*."+ext))
		require.NoError(t, err)
		assert.Len(t, matches, 1, ext)
	}
}
