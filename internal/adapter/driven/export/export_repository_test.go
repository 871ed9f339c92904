package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/diillson/shipping-report/internal/domain/entity"
)

var fixedNow = time.Date(2024, 11, 9, 10, 30, 0, 0, time.UTC)

func newTestRepo() *ExportRepositoryImpl {
	return &ExportRepositoryImpl{now: func() time.Time { return fixedNow }}
}

func sampleReport() entity.ShippingReport {
	return entity.ShippingReport{
		GeneratedAt:      fixedNow,
		TotalShipments:   3,
		JoinedShipments:  2,
		DroppedShipments: 1,
		UnmatchedCodes:   []string{"ZZ"},
		DepartmentCounts: []entity.DepartmentCount{{Department: "1", Count: 2}, {Department: "2", Count: 1}},
		DepartmentCosts:  []entity.DepartmentCost{{Department: "1", Total: 30}},
		DestinationCosts: []entity.DestinationCost{{Name: "Poland", Total: 30}},
		TopDestination:   &entity.DestinationCost{Name: "Poland", Total: 30},
		Labels: entity.ReportLabels{
			Department: "department number",
			Count:      "value of premise",
			Name:       "name",
			Sum:        "sum ",
		},
	}
}

func TestExportToCSV(t *testing.T) {
	dir := t.TempDir()

	p, err := newTestRepo().ExportToCSV(sampleReport(), "shipping", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "shipping_20241109_103000.csv"), p)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "department number,value of premise\n1,2\n2,1\n")
	assert.Contains(t, content, "Department costs\ndepartment number,sum \n1,30.00\n")
	assert.Contains(t, content, "Maximum shipping cost\nname,sum \nPoland,30.00\n")
}

func TestExportToJSON(t *testing.T) {
	p, err := newTestRepo().ExportToJSON(sampleReport(), "shipping", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(p)
	require.NoError(t, err)

	var decoded entity.ShippingReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, sampleReport().DepartmentCounts, decoded.DepartmentCounts)
	require.NotNil(t, decoded.TopDestination)
	assert.Equal(t, "Poland", decoded.TopDestination.Name)
}

func TestExportToPDF(t *testing.T) {
	p, err := newTestRepo().ExportToPDF(sampleReport(), "shipping", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
}

func TestExportToXLSX(t *testing.T) {
	p, err := newTestRepo().ExportToXLSX(sampleReport(), "shipping", t.TempDir())
	require.NoError(t, err)

	f, err := excelize.OpenFile(p)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetDepartmentCounts, sheetDepartmentCosts, sheetDestinationCosts}, f.GetSheetList())

	rows, err := f.GetRows(sheetDestinationCosts)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"name", "sum "}, {"Poland", "30"}}, rows)
}

func TestGenerateFilenameCreatesDirAndSanitizes(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	p, err := newTestRepo().generateFilename("../weird/na*me", dir, "csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "na_me_20241109_103000.csv"), p)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.Equal(t, "shipping_report", sanitizeBase(""))
}
