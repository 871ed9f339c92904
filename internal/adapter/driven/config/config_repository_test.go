package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/shipping-report/internal/shared/types"
)

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	repo := NewConfigRepository("")

	files := map[string]string{
		"report.toml": `
departures = ["a.txt", "b.txt"]
countries = "c.txt"
delimiter = ";"
strict_join = true
report_type = ["pdf"]

[columns]
sum = "sum "
`,
		"report.yaml": `
departures: [a.txt, b.txt]
countries: c.txt
delimiter: ";"
strict_join: true
report_type: [pdf]
columns:
  sum: "sum "
`,
		"report.json": `{
  "departures": ["a.txt", "b.txt"],
  "countries": "c.txt",
  "delimiter": ";",
  "strict_join": true,
  "report_type": ["pdf"],
  "columns": {"sum": "sum "}
}`,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(p, []byte(content), 0644))

			cfg, err := repo.LoadConfigFile(p)
			require.NoError(t, err)
			assert.Equal(t, []string{"a.txt", "b.txt"}, cfg.Departures)
			assert.Equal(t, "c.txt", cfg.Countries)
			assert.Equal(t, ";", cfg.Delimiter)
			require.NotNil(t, cfg.StrictJoin)
			assert.True(t, *cfg.StrictJoin)
			assert.Nil(t, cfg.NoChart)
			assert.Equal(t, []string{"pdf"}, cfg.ReportType)
			assert.Equal(t, "sum ", cfg.Columns.Sum)
		})
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	repo := NewConfigRepository("")

	_, err := repo.LoadConfigFile(filepath.Join(dir, "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = repo.LoadConfigFile(dir)
	assert.ErrorContains(t, err, "is a directory")

	ini := filepath.Join(dir, "report.ini")
	require.NoError(t, os.WriteFile(ini, []byte("x=1"), 0644))
	_, err = repo.LoadConfigFile(ini)
	assert.ErrorIs(t, err, types.ErrUnsupportedFormat)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = repo.LoadConfigFile(bad)
	assert.ErrorContains(t, err, "error parsing JSON file")
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	dotEnv := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotEnv, []byte("SHIPPING_REPORT_COUNTRIES=from-dotenv.txt\nSHIPPING_REPORT_DELIMITER=|\n"), 0644))

	t.Setenv("SHIPPING_REPORT_DEPARTURES", "one.txt,two.txt")
	t.Setenv("SHIPPING_REPORT_STRICT_JOIN", "true")
	t.Setenv("SHIPPING_REPORT_COLUMNS_WEIGHT", "mass")
	t.Setenv("SHIPPING_REPORT_DELIMITER", ";")
	// godotenv does not override variables that are already set
	t.Cleanup(func() { os.Unsetenv("SHIPPING_REPORT_COUNTRIES") })

	cfg, err := NewConfigRepository(dotEnv).LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"one.txt", "two.txt"}, cfg.Departures)
	assert.Equal(t, "from-dotenv.txt", cfg.Countries)
	assert.Equal(t, ";", cfg.Delimiter)
	assert.True(t, cfg.StrictJoinEnabled())
	assert.Nil(t, cfg.NoChart)
	assert.Equal(t, "mass", cfg.Columns.Weight)
}

func TestLoadEnvMissingDotEnv(t *testing.T) {
	cfg, err := NewConfigRepository(filepath.Join(t.TempDir(), ".env")).LoadEnv()
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestValidate(t *testing.T) {
	repo := NewConfigRepository("")

	valid := &types.Config{
		Departures: []string{"departure.txt"},
		Delimiter:  ",",
		ReportType: []string{"csv", "xlsx"},
	}
	assert.NoError(t, repo.Validate(valid))

	tests := []struct {
		name string
		cfg  types.Config
		want string
	}{
		{"no departures", types.Config{}, types.ErrNoDepartureSources.Error()},
		{"long delimiter", types.Config{Departures: []string{"a"}, Delimiter: ";;"}, types.ErrInvalidDelimiter.Error()},
		{"unknown report type", types.Config{Departures: []string{"a"}, ReportType: []string{"html"}}, `"html" is not one of`},
		{"blank departure", types.Config{Departures: []string{""}}, "must not be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := repo.Validate(&cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
