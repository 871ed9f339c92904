package usecase

import (
	"fmt"

	"github.com/diillson/shipping-report/internal/shared/types"
)

// DefaultConfig returns the configuration used when nothing overrides it:
// the three standard input files in the working directory.
func DefaultConfig() *types.Config {
	return &types.Config{
		Departures: []string{types.DefaultDeparture, types.DefaultDeparture2},
		Countries:  types.DefaultCountries,
		Delimiter:  types.DefaultDelimiter,
		ReportType: []string{"csv"},
		Columns:    types.DefaultColumns(),
	}
}

// ResolveConfig merges, in increasing precedence, the defaults, the config
// file, SHIPPING_REPORT_* variables and explicitly set flags, then validates
// the result.
func (uc *ReportUseCase) ResolveConfig(args *types.CLIArgs) (*types.Config, error) {
	cfg := DefaultConfig()

	if args.ConfigFile != "" {
		fileCfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		mergeConfig(cfg, fileCfg)
		uc.console.LogInfo("Loaded configuration from %s", args.ConfigFile)
	}

	envCfg, err := uc.configRepo.LoadEnv()
	if err != nil {
		return nil, err
	}
	mergeConfig(cfg, envCfg)

	if args.Changed("departures") {
		cfg.Departures = args.Departures
	}
	if args.Changed("countries") {
		cfg.Countries = args.Countries
	}
	if args.Changed("delimiter") {
		cfg.Delimiter = args.Delimiter
	}
	if args.Changed("profile") {
		cfg.Profile = args.Profile
	}
	if args.Changed("strict-join") {
		cfg.StrictJoin = &args.StrictJoin
	}
	if args.Changed("no-chart") {
		cfg.NoChart = &args.NoChart
	}
	if args.Changed("report-name") {
		cfg.ReportName = args.ReportName
	}
	if args.Changed("report-type") {
		cfg.ReportType = args.ReportType
	}
	if args.Changed("dir") {
		cfg.Dir = args.Dir
	}

	cfg.Delimiter = normalizeDelimiter(cfg.Delimiter)
	if cfg.Countries == "" {
		return nil, fmt.Errorf("no country of destination file given")
	}
	if err := uc.configRepo.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeConfig copia para dst os campos definidos em src.
func mergeConfig(dst, src *types.Config) {
	if src == nil {
		return
	}
	if len(src.Departures) > 0 {
		dst.Departures = src.Departures
	}
	if src.Countries != "" {
		dst.Countries = src.Countries
	}
	if src.Delimiter != "" {
		dst.Delimiter = src.Delimiter
	}
	if src.Profile != "" {
		dst.Profile = src.Profile
	}
	// booleans are pointers so that an explicit false still overrides
	if src.StrictJoin != nil {
		dst.StrictJoin = src.StrictJoin
	}
	if src.NoChart != nil {
		dst.NoChart = src.NoChart
	}
	if src.ReportName != "" {
		dst.ReportName = src.ReportName
	}
	if len(src.ReportType) > 0 {
		dst.ReportType = src.ReportType
	}
	if src.Dir != "" {
		dst.Dir = src.Dir
	}

	setIf := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setIf(&dst.Columns.Department, src.Columns.Department)
	setIf(&dst.Columns.CountryCode, src.Columns.CountryCode)
	setIf(&dst.Columns.Weight, src.Columns.Weight)
	setIf(&dst.Columns.Price, src.Columns.Price)
	setIf(&dst.Columns.Name, src.Columns.Name)
	setIf(&dst.Columns.Count, src.Columns.Count)
	setIf(&dst.Columns.Sum, src.Columns.Sum)
}

// normalizeDelimiter accepts "tab" and "\t" as spellings of a tab.
func normalizeDelimiter(d string) string {
	switch d {
	case "tab", `\t`:
		return "\t"
	}
	return d
}
