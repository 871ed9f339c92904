package types

// Config represents the application configuration that can be loaded from a
// file and overridden by SHIPPING_REPORT_* environment variables.
type Config struct {
	Departures []string `json:"departures" yaml:"departures" toml:"departures" envconfig:"DEPARTURES" validate:"omitempty,dive,required"`
	Countries  string   `json:"countries" yaml:"countries" toml:"countries" envconfig:"COUNTRIES"`
	Delimiter  string   `json:"delimiter" yaml:"delimiter" toml:"delimiter" envconfig:"DELIMITER" validate:"omitempty,len=1"`
	Profile    string   `json:"profile" yaml:"profile" toml:"profile" envconfig:"PROFILE"`
	StrictJoin *bool    `json:"strict_join" yaml:"strict_join" toml:"strict_join" envconfig:"STRICT_JOIN"`
	NoChart    *bool    `json:"no_chart" yaml:"no_chart" toml:"no_chart" envconfig:"NO_CHART"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name" envconfig:"REPORT_NAME"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type" envconfig:"REPORT_TYPE" validate:"omitempty,dive,oneof=csv json pdf xlsx"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir" envconfig:"DIR"`
	Columns    Columns  `json:"columns" yaml:"columns" toml:"columns" envconfig:"COLUMNS"`
}

// StrictJoinEnabled reports whether unmatched country codes are fatal. Unset
// means false.
func (c *Config) StrictJoinEnabled() bool {
	return c.StrictJoin != nil && *c.StrictJoin
}

// ChartDisabled reports whether the department bar chart is skipped.
func (c *Config) ChartDisabled() bool {
	return c.NoChart != nil && *c.NoChart
}

// Columns maps the report's roles onto header names of the input files.
type Columns struct {
	Department  string `json:"department" yaml:"department" toml:"department" envconfig:"DEPARTMENT"`
	CountryCode string `json:"country_code" yaml:"country_code" toml:"country_code" envconfig:"COUNTRY_CODE"`
	Weight      string `json:"weight" yaml:"weight" toml:"weight" envconfig:"WEIGHT"`
	Price       string `json:"price" yaml:"price" toml:"price" envconfig:"PRICE"`
	Name        string `json:"name" yaml:"name" toml:"name" envconfig:"NAME"`
	Count       string `json:"count" yaml:"count" toml:"count" envconfig:"COUNT"`
	Sum         string `json:"sum" yaml:"sum" toml:"sum" envconfig:"SUM"`
}

// DefaultColumns returns the header names of the standard input files.
func DefaultColumns() Columns {
	return Columns{
		Department:  "department number",
		CountryCode: "destination country code",
		Weight:      "weight",
		Price:       "price for delivery 1KH",
		Name:        "name",
		Count:       "value of premise",
		Sum:         "sum ",
	}
}

// Default input names, relative to the working directory.
const (
	DefaultDeparture  = "departure.txt"
	DefaultDeparture2 = "departure 2.txt"
	DefaultCountries  = "country of destination.txt"
	DefaultDelimiter  = ","
)
