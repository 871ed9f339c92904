package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile  string
	Departures  []string
	Countries   string
	Delimiter   string
	Profile     string
	StrictJoin  bool
	NoChart     bool
	ReportName  string
	ReportType  []string
	Dir         string
	ChangedArgs map[string]bool
}

// Changed informa se a flag foi definida explicitamente na linha de comando.
func (a *CLIArgs) Changed(flag string) bool {
	return a.ChangedArgs[flag]
}

// LoadOptions controls how an input file is read.
type LoadOptions struct {
	Delimiter rune
	Profile   string
}
