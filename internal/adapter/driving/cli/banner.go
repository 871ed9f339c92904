package cli

import (
	"fmt"

	"github.com/diillson/shipping-report/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
      ____  _     _             _               ____                       _
     / ___|| |__ (_)_ __  _ __ (_)_ __   __ _  |  _ \ ___ _ __   ___  _ __| |_
     \___ \| '_ \| | '_ \| '_ \| | '_ \ / _' | | |_) / _ \ '_ \ / _ \| '__| __|
      ___) | | | | | |_) | |_) | | | | | (_| | |  _ <  __/ |_) | (_) | |  | |_
     |____/|_| |_|_| .__/| .__/|_|_| |_|\__, | |_| \_\___| .__/ \___/|_|   \__|
                   |_|   |_|            |___/            |_|
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Shipping Report CLI (v%s)", formattedVersion)))
}
