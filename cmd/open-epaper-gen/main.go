// Command open-epaper-gen renders screen modules for OpenEPaperLink tags.
//
// Usage:
//
//	open-epaper-gen <command> [options]
//
// Commands:
//
//	generate  Render a module screen and upload it or write it to a file
//	tags      List the tags defined in the config file
//	modules   List the available screen modules
//	version   Show version information
//	help      Show help message
//
// Examples:
//
//	# Render the news module and upload it to a tag
//	open-epaper-gen generate -tag 00000222E1F5BDAA
//
//	# Render a preview frame to disk
//	open-epaper-gen generate -jpeg preview.jpg -width 296 -height 128
package main

import (
	"os"

	"github.com/jonasoberschweiber/open-epaper-gen/cli"
)

// These variables are set at build time using ldflags:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/open-epaper-gen
var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// Set version info
	cli.Version = version
	cli.BuildTime = buildTime

	// Run the CLI
	cli.Run(os.Args)
}
