// Package cli provides the command-line interface for rendering and
// uploading e-paper tag screens.
package cli

import (
	"fmt"
	"os"
)

// Version information
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// osExit is a variable for os.Exit to allow testing
var osExit = os.Exit

// Run executes the CLI with the given arguments.
// This is the main entry point for the CLI.
func Run(args []string) {
	if len(args) < 2 {
		Usage()
		return
	}

	command := args[1]

	switch command {
	case "generate":
		GenerateCommand(args)
	case "tags":
		TagsCommand(args)
	case "modules":
		ModulesCommand(args)
	case "version":
		VersionCommand()
	case "help", "-h", "--help":
		Usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		Usage()
	}
}

// Usage prints the CLI usage information.
func Usage() {
	fmt.Printf("open-epaper-gen - screen generator for OpenEPaperLink tags\n\n")
	fmt.Printf("Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Println("Commands:")
	fmt.Println("  generate  Render a module screen and upload it or write it to a file")
	fmt.Println("  tags      List the tags defined in the config file")
	fmt.Println("  modules   List the available screen modules")
	fmt.Println("  version   Show version information")
	fmt.Println("  help      Show this help message")
	fmt.Println("")
	fmt.Printf("Use '%s <command> -h' for command-specific help\n", os.Args[0])
	fmt.Println("")
	fmt.Println("Examples:")
	fmt.Printf("  %s generate -tag 00000222E1F5BDAA\n", os.Args[0])
	fmt.Printf("  %s generate -jpeg preview.jpg -width 296 -height 128\n", os.Args[0])
	fmt.Printf("  %s tags -config /etc/open-epaper-gen.yaml\n", os.Args[0])
}

// VersionCommand prints version information.
func VersionCommand() {
	fmt.Printf("open-epaper-gen version %s\n", Version)
	fmt.Printf("Build time: %s\n", BuildTime)
}
