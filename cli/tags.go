package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/jonasoberschweiber/open-epaper-gen/config"
)

// TagsCommand implements the 'tags' command.
func TagsCommand(args []string) {
	tagsFlags := flag.NewFlagSet("tags", flag.ExitOnError)

	configPath := tagsFlags.String("config", "config.yaml", "Path to the config file")

	tagsFlags.Usage = func() {
		fmt.Printf("Usage: %s tags [options]\n\n", os.Args[0])
		fmt.Println("List the tags defined in the config file.")
		fmt.Println("")
		fmt.Println("Options:")
		tagsFlags.PrintDefaults()
	}

	if err := tagsFlags.Parse(args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		osExit(1)
	}

	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		osExit(1)
		return
	}

	if len(cfg.Tags) == 0 {
		fmt.Println("No tags configured.")
		return
	}

	for _, tag := range cfg.Tags {
		fmt.Printf("%s  %dx%d\n", tag.MAC, tag.Width, tag.Height)
	}
}
