package cli

import (
	"fmt"

	"github.com/jonasoberschweiber/open-epaper-gen/modules"
)

// ModulesCommand implements the 'modules' command.
func ModulesCommand(args []string) {
	fmt.Println("Available modules:")
	for _, name := range modules.Names() {
		fmt.Printf("  %s\n", name)
	}
}
