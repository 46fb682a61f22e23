// spacecombat runs Space Combat on its own, without the arcade menu.
package main

import (
	"fmt"
	"os"

	"github.com/vovakirdan/classic-arcade/internal/config"
	_ "github.com/vovakirdan/classic-arcade/internal/games/spacecombat"
	"github.com/vovakirdan/classic-arcade/internal/launcher"
)

func main() {
	if err := launcher.Standalone(config.SpaceID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
