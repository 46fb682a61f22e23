// snake runs Snake on its own, without the arcade menu.
package main

import (
	"fmt"
	"os"

	"github.com/vovakirdan/classic-arcade/internal/config"
	_ "github.com/vovakirdan/classic-arcade/internal/games/snake"
	"github.com/vovakirdan/classic-arcade/internal/launcher"
)

func main() {
	if err := launcher.Standalone(config.SnakeID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
