// Computor prints the reduced form, the degree and the real solutions of
// polynomial equations of degree 2 or lower.
package main

import (
	"os"

	"github.com/govalues/computor/internal/command"
	"github.com/govalues/computor/internal/log"
)

func main() {
	if err := command.Root.Execute(); err != nil {
		log.Flush()
		os.Exit(1)
	}
}
