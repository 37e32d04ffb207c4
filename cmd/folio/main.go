// folio shows a portfolio in the terminal and serves it as a web page
package main

import (
	"os"

	"github.com/iiroan/folio/cmd/folio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
