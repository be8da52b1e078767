package main

import (
	"os"

	"github.com/pim-suite/mycontacts/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
