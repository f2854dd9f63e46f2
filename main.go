package main

import (
	"os"

	"github.com/webfolio-cms/webfolio/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
