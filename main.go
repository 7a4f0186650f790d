package main

import (
	"os"

	"github.com/crawldesk/crawldesk/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
