package main

import (
	"os"

	"github.com/nickhildpac/slackbot-parser/cmd/sbparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
