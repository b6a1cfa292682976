package main

import (
	"os"

	"github.com/quizdeck/quizdeck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
