package main

import (
	"os"

	"github.com/mchandra/offergen/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
