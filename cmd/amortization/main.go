package main

import (
	"os"

	"github.com/microlead/loan-amortization/cmd/amortization/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
