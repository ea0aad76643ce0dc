package main

import (
	"os"

	"github.com/talevox/talevox/cmd/talevox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
