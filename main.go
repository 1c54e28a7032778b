package main

import (
	"os"

	"github.com/lucidbard/codequest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
