package main

import (
	"os"

	"github.com/bnema/instagram-query-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
