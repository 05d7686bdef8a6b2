package main

import (
	"os"

	"github.com/Olga-Zydziak/website-of-publishing-house/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
