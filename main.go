package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/saherflow/dashseed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("❌ %v", err))
		os.Exit(1)
	}
}
