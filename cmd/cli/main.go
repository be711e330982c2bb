package main

import (
	"fmt"
	"os"

	"github.com/sjperalta/hotel-analytics-api/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
