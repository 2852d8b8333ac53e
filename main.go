package main

import (
	"fmt"
	"os"

	"github.com/gabrielfornes/worklog/internal/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running worklog: %v\n", err)
		os.Exit(1)
	}
}
