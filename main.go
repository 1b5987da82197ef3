package main

import (
	"fmt"
	"os"

	"github.com/m-mizutani/alertsnap/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "alertsnap:", err)
		os.Exit(1)
	}
}
