package main

import (
	"os"

	"github.com/domonda/go-datagrid/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
