package main

import (
	"os"

	"github.com/sachajw/pre-commit-hook-asana/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
