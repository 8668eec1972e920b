package main

import (
	"os"

	"github.com/pdebelak/ntfy-cli/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
