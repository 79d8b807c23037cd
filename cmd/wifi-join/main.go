package main

import (
	"os"
	"path/filepath"

	"github.com/strct-org/wifi-join/internal/cli"
)

func main() {
	name := filepath.Base(os.Args[0])
	os.Exit(cli.Main(name, os.Args[1:], os.Stdout, os.Stderr))
}
