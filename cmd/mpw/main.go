package main

import (
	"os"

	"github.com/saylorsolutions/gompw/cmd/internal"
	"github.com/saylorsolutions/gompw/cmd/mpw/internal/app"
)

var (
	version = "dev"
)

func main() {
	mpw := app.New(os.Stdin, os.Stdout, os.Stderr)
	mpw.Version = version
	if err := mpw.Run(os.Args[1:]); err != nil {
		internal.Fatal(internal.ExitCode(err), "Error: %v", err)
	}
}
