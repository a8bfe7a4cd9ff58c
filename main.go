package main

import (
	"os"

	"github.com/thenoetrevino/todo/cmd"
	"github.com/thenoetrevino/todo/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cmd.Execute()))
}
