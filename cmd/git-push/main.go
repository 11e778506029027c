package main

import (
	"fmt"
	"os"

	"gitpush.dev/gitpush/internal/cli"
	"gitpush.dev/gitpush/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, output.ClassAlert.Render("Error:"), err.Error())
		os.Exit(1)
	}
}
