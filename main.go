package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"

	"slidelord/internal/app"
	"slidelord/internal/config"
	"slidelord/internal/logging"
)

var version = "dev"

func main() {
	defaultConfig, err := config.DefaultPath()
	if err != nil {
		defaultConfig = "config.yaml"
	}
	defaultLogs, err := logging.Dir()
	if err != nil {
		defaultLogs = "logs"
	}

	configPath := flag.String("config", defaultConfig, "path to the YAML configuration")
	logDir := flag.String("logs", defaultLogs, "directory for log files")
	debug := flag.Bool("debug", false, "log at debug level")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("slidelord", version)
		return
	}

	if !term.IsTerminal(os.Stdin.Fd()) || !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "Error: slidelord needs an interactive terminal")
		os.Exit(1)
	}

	a, err := app.New(app.Options{ConfigPath: *configPath, LogDir: *logDir, Debug: *debug})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		a.Close()
		os.Exit(1)
	}
}
