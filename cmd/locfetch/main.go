package main

import (
	"fmt"
	"os"
)

// Exit codes
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitInvalidArgs  = 2
	ExitConfigError  = 3
	ExitSinkError    = 4
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return ExitInvalidArgs
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "fetch":
		return runFetch(cmdArgs)
	case "jobs":
		return runJobs(cmdArgs)
	case "help", "-h", "--help":
		printUsage()
		return ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		return ExitInvalidArgs
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: locfetch <command> [options]

Commands:
  fetch     Retrieve a configured volume of images into an output location
  jobs      List the job keys declared in the configuration file

Run 'locfetch <command> -h' for command-specific help.`)
}

// defaultConfigPath returns the configuration file path, honoring the
// LOCFETCH_CONFIG override.
func defaultConfigPath() string {
	if v := os.Getenv("LOCFETCH_CONFIG"); v != "" {
		return v
	}
	return "loc_config.yml"
}
