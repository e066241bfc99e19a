package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/arwhyte/locfetch/internal/config"
)

func runJobs(args []string) int {
	fs := flag.NewFlagSet("jobs", flag.ExitOnError)

	configPath := fs.String("config", defaultConfigPath(), "Configuration file path")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: locfetch jobs [options]

List the job keys declared in the configuration file, with their group and
item counts. Pass a key to 'locfetch fetch -key'.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitConfigError
	}

	for _, key := range cfg.Keys() {
		job := cfg.Jobs[key]
		fmt.Printf("%s\t%d groups\t%d items\n", key, len(job.Groups), job.ItemCount())
	}

	return ExitSuccess
}
