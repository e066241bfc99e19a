package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"

	"github.com/arwhyte/locfetch/internal/batch"
	"github.com/arwhyte/locfetch/internal/config"
	lochttp "github.com/arwhyte/locfetch/internal/http"
	"github.com/arwhyte/locfetch/internal/naming"
	"github.com/arwhyte/locfetch/internal/runlog"
)

func runFetch(args []string) int {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)

	key := fs.String("key", "", "Job key from the configuration file (required)")
	out := fs.String("out", "", "Output directory or bucket URL (required)")
	configPath := fs.String("config", defaultConfigPath(), "Configuration file path")
	timeout := fs.Duration("timeout", 0, "Per-request timeout (overrides config)")
	strict := fs.Bool("strict", false, "Treat non-2xx responses as item failures")
	userAgent := fs.String("user-agent", "", "User-Agent header (overrides config)")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: locfetch fetch [options]

Retrieve every image in the selected job's index ranges, store the files
under their derived names, and write a per-run log alongside them. The
output may be a local directory or a bucket URL (file://, s3://).

Item-level fetch failures are logged and skipped; the run still exits 0.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}

	if *key == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "Error: -key and -out are required")
		fs.Usage()
		return ExitInvalidArgs
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitConfigError
	}

	job, err := cfg.Job(*key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitConfigError
	}

	httpCfg := cfg.HTTP
	if err := httpCfg.LoadFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitConfigError
	}
	if *timeout != 0 {
		httpCfg.Timeout = *timeout
	}
	if *strict {
		httpCfg.StrictStatus = true
	}
	if *userAgent != "" {
		httpCfg.UserAgent = *userAgent
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\n[locfetch] Received interrupt, stopping after current item...")
		cancel()
	}()

	return fetchJob(ctx, job, *out, httpCfg)
}

func fetchJob(ctx context.Context, job config.Job, out string, httpCfg config.HTTPConfig) int {
	// The bucket and log outlive a cancelled run so the log still commits.
	sinkCtx := context.Background()

	bucket, err := openBucket(sinkCtx, out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening output: %v\n", err)
		return ExitSinkError
	}
	defer bucket.Close()

	sink, err := bucket.NewWriter(sinkCtx, naming.LogName(job.Naming), &blob.WriterOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run log: %v\n", err)
		return ExitSinkError
	}

	log := runlog.Open(sink, os.Stdout)

	sum, runErr := batch.Run(ctx, job, bucket, log, batch.Options{
		HTTP: lochttp.Options{
			Timeout:      httpCfg.Timeout,
			StrictStatus: httpCfg.StrictStatus,
			UserAgent:    httpCfg.UserAgent,
		},
	})

	if err := log.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing run log: %v\n", err)
		return ExitSinkError
	}

	fmt.Fprintf(os.Stderr, "[locfetch] %s: %s\n", job.Key, sum)

	switch {
	case runErr == nil:
		return ExitSuccess
	case errors.Is(runErr, batch.ErrLogSink):
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return ExitSinkError
	case errors.Is(runErr, context.Canceled):
		fmt.Fprintln(os.Stderr, "[locfetch] Run interrupted")
		return ExitGeneralError
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return ExitGeneralError
	}
}

// openBucket opens the output location. Anything with a URL scheme goes
// through the registered gocloud openers; a bare path becomes a local
// directory bucket, created if absent.
func openBucket(ctx context.Context, out string) (*blob.Bucket, error) {
	if strings.Contains(out, "://") {
		return blob.OpenBucket(ctx, out)
	}
	if err := os.MkdirAll(out, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return fileblob.OpenBucket(out, &fileblob.Options{
		Metadata: fileblob.MetadataDontWrite,
	})
}
