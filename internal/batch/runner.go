package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gocloud.dev/blob"

	"github.com/arwhyte/locfetch/internal/config"
	lochttp "github.com/arwhyte/locfetch/internal/http"
	"github.com/arwhyte/locfetch/internal/naming"
	"github.com/arwhyte/locfetch/internal/resolve"
	"github.com/arwhyte/locfetch/internal/runlog"
)

// ErrLogSink is returned when the run log sink fails mid-run. A run that
// cannot be recorded is aborted; every other per-item failure is skipped.
var ErrLogSink = errors.New("batch: run log sink failed")

// Options configures a batch run.
type Options struct {
	// HTTP configures the retrieval client built for the run.
	HTTP lochttp.Options

	// Client overrides the retrieval client, for tests.
	Client *lochttp.Client
}

// Run executes one job: for every (group, index) pair in order it resolves
// the resource URL, fetches the bytes, and stores them in the bucket under
// the deterministic image filename. Item failures are logged and skipped;
// the batch continues, since remote archives routinely have gaps. Only a
// failing log sink or a cancelled context stops the run early, and the end
// marker is written either way.
func Run(ctx context.Context, job config.Job, bucket *blob.Bucket, log *runlog.Logger, opts Options) (Summary, error) {
	if bucket == nil {
		return Summary{}, errors.New("batch: nil bucket")
	}
	if log == nil {
		return Summary{}, errors.New("batch: nil run log")
	}

	client := opts.Client
	if client == nil {
		client = lochttp.NewClient(opts.HTTP)
	}
	resolver := resolve.New()

	sum := Summary{Started: time.Now()}
	log.Info("Start run: %s", sum.Started.Format(time.RFC3339))

	var runErr error

loop:
	for _, group := range job.Groups {
		for index := group.IndexStart; index < group.IndexStop; index++ {
			select {
			case <-ctx.Done():
				log.Warn("Run cancelled after %d of %d items", sum.Attempted, job.ItemCount())
				runErr = ctx.Err()
				break loop
			default:
			}
			if err := log.Err(); err != nil {
				runErr = fmt.Errorf("%w: %v", ErrLogSink, err)
				break loop
			}

			sum.Attempted++

			url, err := resolver.URL(job.Host, group, index)
			if err != nil {
				log.Error("Resolve %s (index %d): %v", group.DefaultPath, index, err)
				sum.Failed++
				continue
			}

			body, status, err := client.Fetch(ctx, url)
			if err != nil {
				log.Error("Retrieve %s (index %d): %v", url, index, err)
				sum.Failed++
				continue
			}
			if status < 200 || status >= 300 {
				log.Warn("Status %d for %s (index %d); body stored as-is", status, url, index)
			}

			filename := naming.ImageName(job.Naming, index, group.Part)
			if err := bucket.WriteAll(ctx, filename, body, nil); err != nil {
				log.Error("Store %s (index %d): %v", filename, index, err)
				sum.Failed++
				continue
			}

			sum.Stored++
			log.Info("Stored %s", filename)
		}
	}

	sum.Finished = time.Now()
	log.Info("End run: %s", sum.Finished.Format(time.RFC3339))

	return sum, runErr
}
