// Package runlog records batch run activity to a per-run log file mirrored
// on the console.
//
// Records are plain "LEVEL: message" lines, identical in both destinations.
// The log file is the run's durable record: a reviewer identifies every
// missing item by its absent filename plus a present ERROR line, bracketed
// by the start and end markers.
//
// # Usage
//
//	log := runlog.Open(sink, os.Stdout)
//	defer log.Close()
//	log.Info("Start run: %s", started.Format(time.RFC3339))
package runlog
