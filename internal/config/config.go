package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"time"
)

// ErrJobNotFound is returned when the requested job key is absent.
var ErrJobNotFound = errors.New("config: job key not found")

// Job is one configured batch of resources to retrieve.
type Job struct {
	Key    string
	Host   string
	Naming NamingSpec
	Groups []PathGroup
}

// ItemCount returns the total number of indices across all groups.
func (j Job) ItemCount() int {
	total := 0
	for _, g := range j.Groups {
		total += g.Count()
	}
	return total
}

// PathGroup is one contiguous index range sharing a URL template and
// naming rule within a Job. The index range is half-open: [IndexStart,
// IndexStop).
type PathGroup struct {
	DefaultPath string
	Pattern     string
	Prefix      string
	Part        string
	IndexStart  int
	IndexStop   int
	ZeroFill    int
}

// Count returns the number of indices in the group's range.
func (g PathGroup) Count() int {
	return g.IndexStop - g.IndexStart
}

// NamingSpec holds the rules for deriving local filenames from job metadata.
// Year and Volume are optional; their zero values omit the segment.
type NamingSpec struct {
	Segments  []string
	Year      int
	Volume    string
	Extension string
}

// HTTPConfig holds retrieval settings shared by every job in the file.
type HTTPConfig struct {
	Timeout      time.Duration
	StrictStatus bool
	UserAgent    string
}

// Config is the loaded configuration file: one host plus a set of jobs
// keyed by their selector.
type Config struct {
	Host string
	HTTP HTTPConfig
	Jobs map[string]Job
}

// DefaultHTTP returns HTTP settings with sensible defaults.
func DefaultHTTP() HTTPConfig {
	return HTTPConfig{
		Timeout:   30 * time.Second,
		UserAgent: "locfetch/1.0",
	}
}

// Job returns the job for key, or ErrJobNotFound.
func (c *Config) Job(key string) (Job, error) {
	job, ok := c.Jobs[key]
	if !ok {
		return Job{}, fmt.Errorf("%w: %q", ErrJobNotFound, key)
	}
	return job, nil
}

// Keys returns the job keys in sorted order.
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(c.Jobs))
	for k := range c.Jobs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LoadFromEnv applies LOCFETCH_* environment overrides to the HTTP settings.
func (c *HTTPConfig) LoadFromEnv() error {
	if v := os.Getenv("LOCFETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse LOCFETCH_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v := os.Getenv("LOCFETCH_STRICT_STATUS"); v != "" {
		c.StrictStatus = v == "true" || v == "1"
	}
	if v := os.Getenv("LOCFETCH_USER_AGENT"); v != "" {
		c.UserAgent = v
	}
	return nil
}

// validateJob checks the invariants the batch runner relies on. Patterns are
// compiled here so a bad regex fails the load instead of the middle of a run.
func validateJob(job Job) error {
	if job.Host == "" {
		return fmt.Errorf("job %q: host is required", job.Key)
	}
	if len(job.Groups) == 0 {
		return fmt.Errorf("job %q: at least one path entry is required", job.Key)
	}
	if len(job.Naming.Segments) == 0 {
		return fmt.Errorf("job %q: filename segments are required", job.Key)
	}
	if job.Naming.Extension == "" {
		return fmt.Errorf("job %q: file extension is required", job.Key)
	}
	for i, g := range job.Groups {
		if g.IndexStart >= g.IndexStop {
			return fmt.Errorf("job %q path %d: index start %d must be below stop %d",
				job.Key, i, g.IndexStart, g.IndexStop)
		}
		if g.ZeroFill < 0 {
			return fmt.Errorf("job %q path %d: zfill_width must not be negative", job.Key, i)
		}
		if _, err := regexp.Compile(g.Pattern); err != nil {
			return fmt.Errorf("job %q path %d: compile regex: %w", job.Key, i, err)
		}
	}
	return nil
}
