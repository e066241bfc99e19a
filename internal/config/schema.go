package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// schemaAdapter translates one YAML document shape into jobs keyed by
// their selector.
type schemaAdapter interface {
	jobs(host string) (map[string]Job, error)
}

// yamlDoc covers both supported document shapes. Exactly one of Maps or
// Municipalities must be present.
type yamlDoc struct {
	Host           string                      `yaml:"host"`
	Timeout        string                      `yaml:"timeout"`
	StrictStatus   bool                        `yaml:"strict_status"`
	UserAgent      string                      `yaml:"user_agent"`
	Maps           map[string]yamlMap          `yaml:"maps"`
	Municipalities map[string]yamlMunicipality `yaml:"municipalities"`
}

// yamlMap is the "maps" shape: an explicit filename_segments block and
// nested index ranges with a numeric zfill width.
type yamlMap struct {
	FilenameSegments yamlSegments `yaml:"filename_segments"`
	Paths            []yamlPath   `yaml:"paths"`
}

type yamlSegments struct {
	Name      []string `yaml:"name"`
	Year      int      `yaml:"year"`
	Vol       string   `yaml:"vol"`
	Extension string   `yaml:"extension"`
}

type yamlPath struct {
	Prefix      string    `yaml:"prefix"`
	Part        string    `yaml:"part"`
	DefaultPath string    `yaml:"default_path"`
	Regex       string    `yaml:"regex"`
	Index       yamlIndex `yaml:"index"`
}

type yamlIndex struct {
	Start      int `yaml:"start"`
	Stop       int `yaml:"stop"`
	ZfillWidth int `yaml:"zfill_width"`
}

// yamlMunicipality is the Sanborn shape: naming metadata is inline, path
// entries use a pad_num boolean and flat index bounds.
type yamlMunicipality struct {
	Name      string         `yaml:"name"`
	State     string         `yaml:"state"`
	Year      int            `yaml:"year"`
	Vol       string         `yaml:"vol"`
	Extension string         `yaml:"extension"`
	Paths     []yamlMuniPath `yaml:"paths"`
}

type yamlMuniPath struct {
	Prefix      string `yaml:"prefix"`
	Part        string `yaml:"part"`
	PadNum      bool   `yaml:"pad_num"`
	DefaultPath string `yaml:"default_path"`
	Regex       string `yaml:"regex"`
	IndexStart  int    `yaml:"index_start"`
	IndexStop   int    `yaml:"index_stop"`
}

type mapsSchema map[string]yamlMap

func (s mapsSchema) jobs(host string) (map[string]Job, error) {
	jobs := make(map[string]Job, len(s))
	for key, m := range s {
		job := Job{
			Key:  key,
			Host: host,
			Naming: NamingSpec{
				Segments:  append([]string(nil), m.FilenameSegments.Name...),
				Year:      m.FilenameSegments.Year,
				Volume:    m.FilenameSegments.Vol,
				Extension: m.FilenameSegments.Extension,
			},
		}
		for _, p := range m.Paths {
			job.Groups = append(job.Groups, PathGroup{
				DefaultPath: p.DefaultPath,
				Pattern:     p.Regex,
				Prefix:      p.Prefix,
				Part:        p.Part,
				IndexStart:  p.Index.Start,
				IndexStop:   p.Index.Stop,
				ZeroFill:    p.Index.ZfillWidth,
			})
		}
		jobs[key] = job
	}
	return jobs, nil
}

type municipalitySchema map[string]yamlMunicipality

// padWidth is the fill applied when a Sanborn path sets pad_num.
const padWidth = 4

func (s municipalitySchema) jobs(host string) (map[string]Job, error) {
	jobs := make(map[string]Job, len(s))
	for key, m := range s {
		if m.Name == "" || m.State == "" {
			return nil, fmt.Errorf("municipality %q: name and state are required", key)
		}
		job := Job{
			Key:  key,
			Host: host,
			Naming: NamingSpec{
				Segments:  []string{"Sanborn-LOC", m.Name, m.State},
				Year:      m.Year,
				Volume:    m.Vol,
				Extension: m.Extension,
			},
		}
		for _, p := range m.Paths {
			zfill := 0
			if p.PadNum {
				zfill = padWidth
			}
			job.Groups = append(job.Groups, PathGroup{
				DefaultPath: p.DefaultPath,
				Pattern:     p.Regex,
				Prefix:      p.Prefix,
				Part:        p.Part,
				IndexStart:  p.IndexStart,
				IndexStop:   p.IndexStop,
				ZeroFill:    zfill,
			})
		}
		jobs[key] = job
	}
	return jobs, nil
}

// Load reads and validates a configuration file in either schema shape.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates configuration bytes in either schema shape.
func Parse(data []byte) (*Config, error) {
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if doc.Host == "" {
		return nil, fmt.Errorf("config: host is required")
	}

	var adapter schemaAdapter
	switch {
	case doc.Maps != nil && doc.Municipalities != nil:
		return nil, fmt.Errorf("config: maps and municipalities are mutually exclusive")
	case doc.Maps != nil:
		adapter = mapsSchema(doc.Maps)
	case doc.Municipalities != nil:
		adapter = municipalitySchema(doc.Municipalities)
	default:
		return nil, fmt.Errorf("config: no maps or municipalities section found")
	}

	jobs, err := adapter.jobs(doc.Host)
	if err != nil {
		return nil, err
	}
	for _, job := range jobs {
		if err := validateJob(job); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Host: doc.Host,
		HTTP: DefaultHTTP(),
		Jobs: jobs,
	}
	if doc.Timeout != "" {
		d, err := time.ParseDuration(doc.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse timeout: %w", err)
		}
		cfg.HTTP.Timeout = d
	}
	cfg.HTTP.StrictStatus = doc.StrictStatus
	if doc.UserAgent != "" {
		cfg.HTTP.UserAgent = doc.UserAgent
	}

	return cfg, nil
}
