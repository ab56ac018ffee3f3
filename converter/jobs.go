package converter

import (
	"bytes"
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/refmt/casing"
	"github.com/erraggy/refmt/refmterrors"
)

// jobFile is the on-disk shape of a YAML job file: a single "jobs" list.
type jobFile struct {
	Jobs []jobSpec `yaml:"jobs" json:"jobs"`
}

// jobSpec mirrors Config with string style names and the CLI's kebab-case
// option keys.
type jobSpec struct {
	From              string   `yaml:"from" json:"from"`
	To                string   `yaml:"to" json:"to"`
	Prefix            string   `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Suffix            string   `yaml:"suffix,omitempty" json:"suffix,omitempty"`
	StripPrefix       string   `yaml:"strip-prefix,omitempty" json:"strip-prefix,omitempty"`
	StripSuffix       string   `yaml:"strip-suffix,omitempty" json:"strip-suffix,omitempty"`
	ReplacePrefixFrom string   `yaml:"replace-prefix-from,omitempty" json:"replace-prefix-from,omitempty"`
	ReplacePrefixTo   string   `yaml:"replace-prefix-to,omitempty" json:"replace-prefix-to,omitempty"`
	ReplaceSuffixFrom string   `yaml:"replace-suffix-from,omitempty" json:"replace-suffix-from,omitempty"`
	ReplaceSuffixTo   string   `yaml:"replace-suffix-to,omitempty" json:"replace-suffix-to,omitempty"`
	WordFilter        string   `yaml:"word-filter,omitempty" json:"word-filter,omitempty"`
	Glob              string   `yaml:"glob,omitempty" json:"glob,omitempty"`
	Extensions        []string `yaml:"extensions,omitempty" json:"extensions,omitempty"`
	Recursive         bool     `yaml:"recursive,omitempty" json:"recursive,omitempty"`
	DryRun            bool     `yaml:"dry-run,omitempty" json:"dry-run,omitempty"`
}

// LoadJobs reads a YAML job file and returns one validated Config per job.
// Unknown keys are rejected, and every job passes through the same
// validation as New, so a malformed job file fails before any file is
// touched.
//
// The file holds a single "jobs" list:
//
//	jobs:
//	  - from: camel
//	    to: snake
//	    extensions: [.go, .py]
//	  - from: pascal
//	    to: kebab
//	    strip-prefix: My
func LoadJobs(path string) ([]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &refmterrors.FileError{Path: path, Op: "read", Err: err}
	}

	var file jobFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, &refmterrors.ConfigError{
			Option:  "jobs",
			Value:   path,
			Message: "invalid job file",
			Cause:   err,
		}
	}
	if len(file.Jobs) == 0 {
		return nil, &refmterrors.ConfigError{
			Option:  "jobs",
			Value:   path,
			Message: "no jobs defined",
		}
	}

	configs := make([]Config, 0, len(file.Jobs))
	for i, job := range file.Jobs {
		cfg, err := job.toConfig()
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i+1, err)
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

// toConfig resolves style names and validates the job through New.
func (j jobSpec) toConfig() (Config, error) {
	from, err := casing.ParseStyle(j.From)
	if err != nil {
		return Config{}, err
	}
	to, err := casing.ParseStyle(j.To)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		From:              from,
		To:                to,
		Prefix:            j.Prefix,
		Suffix:            j.Suffix,
		StripPrefix:       j.StripPrefix,
		StripSuffix:       j.StripSuffix,
		ReplacePrefixFrom: j.ReplacePrefixFrom,
		ReplacePrefixTo:   j.ReplacePrefixTo,
		ReplaceSuffixFrom: j.ReplaceSuffixFrom,
		ReplaceSuffixTo:   j.ReplaceSuffixTo,
		WordFilter:        j.WordFilter,
		Glob:              j.Glob,
		Extensions:        j.Extensions,
		Recursive:         j.Recursive,
		DryRun:            j.DryRun,
	}
	if _, err := New(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
