// Package config holds petal's small startup constants and the
// optional petal.yaml loader that overrides them.
//
// Grounded on funvibe-funxy/internal/config/constants.go for the
// package shape (plain package-level vars/consts, no loader) -- the
// yaml-backed Load here is new, since the teacher's config package
// never needed a file format, but gopkg.in/yaml.v3 is already a
// teacher dependency and SPEC_FULL.md section 6 calls for an optional
// petal.yaml overriding worker-count and quiet-mode defaults.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const SourceFileExt = ".pet"

// DefaultWorkers is PET_MT_THREADS' default when unset: async disabled.
const DefaultWorkers = 0

// DefaultQuiet is whether the REPL suppresses its startup banner by
// default.
const DefaultQuiet = false

// FileName is the config file petal looks for in the working directory.
const FileName = "petal.yaml"

// Config is the shape of an optional petal.yaml in the working
// directory: absence is not an error, and any field left unset keeps
// its default.
type Config struct {
	Workers *int  `yaml:"workers"`
	Quiet   *bool `yaml:"quiet"`
}

// Load reads petal.yaml from dir if present, returning the zero Config
// (all defaults) when the file is absent.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(dir + string(os.PathSeparator) + FileName)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WorkerCount resolves the effective microtask worker count: the
// PET_MT_THREADS environment variable wins, then petal.yaml, then
// DefaultWorkers.
func (c *Config) WorkerCount(envValue int, envSet bool) int {
	if envSet {
		return envValue
	}
	if c != nil && c.Workers != nil {
		return *c.Workers
	}
	return DefaultWorkers
}

// QuietDefault resolves the effective quiet-mode default before any
// -q flag is considered.
func (c *Config) QuietDefault() bool {
	if c != nil && c.Quiet != nil {
		return *c.Quiet
	}
	return DefaultQuiet
}
