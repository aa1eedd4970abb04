// Package checkerconf loads and validates checker suite configuration files.
//
// A suite file is YAML: a suite name, an optional per-case timeout, and a list
// of cases. Each case names the command to run, optional stdin to feed it, the
// model output file to compare against, and the points the case awards.
// Unknown fields are rejected so typos fail loudly instead of being ignored.
package checkerconf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// defaultTimeoutSeconds applies when a suite does not set timeoutSeconds.
const defaultTimeoutSeconds = 10

// CaseConfig describes one checked case.
type CaseConfig struct {
	// Name identifies the case in results. Unique within a suite.
	Name string `yaml:"name" validate:"required"`
	// Command is the program to run and its arguments.
	Command []string `yaml:"command" validate:"required,min=1,dive,required"`
	// Stdin is fed to the program's standard input. Optional.
	Stdin string `yaml:"stdin,omitempty"`
	// ModelFile holds the expected output, resolved relative to the suite file.
	ModelFile string `yaml:"modelFile" validate:"required"`
	// Points awarded when the case passes, e.g. ["1.1", "1.2"]. Optional.
	Points []string `yaml:"points,omitempty"`

	// Model is the content of ModelFile, loaded by Load.
	Model []byte `yaml:"-"`
}

// Config is a parsed and validated suite file.
type Config struct {
	Name           string        `yaml:"name" validate:"required"`
	TimeoutSeconds int           `yaml:"timeoutSeconds,omitempty" validate:"min=0"`
	Cases          []*CaseConfig `yaml:"cases" validate:"required,min=1,dive"`
}

// Load reads, decodes, and validates the suite file at path, then loads every
// case's model file (resolved relative to the suite file's directory).
func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	decoder := yaml.NewDecoder(bytes.NewReader(buf))
	decoder.KnownFields(true) // Disallow unknown fields
	if err = decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("can't decode YAML from suite file '%s': %v", path, err)
	}

	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = defaultTimeoutSeconds
	}

	if err = validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("suite file '%s' is invalid: %w", path, err)
	}

	seen := map[string]bool{}
	for _, c := range cfg.Cases {
		if seen[c.Name] {
			return nil, fmt.Errorf("suite file '%s': duplicate case name '%s'", path, c.Name)
		}
		seen[c.Name] = true
	}

	dir := filepath.Dir(path)
	for _, c := range cfg.Cases {
		modelPath := c.ModelFile
		if !filepath.IsAbs(modelPath) {
			modelPath = filepath.Join(dir, modelPath)
		}
		c.Model, err = os.ReadFile(modelPath)
		if err != nil {
			return nil, fmt.Errorf("case '%s': can't read model file: %w", c.Name, err)
		}
	}

	return cfg, nil
}
