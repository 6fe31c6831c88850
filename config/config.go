// Package config provides configuration loading and management for the
// ontology service.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete service configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Graph  GraphConfig  `yaml:"graph"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	// Addr is the listen address (default: ":8080")
	Addr string `yaml:"addr" env:"ONTOSERVE_ADDR"`
	// ReadTimeout bounds request reading
	ReadTimeout time.Duration `yaml:"read_timeout" env:"ONTOSERVE_READ_TIMEOUT"`
	// WriteTimeout bounds response writing
	WriteTimeout time.Duration `yaml:"write_timeout" env:"ONTOSERVE_WRITE_TIMEOUT"`
}

// GraphConfig configures the graph documents loaded at startup. The graphs
// are read-only configuration, not a database: loaded once, never mutated.
type GraphConfig struct {
	// OntologyPath is the ontology document (required)
	OntologyPath string `yaml:"ontology_path" env:"ONTOSERVE_ONTOLOGY"`
	// ShapesPath is the shape document; empty means the ontology document
	// also carries the shape declarations (single merged graph)
	ShapesPath string `yaml:"shapes_path" env:"ONTOSERVE_SHAPES"`
	// BaseIRI is the namespace verbs resolve against
	BaseIRI string `yaml:"base_iri" env:"ONTOSERVE_BASE_IRI"`
	// SeparateOntologyForInference passes the ontology graph to the
	// validator as a distinct schema graph. A pointer so an explicit
	// false in a config file survives merging; nil means the default
	// (true). Read it through SeparateInference.
	SeparateOntologyForInference *bool `yaml:"separate_ontology_for_inference" env:"ONTOSERVE_SEPARATE_ONTOLOGY"`
}

// SeparateInference returns the effective separate-ontology setting.
func (g GraphConfig) SeparateInference() bool {
	if g.SeparateOntologyForInference == nil {
		return true
	}
	return *g.SeparateOntologyForInference
}

// LogConfig configures logging
type LogConfig struct {
	// Level is the slog level name: debug, info, warn, error
	Level string `yaml:"level" env:"ONTOSERVE_LOG_LEVEL"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Graph: GraphConfig{
			OntologyPath: "",
			ShapesPath:   "",
			BaseIRI:      "",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Graph.OntologyPath == "" {
		return fmt.Errorf("graph.ontology_path is required")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Server
	if other.Server.Addr != "" {
		c.Server.Addr = other.Server.Addr
	}
	if other.Server.ReadTimeout != 0 {
		c.Server.ReadTimeout = other.Server.ReadTimeout
	}
	if other.Server.WriteTimeout != 0 {
		c.Server.WriteTimeout = other.Server.WriteTimeout
	}

	// Graph
	if other.Graph.OntologyPath != "" {
		c.Graph.OntologyPath = other.Graph.OntologyPath
	}
	if other.Graph.ShapesPath != "" {
		c.Graph.ShapesPath = other.Graph.ShapesPath
	}
	if other.Graph.BaseIRI != "" {
		c.Graph.BaseIRI = other.Graph.BaseIRI
	}
	if other.Graph.SeparateOntologyForInference != nil {
		c.Graph.SeparateOntologyForInference = other.Graph.SeparateOntologyForInference
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
