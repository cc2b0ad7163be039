// Package config provides configuration loading and management for taxonorm.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete taxonorm configuration
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Datasets DatasetsConfig `yaml:"datasets"`
	Output   OutputConfig   `yaml:"output"`
	Graph    GraphConfig    `yaml:"graph"`
	Watch    WatchConfig    `yaml:"watch"`
}

// SourceConfig configures where source datasets are discovered
type SourceConfig struct {
	// Dir is the root directory scanned for datasets
	Dir string `yaml:"dir"`
	// Patterns are glob patterns matched under Dir (** supported)
	Patterns []string `yaml:"patterns"`
}

// DatasetsConfig names the source files and their column headers
type DatasetsConfig struct {
	// Occupations is the occupation dataset filename
	Occupations string `yaml:"occupations"`
	// JobZones is the job-zone dataset filename (optional)
	JobZones string `yaml:"job_zones"`
	// CodeField is the occupation code column header
	CodeField string `yaml:"code_field"`
	// TitleField is the occupation title column header
	TitleField string `yaml:"title_field"`
	// DescriptionField is the occupation description column header
	DescriptionField string `yaml:"description_field"`
	// JobZoneField is the job-zone value column header
	JobZoneField string `yaml:"job_zone_field"`
	// Standards selects which standards run the rename pass by name
	// (empty means all known standards)
	Standards []string `yaml:"standards"`
}

// OutputConfig configures where normalized tables are written
type OutputConfig struct {
	// Dir is the output directory (created if missing)
	Dir string `yaml:"dir"`
}

// GraphConfig configures optional knowledge-graph publishing
type GraphConfig struct {
	// Enabled turns on publishing after a successful run
	Enabled bool `yaml:"enabled"`
	// URL is the NATS server URL
	URL string `yaml:"url"`
	// Subject is the stream subject entities are published on
	Subject string `yaml:"subject"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	// DebounceDelay is how long to wait after the last file event
	// before re-running the pipeline
	DebounceDelay time.Duration `yaml:"debounce_delay"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Dir:      "./data",
			Patterns: []string{"**/*.tsv"},
		},
		Datasets: DatasetsConfig{
			Occupations:      "occupations.tsv",
			JobZones:         "job_zones.tsv",
			CodeField:        "O*NET-SOC Code",
			TitleField:       "Title",
			DescriptionField: "Description",
			JobZoneField:     "Job Zone",
		},
		Output: OutputConfig{
			Dir: "./out",
		},
		Graph: GraphConfig{
			Enabled: false,
			URL:     "nats://localhost:4222",
			Subject: "graph.ingest.entity",
		},
		Watch: WatchConfig{
			DebounceDelay: 2 * time.Second,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Source.Dir == "" {
		return fmt.Errorf("source.dir is required")
	}
	if len(c.Source.Patterns) == 0 {
		return fmt.Errorf("source.patterns must not be empty")
	}
	if c.Datasets.Occupations == "" {
		return fmt.Errorf("datasets.occupations is required")
	}
	if c.Datasets.CodeField == "" || c.Datasets.TitleField == "" {
		return fmt.Errorf("datasets.code_field and datasets.title_field are required")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	if c.Graph.Enabled && c.Graph.URL == "" {
		return fmt.Errorf("graph.url is required when graph.enabled is set")
	}
	if c.Watch.DebounceDelay <= 0 {
		return fmt.Errorf("watch.debounce_delay must be positive")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
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

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Source
	if other.Source.Dir != "" {
		c.Source.Dir = other.Source.Dir
	}
	if len(other.Source.Patterns) > 0 {
		c.Source.Patterns = other.Source.Patterns
	}

	// Datasets
	if other.Datasets.Occupations != "" {
		c.Datasets.Occupations = other.Datasets.Occupations
	}
	if other.Datasets.JobZones != "" {
		c.Datasets.JobZones = other.Datasets.JobZones
	}
	if other.Datasets.CodeField != "" {
		c.Datasets.CodeField = other.Datasets.CodeField
	}
	if other.Datasets.TitleField != "" {
		c.Datasets.TitleField = other.Datasets.TitleField
	}
	if other.Datasets.DescriptionField != "" {
		c.Datasets.DescriptionField = other.Datasets.DescriptionField
	}
	if other.Datasets.JobZoneField != "" {
		c.Datasets.JobZoneField = other.Datasets.JobZoneField
	}
	if len(other.Datasets.Standards) > 0 {
		c.Datasets.Standards = other.Datasets.Standards
	}

	// Output
	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}

	// Graph
	if other.Graph.Enabled {
		c.Graph.Enabled = true
	}
	if other.Graph.URL != "" {
		c.Graph.URL = other.Graph.URL
	}
	if other.Graph.Subject != "" {
		c.Graph.Subject = other.Graph.Subject
	}

	// Watch
	if other.Watch.DebounceDelay != 0 {
		c.Watch.DebounceDelay = other.Watch.DebounceDelay
	}
}
