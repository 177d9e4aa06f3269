package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Sample is one category to seed.
type Sample struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Active      *bool  `yaml:"active"`
}

// Config holds seeder settings.
type Config struct {
	Categories []Sample `yaml:"categories"`
	DryRun     bool     `yaml:"dry_run" env:"SEEDER_DRY_RUN"`
}

var inactive = false

// DefaultSamples is the catalog seeded when no file is given.
func DefaultSamples() []Sample {
	return []Sample{
		{Name: "Movies", Description: "Feature-length films"},
		{Name: "Series", Description: "Episodic TV shows"},
		{Name: "Documentaries", Description: "Non-fiction films and series"},
		{Name: "Sci-fi", Description: "Science fiction titles"},
		{Name: "Horror", Description: "Horror titles"},
		{Name: "Kids", Description: "Titles for children"},
		{Name: "Archive", Description: "Titles no longer promoted", Active: &inactive},
	}
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML. Without a path the default samples are used.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}
	cfg.Categories = DefaultSamples()

	return &cfg, nil
}
