package models

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogConfig contains configuration for catalog generation
type CatalogConfig struct {
	// Input/Output
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`

	// Sources describe how packages found below a directory are attributed
	Sources []SourceConfig `yaml:"sources"`

	// Signing
	GPGKeyPath    string `yaml:"gpg_key"`
	GPGPassphrase string `yaml:"-"`

	// Output options
	Gzip bool `yaml:"gzip"`

	// Incremental mode
	Incremental bool `yaml:"incremental"` // Merge new packages into an existing catalog
}

// SourceConfig describes the packages of one distribution
type SourceConfig struct {
	Dir          string `yaml:"dir"`          // Directory relative to the input directory, "" for all of it
	Distribution string `yaml:"distribution"` // Distribution name, e.g. "zulu"
	BaseURL      string `yaml:"base_url"`     // Prefix for direct download URIs
	DownloadSite string `yaml:"download_site"`

	// Which version number occurrence in the filename to use, see version.ParseMatch
	VersionMatch             int `yaml:"version_match"`
	DistributionVersionMatch int `yaml:"distribution_version_match"`

	// Defaults to true when unset
	DirectlyDownloadable *bool `yaml:"directly_downloadable"`
}

// IsDirectlyDownloadable returns whether packages of the source can be downloaded without a landing page
func (s SourceConfig) IsDirectlyDownloadable() bool {
	return s.DirectlyDownloadable == nil || *s.DirectlyDownloadable
}

// LoadCatalogConfig reads a YAML catalog configuration file
func LoadCatalogConfig(path string) (*CatalogConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CatalogError{
			Type: ErrInvalidConfig,
			Err:  fmt.Errorf("failed to read config: %w", err),
		}
	}

	var config CatalogConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, &CatalogError{
			Type: ErrInvalidConfig,
			Err:  fmt.Errorf("failed to decode YAML: %w", err),
		}
	}

	return &config, nil
}
