package service

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// RunManifest records what a generation run produced. It is written as YAML
// when a manifest path is configured.
type RunManifest struct {
	RunID       string         `yaml:"run_id"`
	SourceDir   string         `yaml:"source_dir"`
	TestDir     string         `yaml:"test_dir"`
	StartedAt   time.Time      `yaml:"started_at"`
	CompletedAt time.Time      `yaml:"completed_at"`
	Files       []ManifestFile `yaml:"files"`
}

// ManifestFile describes one generated test file.
type ManifestFile struct {
	Source  string   `yaml:"source"`
	Output  string   `yaml:"output"`
	Classes []string `yaml:"classes"`
	Methods int      `yaml:"methods"`
}

// WriteManifest serializes the manifest to the given path.
func WriteManifest(path string, manifest RunManifest) error {
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
