// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperlist/pkg/types"
)

// RunFile is the on-disk YAML record of a fetch run. A saved run keeps the
// query, the effective configuration, and the extracted records, so a run
// can be inspected or re-used without re-querying PubMed.
type RunFile struct {
	Query   string              `yaml:"query"`
	Config  RunFileConfig       `yaml:"config"`
	Records []types.PaperRecord `yaml:"records"`
	Summary RunSummary          `yaml:"summary"`
}

// RunFileConfig stores the settings that produced the records.
type RunFileConfig struct {
	MaxResults int    `yaml:"max_results"`
	OutputPath string `yaml:"output_path"`
}

// RunSummary stores result statistics and a timestamp.
type RunSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteRunFile saves the query, config, and records to a YAML file.
func WriteRunFile(path, query string, cfg types.PubMedConfig, outputPath string, records []types.PaperRecord) error {
	rf := RunFile{
		Query: query,
		Config: RunFileConfig{
			MaxResults: cfg.MaxResults,
			OutputPath: outputPath,
		},
		Records: records,
		Summary: RunSummary{
			Total:     len(records),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadRunFile loads a previously saved run file from disk.
func ReadRunFile(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	var rf RunFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing run file: %w", err)
	}
	return &rf, nil
}
