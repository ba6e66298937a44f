package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paperlist/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PubMedConfig holds settings for the E-utilities clients.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the retmax value sent to esearch (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// APIKey is an optional NCBI API key sent as the api_key parameter
	// for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// ReportConfig holds settings for the report stage.
type ReportConfig struct {
	// OutputPath is the CSV file to write (default "output.csv").
	// An existing file at this path is overwritten.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// RunFilePath, when non-empty, is where a YAML record of the run
	// (query, config, extracted records) is saved.
	RunFilePath string `json:"run_file_path,omitempty" yaml:"run_file_path,omitempty"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	PubMed PubMedConfig `json:"pubmed" yaml:"pubmed"`
	Report ReportConfig `json:"report" yaml:"report"`
}
