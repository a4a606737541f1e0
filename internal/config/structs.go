package config

// Config represents the complete configuration for the langid application.
// It includes settings for all commands (text, batch, serve) and supports
// loading from configuration files, environment variables, and command-line flags.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Pipeline configuration
	Pipeline PipelineConfig `mapstructure:"pipeline" yaml:"pipeline" json:"pipeline"`

	// Output configuration
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Server configuration (for serve command)
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`

	// Batch processing configuration
	Batch BatchConfig `mapstructure:"batch" yaml:"batch" json:"batch"`
}

// PipelineConfig contains detection pipeline settings.
type PipelineConfig struct {
	// Per-method vote weights, overriding the built-in defaults
	Weights map[string]float64 `mapstructure:"weights" yaml:"weights" json:"weights"`

	// Optional YAML file with a weights table, applied before Weights
	WeightsFile string `mapstructure:"weights_file" yaml:"weights_file" json:"weights_file"`

	// Text cleaning applied before detection
	Cleaning CleaningConfig `mapstructure:"cleaning" yaml:"cleaning" json:"cleaning"`

	// Restrict detection to the named methods (empty = all)
	Methods []string `mapstructure:"methods" yaml:"methods" json:"methods"`

	// Optional ONNX classifier
	Model ModelConfig `mapstructure:"model" yaml:"model" json:"model"`

	// Worker count for batch detection
	Workers int `mapstructure:"workers" yaml:"workers" json:"workers"`
}

// CleaningConfig contains text normalization settings.
type CleaningConfig struct {
	Advanced           bool `mapstructure:"advanced" yaml:"advanced" json:"advanced"`
	RemovePunctuation  bool `mapstructure:"remove_punctuation" yaml:"remove_punctuation" json:"remove_punctuation"`
	RemoveNumbers      bool `mapstructure:"remove_numbers" yaml:"remove_numbers" json:"remove_numbers"`
	RemoveSpecialChars bool `mapstructure:"remove_special_chars" yaml:"remove_special_chars" json:"remove_special_chars"`
}

// ModelConfig contains ONNX classifier settings.
type ModelConfig struct {
	Enabled     bool   `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	Path        string `mapstructure:"path" yaml:"path" json:"path"`
	LabelsPath  string `mapstructure:"labels_path" yaml:"labels_path" json:"labels_path"`
	LibraryPath string `mapstructure:"library_path" yaml:"library_path" json:"library_path"`
	FeatureDim  int    `mapstructure:"feature_dim" yaml:"feature_dim" json:"feature_dim"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Format              string `mapstructure:"format" yaml:"format" json:"format"`
	File                string `mapstructure:"file" yaml:"file" json:"file"`
	ConfidencePrecision int    `mapstructure:"confidence_precision" yaml:"confidence_precision" json:"confidence_precision"`
	ShowSignals         bool   `mapstructure:"show_signals" yaml:"show_signals" json:"show_signals"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string `mapstructure:"host" yaml:"host" json:"host"`
	Port            int    `mapstructure:"port" yaml:"port" json:"port"`
	CORSOrigin      string `mapstructure:"cors_origin" yaml:"cors_origin" json:"cors_origin"`
	MaxBodyKB       int64  `mapstructure:"max_body_kb" yaml:"max_body_kb" json:"max_body_kb"`
	TimeoutSec      int    `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

// BatchConfig contains batch processing settings.
type BatchConfig struct {
	Workers         int    `mapstructure:"workers" yaml:"workers" json:"workers"`
	OutputDir       string `mapstructure:"output_dir" yaml:"output_dir" json:"output_dir"`
	ContinueOnError bool   `mapstructure:"continue_on_error" yaml:"continue_on_error" json:"continue_on_error"`
}
