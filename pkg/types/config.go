// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration types shared across stages.
package types

// AIConfig holds shared settings for components that call a Generative AI API.
type AIConfig struct {
	// Model is the chat model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the API endpoint for OpenAI-compatible gateways.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// InterviewConfig holds settings for the interview stage.
type InterviewConfig struct {
	AIConfig `yaml:",inline"`

	// Rounds is the number of probing "why" rounds after the opening
	// question (default 5).
	Rounds int `json:"rounds" yaml:"rounds"`

	// ScriptPath is an optional interview script file overriding the
	// built-in prompts.
	ScriptPath string `json:"script_path,omitempty" yaml:"script_path,omitempty"`
}

// GenerationConfig holds settings for the document generation stage.
type GenerationConfig struct {
	AIConfig `yaml:",inline"`

	// OutputPath is the file the generated document is written to
	// (default "PRD.md").
	OutputPath string `json:"output_path" yaml:"output_path"`

	// HTML controls whether an HTML rendering is written next to the
	// Markdown output.
	HTML bool `json:"html" yaml:"html"`
}

// ArchiveConfig holds settings for the document archive.
type ArchiveConfig struct {
	// ArchiveDir is the base directory for the archive (contains index/).
	ArchiveDir string `json:"archive_dir" yaml:"archive_dir"`

	// MaxResults is the default maximum number of listed records (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// AgentConfig groups all stage configurations for the CLI.
type AgentConfig struct {
	Interview  InterviewConfig  `json:"interview" yaml:"interview"`
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	Archive    ArchiveConfig    `json:"archive" yaml:"archive"`
}
