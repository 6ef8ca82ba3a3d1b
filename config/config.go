/*
File    : wick/config/config.go
*/

// Package config loads the optional .wickrc.yaml that customizes the CLI
// and REPL (prompt, banner, color). The file may also set a history path,
// which is loaded into Config.History but not used by the REPL. Absence of
// the file is not an error: Load returns Default() unchanged.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the REPL/CLI presentation settings the host can override:
// prompt text, banner visibility, and color. History holds a history file
// path; nothing reads it.
type Config struct {
	Prompt  string `yaml:"prompt"`
	Banner  bool   `yaml:"banner"`
	Color   bool   `yaml:"color"`
	History string `yaml:"history"`
}

// Default returns the built-in settings used when no .wickrc.yaml exists
// or a loaded file leaves a field unset.
func Default() Config {
	return Config{
		Prompt:  "wick> ",
		Banner:  true,
		Color:   true,
		History: ".wick_history",
	}
}

// Load reads path (typically ".wickrc.yaml" in the working directory) and
// overlays it on Default(). A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
