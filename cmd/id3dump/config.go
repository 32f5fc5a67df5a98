package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/simonhull/id3tag"
)

// Config holds the resolved settings for a run.
type Config struct {
	Scope   string
	Backup  string
	Verbose bool
	Padding bool
	TOML    bool
}

// DefaultConfig returns the settings used when neither a file nor flags
// say otherwise.
func DefaultConfig() Config {
	return Config{
		Scope:   "all",
		Padding: true,
	}
}

// ParsedScope converts Scope into a tag scope.
func (c Config) ParsedScope() (id3tag.Scope, error) {
	s, ok := id3tag.ParseScope(c.Scope)
	if !ok {
		return id3tag.VNone, fmt.Errorf("invalid scope %q (want v1, v2, both or all)", c.Scope)
	}
	return s, nil
}

// FileConfig mirrors Config with optional fields so unset keys keep defaults.
type FileConfig struct {
	Scope   string `toml:"scope"`
	Backup  string `toml:"backup"`
	Verbose *bool  `toml:"verbose"`
	Padding *bool  `toml:"padding"`
	TOML    *bool  `toml:"toml"`
}

// LoadFileConfig reads and parses a TOML config file.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("%s: %w", path, err)
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.id3dump/config.toml, or "" without a home
// directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".id3dump", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies file settings into cfg unless the matching flag
// was set on the command line.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)
	s.setString("scope", fc.Scope, &cfg.Scope)
	s.setString("backup", fc.Backup, &cfg.Backup)
	s.setBool("verbose", fc.Verbose, &cfg.Verbose)
	s.setBool("padding", fc.Padding, &cfg.Padding)
	s.setBool("toml", fc.TOML, &cfg.TOML)
}

// ApplyEnvConfig applies ID3DUMP_* environment variables. Flags set on the
// command line win.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)
	s.setString("scope", os.Getenv("ID3DUMP_SCOPE"), &cfg.Scope)
	s.setString("backup", os.Getenv("ID3DUMP_BACKUP"), &cfg.Backup)

	if err := s.setBoolFromString("verbose", os.Getenv("ID3DUMP_VERBOSE"), &cfg.Verbose); err != nil {
		return err
	}
	if err := s.setBoolFromString("padding", os.Getenv("ID3DUMP_PADDING"), &cfg.Padding); err != nil {
		return err
	}
	return nil
}

type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s *configSetter) setBoolFromString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = b
	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
