// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads coderef settings from flags, environment variables
// and an optional YAML file through viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/petar-djukic/go-coderef/pkg/types"
)

// ErrInvalidSetting is returned when a setting holds an unusable value.
var ErrInvalidSetting = errors.New("invalid setting")

const (
	// RefTypeAsk is the default reference type setting. Any value that is not
	// a valid reference type makes coderef prompt for one.
	RefTypeAsk = "Ask"

	// legacyFilename is the reference type written by releases that had no
	// line/no-line distinction.
	legacyFilename = "Filename"

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "pretty"

	configName = ".coderef"
	envPrefix  = "CODEREF"
)

// Settings is the per-invocation configuration.
type Settings struct {
	IncludeRelativePath bool            `mapstructure:"includeRelativePath"`    // Show the path, not just the file name
	LinkSource          bool            `mapstructure:"linkSource"`             // Append a link to the hosted file
	CursorRefType       string          `mapstructure:"cursorReferenceType"`    // Reference type for cursor references
	SelectionRefType    string          `mapstructure:"selectionReferenceType"` // Reference type for selections
	UseGitRoot          bool            `mapstructure:"useGitRoot"`             // Root paths at the repository, not the workspace
	AzureLineHighlight  bool            `mapstructure:"azureLineHighlight"`     // Add column and style parameters to Azure links
	Logging             LoggingSettings `mapstructure:"logging"`
}

// LoggingSettings configures the logger.
type LoggingSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "pretty" or "json"
}

// SetDefaults registers the default value of every setting on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("includeRelativePath", true)
	v.SetDefault("linkSource", true)
	v.SetDefault("cursorReferenceType", RefTypeAsk)
	v.SetDefault("selectionReferenceType", RefTypeAsk)
	v.SetDefault("useGitRoot", true)
	v.SetDefault("azureLineHighlight", false)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}

// Load reads settings into a Settings value. configFile overrides the search
// for .coderef.yaml in the working directory and the home directory; a
// missing default file is not an error.
func Load(v *viper.Viper, configFile string) (Settings, error) {
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
			v.AddConfigPath(filepath.Join(home, ".config", "coderef"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding config: %w", err)
	}

	s.CursorRefType = UpgradeLegacyRefType(s.CursorRefType)
	s.SelectionRefType = UpgradeLegacyRefType(s.SelectionRefType)

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks settings that have a closed set of values. Reference types
// are not checked here: an unrecognized value means "ask".
func (s Settings) Validate() error {
	switch s.Logging.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("%w: logging.format %q (want pretty or json)", ErrInvalidSetting, s.Logging.Format)
	}
	return nil
}

// UpgradeLegacyRefType maps the pre-1.2 "Filename" reference type to
// "Filename (with line)" and returns every other value unchanged.
func UpgradeLegacyRefType(value string) string {
	if value == legacyFilename {
		return string(types.FilenameWithLine)
	}
	return value
}
