// Package config loads per-run settings from an optional env-format file and
// the process environment.
package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

// Settings keys
const (
	KeyDownloadDir = "DOWNLOAD_DIR"
)

// Default values
const (
	DefaultEnvFile     = ".env"
	DefaultDownloadDir = "./downloads"
)

// Settings manages application configuration
type Settings struct {
	v *viper.Viper
}

// NewSettings creates a new settings manager backed by its own viper instance.
func NewSettings() *Settings {
	v := viper.New()
	v.SetDefault(KeyDownloadDir, DefaultDownloadDir)
	return &Settings{v: v}
}

// Load reads overrides from envFile. A missing file is not an error; the
// defaults and the process environment simply stand.
func (s *Settings) Load(envFile string) error {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	s.v.SetConfigFile(envFile)
	s.v.SetConfigType("env")
	s.v.AutomaticEnv()

	if err := s.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.v.GetString(KeyDownloadDir)
	if dir == "" {
		return DefaultDownloadDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.v.Set(KeyDownloadDir, dir)
}
