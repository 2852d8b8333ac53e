package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Setting keys, shared by the config file, the environment (WORKLOG_*) and
// command line flags.
const (
	KeySplit = "split"
	KeyFile  = "file"
	KeyDebug = "debug"
)

// DefaultFile is the name of the data file inside the configuration
// directory.
const DefaultFile = "log.json"

// Settings are the user-tunable options.
type Settings struct {
	// Split makes append mode create one entry per argument instead of
	// joining them.
	Split bool
	File  string
	Debug bool
}

// NewViper returns a viper instance with worklog's defaults and environment
// binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeySplit, false)
	v.SetDefault(KeyFile, DefaultFile)
	v.SetDefault(KeyDebug, false)
	v.SetEnvPrefix("WORKLOG")
	v.AutomaticEnv()
	return v
}

// LoadSettings reads the optional config.yaml in loc and merges it with the
// environment and any flags already bound to v. A missing file is fine.
func LoadSettings(v *viper.Viper, loc Location) (Settings, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(loc.Dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("could not read settings: %w", err)
		}
	}

	s := Settings{
		Split: v.GetBool(KeySplit),
		File:  v.GetString(KeyFile),
		Debug: v.GetBool(KeyDebug),
	}
	if s.File == "" {
		s.File = DefaultFile
	}
	if filepath.Base(s.File) != s.File {
		return Settings{}, fmt.Errorf("file %q must be a plain file name", s.File)
	}
	return s, nil
}

// DataPath returns where the log lives for these settings.
func (s Settings) DataPath(loc Location) string {
	return loc.Path(s.File)
}
