// Package config manages dci-tools settings using Viper.
//
// Settings come from the environment only; these tools are CI glue and
// deliberately have no configuration file of their own. Environment
// variables use the prefix DCI_, for example DCI_LINTER_BINARY.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the tool settings.
type Config struct {
	Linter LinterConfig `mapstructure:"linter"`
	Build  BuildConfig  `mapstructure:"build"`
}

// LinterConfig represents settings for the external style checker.
type LinterConfig struct {
	Binary string `mapstructure:"binary"`
}

// BuildConfig represents conventions of the surrounding build system.
type BuildConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load reads settings from the environment, applying defaults for
// anything unset. Recognized variables:
//
//	DCI_LINTER_BINARY  external style-check binary (default "dscanner")
//	DCI_BUILD_DIR      build directory name under the source root (default "build")
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("linter.binary", "dscanner")
	v.SetDefault("build.dir", "build")

	v.SetEnvPrefix("DCI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return LoadWithViper(v)
}

// LoadWithViper loads settings from a provided Viper instance.
// This is useful for testing or when you want to configure Viper differently.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
