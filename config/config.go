// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var (
	// RootSettingsFile is the default settings file, in the user's home directory
	RootSettingsFile = filepath.Join(home(), ".seqan", "settings.yaml")
)

// ORFConfig is settings for finding open reading frames
type ORFConfig struct {
	// codons that open an ORF
	StartCodons []string `mapstructure:"start-codons"`

	// codons that close an ORF
	StopCodons []string `mapstructure:"stop-codons"`

	// the reading frame (1, 2 or 3) used when none is passed
	Frame int `mapstructure:"frame"`
}

// RepeatConfig is settings for substring repeat counts
type RepeatConfig struct {
	// the substring length used when none is passed
	Length int `mapstructure:"length"`
}

// Config is the root-level settings struct and is a mix
// of settings available in settings.yaml and those
// available from the command line
type Config struct {
	// whether to log debug output
	Verbose bool `mapstructure:"verbose"`

	// one of debug, info, warn or error
	LogLevel string `mapstructure:"log-level"`

	// ORF settings
	ORF ORFConfig `mapstructure:"orf"`

	// repeat settings
	Repeat RepeatConfig `mapstructure:"repeat"`
}

// SetDefaults registers the default value of every setting with viper.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("settings", RootSettingsFile)
	v.SetDefault("verbose", false)
	v.SetDefault("log-level", "info")
	v.SetDefault("orf.start-codons", []string{"ATG"})
	v.SetDefault("orf.stop-codons", []string{"TAA", "TAG", "TGA"})
	v.SetDefault("orf.frame", 1)
	v.SetDefault("repeat.length", 3)
}

// New returns a new Config struct populated by
// Viper settings (either from the settings file)
// and/or command line arguments
func New() (*Config, error) {
	return Load(viper.GetViper())
}

// Load reads the settings file named by the "settings" key (a missing file
// is fine), SEQAN_ prefixed environment variables and the defaults into a
// Config.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix("seqan")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if settings := v.GetString("settings"); settings != "" {
		if _, err := os.Stat(settings); err == nil {
			v.SetConfigFile(settings)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read settings file %s: %v", settings, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode settings into struct: %v", err)
	}

	var err error
	if c.ORF.StartCodons, err = codons("orf.start-codons", c.ORF.StartCodons); err != nil {
		return nil, err
	}
	if c.ORF.StopCodons, err = codons("orf.stop-codons", c.ORF.StopCodons); err != nil {
		return nil, err
	}

	return &c, nil
}

// codons uppercases and trims each codon, failing on any that isn't
// three nucleotides long
func codons(key string, in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, c := range in {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if len(c) != 3 {
			return nil, fmt.Errorf("invalid codon %q in %s: codons are 3 nucleotides long", c, key)
		}
		out = append(out, c)
	}
	return out, nil
}

// home returns the user's home directory, or the working directory if
// there isn't one
func home() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return "."
}
