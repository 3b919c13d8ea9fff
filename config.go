package go_styledhelp

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/arran4/go-styledhelp/model"
	"github.com/arran4/go-styledhelp/parsers"
)

// Config holds the settings shared by every command. It is loaded from
// flags, STYLEDHELP_* environment variables and an optional .styledhelp.yaml.
type Config struct {
	Directive   string   `mapstructure:"directive"`
	ArgKey      string   `mapstructure:"arg-key"`
	HelpKey     string   `mapstructure:"help-key"`
	LongHelpKey string   `mapstructure:"long-help-key"`
	StyleKey    string   `mapstructure:"style-key"`
	StyleName   string   `mapstructure:"style-name"`
	All         bool     `mapstructure:"all"`
	Recursive   bool     `mapstructure:"recursive"`
	Exclude     []string `mapstructure:"exclude"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Directive:   parsers.DefaultDirective,
		ArgKey:      model.DefaultTagKeys.Arg,
		HelpKey:     model.DefaultTagKeys.Help,
		LongHelpKey: model.DefaultTagKeys.LongHelp,
		StyleKey:    model.DefaultTagKeys.Style,
		StyleName:   model.DefaultTagKeys.StyleName,
		Recursive:   true,
	}
}

// SetDefaults registers the built-in settings on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("directive", d.Directive)
	v.SetDefault("arg-key", d.ArgKey)
	v.SetDefault("help-key", d.HelpKey)
	v.SetDefault("long-help-key", d.LongHelpKey)
	v.SetDefault("style-key", d.StyleKey)
	v.SetDefault("style-name", d.StyleName)
	v.SetDefault("all", d.All)
	v.SetDefault("recursive", d.Recursive)
	v.SetDefault("exclude", []string{})
}

// LoadConfig decodes v into a Config and validates it.
func LoadConfig(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the tag keys are usable and distinct.
func (c *Config) Validate() error {
	if !c.All && c.Directive == "" {
		return fmt.Errorf("directive must be set unless all is enabled")
	}
	seen := map[string]string{}
	for name, key := range map[string]string{
		"arg-key":       c.ArgKey,
		"help-key":      c.HelpKey,
		"long-help-key": c.LongHelpKey,
		"style-key":     c.StyleKey,
	} {
		if key == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
		if other, ok := seen[key]; ok {
			return fmt.Errorf("%s and %s both use the tag key %q", name, other, key)
		}
		seen[key] = name
	}
	return nil
}

// Keys returns the configured struct tag keys.
func (c *Config) Keys() model.TagKeys {
	return model.TagKeys{
		Arg:       c.ArgKey,
		Help:      c.HelpKey,
		LongHelp:  c.LongHelpKey,
		Style:     c.StyleKey,
		StyleName: c.StyleName,
	}
}

// ParseOptions converts the configuration into parser options restricted to
// paths, which are relative to the directory being processed.
func (c *Config) ParseOptions(paths []string) *parsers.ParseOptions {
	return &parsers.ParseOptions{
		SearchPaths: paths,
		Recursive:   c.Recursive,
		Exclude:     c.Exclude,
		Directive:   c.Directive,
		All:         c.All,
		Keys:        c.Keys(),
	}
}
