package go_styledhelp

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arran4/go-styledhelp/model"
)

func TestLoadConfigDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Empty(t, cfg.Exclude)
	want := DefaultConfig()
	want.Exclude = cfg.Exclude
	assert.Equal(t, want, cfg)
	assert.Equal(t, model.DefaultTagKeys, cfg.Keys())
}

func TestLoadConfigYAML(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString(`
all: true
recursive: false
arg-key: cli
help-key: usage
exclude:
  - "gen/**"
`)))

	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	assert.True(t, cfg.All)
	assert.False(t, cfg.Recursive)
	assert.Equal(t, []string{"gen/**"}, cfg.Exclude)

	opts := cfg.ParseOptions([]string{"cmd"})
	assert.Equal(t, []string{"cmd"}, opts.SearchPaths)
	assert.Equal(t, "cli", opts.Keys.Arg)
	assert.Equal(t, "usage", opts.Keys.Help)
	assert.Equal(t, "long_help", opts.Keys.LongHelp)
	assert.True(t, opts.All)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"no directive", func(c *Config) { c.Directive = "" }, "directive must be set"},
		{"no directive with all", func(c *Config) { c.Directive = ""; c.All = true }, ""},
		{"empty key", func(c *Config) { c.StyleKey = "" }, "style-key must not be empty"},
		{"duplicate key", func(c *Config) { c.HelpKey = "long_help" }, `"long_help"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
