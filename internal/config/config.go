// SPDX-License-Identifier: EPL-2.0

// Package config loads render settings from defaults, an optional YAML file,
// SPECVIS_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ik5/specvis"
	"github.com/ik5/specvis/colormap"
	"github.com/ik5/specvis/render"
	"github.com/ik5/specvis/stft"
	"github.com/ik5/specvis/window"
)

// Defaults.
const (
	DefaultImageWidth  = 2048
	DefaultImageHeight = 512
	DefaultImageSize   = "2048x512"

	EnvPrefix = "SPECVIS"
	FileName  = "specvis"
)

// Config is the effective configuration of one run.
type Config struct {
	FFTSize    int    `mapstructure:"fft_size" yaml:"fft_size"`
	HopLength  int    `mapstructure:"hop_length" yaml:"hop_length"`
	WindowSize int    `mapstructure:"window_size" yaml:"window_size"`
	Window     string `mapstructure:"window" yaml:"window"`

	ImageSize    string  `mapstructure:"image_size" yaml:"image_size"`
	ColorScheme  string  `mapstructure:"color_scheme" yaml:"color_scheme"`
	DynamicRange float64 `mapstructure:"dynamic_range" yaml:"dynamic_range"`
	OutputFormat string  `mapstructure:"output_format" yaml:"output_format"`
	Output       string  `mapstructure:"output" yaml:"output"`

	Channel    string `mapstructure:"channel" yaml:"channel"`
	FFTBackend string `mapstructure:"fft_backend" yaml:"fft_backend"`
	Workers    int    `mapstructure:"workers" yaml:"workers"`

	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("fft_size", stft.DefaultFFTSize)
	v.SetDefault("hop_length", stft.DefaultHopLength)
	v.SetDefault("window_size", 0)
	v.SetDefault("window", window.TypeHann.String())
	v.SetDefault("image_size", DefaultImageSize)
	v.SetDefault("color_scheme", colormap.DefaultScheme.String())
	v.SetDefault("dynamic_range", render.DefaultDynamicRange)
	v.SetDefault("output_format", render.FormatPNG.String())
	v.SetDefault("output", "")
	v.SetDefault("channel", specvis.ChannelFirst.String())
	v.SetDefault("fft_backend", stft.BackendGonum.String())
	v.SetDefault("workers", 1)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
}

// NewViper returns a viper instance with defaults and environment binding.
// configFile, when set, must exist; otherwise specvis.yaml is looked up in
// the working directory and $HOME/.config/specvis and may be absent.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
		return v, nil
	}

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", FileName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every enumerated setting and the STFT geometry. The image
// size is not validated: malformed sizes fall back to the defaults.
func (c *Config) Validate() error {
	if _, err := c.CalcParams(); err != nil {
		return err
	}
	if _, err := c.Scheme(); err != nil {
		return err
	}
	if _, err := c.Format(); err != nil {
		return err
	}
	if _, err := c.Backend(); err != nil {
		return err
	}
	if _, err := c.ChannelMode(); err != nil {
		return err
	}
	if c.DynamicRange < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDynamicRange, c.DynamicRange)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	return nil
}

// CalcParams builds the STFT parameters. A window size of 0 means the FFT
// size.
func (c *Config) CalcParams() (stft.CalcParams, error) {
	wt, err := window.ParseType(c.Window)
	if err != nil {
		return stft.CalcParams{}, fmt.Errorf("config: %w", err)
	}

	p := stft.CalcParams{
		NFFT:       c.FFTSize,
		HopLength:  c.HopLength,
		WindowSize: c.WindowSize,
		Window:     wt,
	}
	if p.WindowSize == 0 {
		p.WindowSize = p.NFFT
	}
	if err := p.Validate(); err != nil {
		return stft.CalcParams{}, fmt.Errorf("config: %w", err)
	}
	return p, nil
}

func (c *Config) Scheme() (colormap.Scheme, error) {
	s, err := colormap.ParseScheme(c.ColorScheme)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return s, nil
}

func (c *Config) Format() (render.Format, error) {
	f, err := render.ParseFormat(c.OutputFormat)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return f, nil
}

func (c *Config) Backend() (stft.Backend, error) {
	b, err := stft.ParseBackend(c.FFTBackend)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return b, nil
}

func (c *Config) ChannelMode() (specvis.ChannelMode, error) {
	m, err := specvis.ParseChannelMode(c.Channel)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return m, nil
}

// Size returns the parsed image size.
func (c *Config) Size() (width, height int) {
	return ParseImageSize(c.ImageSize)
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(out), nil
}

// ParseImageSize parses "WIDTHxHEIGHT". A component that is not a positive
// integer takes its default; input that does not split into exactly two
// parts yields the default pair.
func ParseImageSize(s string) (width, height int) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return DefaultImageWidth, DefaultImageHeight
	}
	return positiveOr(parts[0], DefaultImageWidth), positiveOr(parts[1], DefaultImageHeight)
}

func positiveOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
