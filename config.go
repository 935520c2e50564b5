package textfmt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ConfigFormat is the file format of a [Config].
type ConfigFormat string

const (
	ConfigYAML ConfigFormat = "yaml"
	ConfigTOML ConfigFormat = "toml"
)

// Config is the file form of a set of facets. Empty fields keep the
// defaults.
type Config struct {
	Charset      string `yaml:"charset" toml:"charset"`
	InputCharset string `yaml:"input_charset" toml:"input_charset"`
	Width        string `yaml:"width" toml:"width"`
	Surrogates   string `yaml:"surrogates" toml:"surrogates"`
	Fill         string `yaml:"fill" toml:"fill"`
	Align        string `yaml:"align" toml:"align"`
	LogInvalid   bool   `yaml:"log_invalid" toml:"log_invalid"`
}

type unmarshal func([]byte, any) error

// LoadConfig reads a Config in the given format from r.
func LoadConfig(r io.Reader, format ConfigFormat) (*Config, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	switch format {
	case ConfigYAML:
		return parseConfig(yaml.Unmarshal, body)
	case ConfigTOML:
		return parseConfig(toml.Unmarshal, body)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, format)
	}
}

// LoadConfigFile reads a Config from path. The format follows the file
// extension: .yaml, .yml or .toml.
func LoadConfigFile(path string) (*Config, error) {
	var format ConfigFormat
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		format = ConfigYAML
	case ".toml":
		format = ConfigTOML
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f, format)
}

func parseConfig(un unmarshal, body []byte) (*Config, error) {
	cfg := Config{}
	if err := un(body, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// widthCalculators maps the names accepted by Config.Width.
var widthCalculators = map[string]WidthCalculator{
	"fast":            FastWidth,
	"fast-codepoints": FastCodepointWidth,
	"codepoints":      CodepointWidth,
	"runewidth":       WidthByFunc(RuneWidth),
	"east-asian":      WidthByFunc(EastAsianWidth),
}

var alignments = map[string]Alignment{
	"left":   AlignLeft,
	"center": AlignCenter,
	"right":  AlignRight,
}

// Facets converts the configuration. Unknown names wrap ErrInvalidConfig.
func (c *Config) Facets() (Facets, error) {
	var facets []Facet
	out := UTF8
	if c.Charset != "" {
		cs, err := ParseEncoding(c.Charset)
		if err != nil {
			return Facets{}, fmt.Errorf("%w: charset: %w", ErrInvalidConfig, err)
		}
		out = cs
		facets = append(facets, OutputCharset(cs))
	}
	in := UTF8
	if c.InputCharset != "" {
		cs, err := ParseEncoding(c.InputCharset)
		if err != nil {
			return Facets{}, fmt.Errorf("%w: input_charset: %w", ErrInvalidConfig, err)
		}
		in = cs
		facets = append(facets, InputCharset(cs))
	}
	if c.Width != "" {
		wc, ok := widthCalculators[strings.ToLower(c.Width)]
		if !ok {
			return Facets{}, fmt.Errorf("%w: width %q", ErrInvalidConfig, c.Width)
		}
		facets = append(facets, UseWidth(wc))
	}
	switch strings.ToLower(c.Surrogates) {
	case "", "strict":
	case "lax":
		facets = append(facets, Surrogates(SurrogateLax))
	default:
		return Facets{}, fmt.Errorf("%w: surrogates %q", ErrInvalidConfig, c.Surrogates)
	}
	if c.Fill != "" {
		r, n := utf8.DecodeRuneInString(c.Fill)
		if (r == utf8.RuneError && n <= 1) || n != len(c.Fill) {
			return Facets{}, fmt.Errorf("%w: fill must be one character, got %q", ErrInvalidConfig, c.Fill)
		}
		facets = append(facets, FillChar(r))
	}
	if c.Align != "" {
		a, ok := alignments[strings.ToLower(c.Align)]
		if !ok {
			return Facets{}, fmt.Errorf("%w: align %q", ErrInvalidConfig, c.Align)
		}
		facets = append(facets, DefaultAlign(a))
	}
	if c.LogInvalid {
		facets = append(facets, NotifyInvalid(LogNotifier(in)))
	}
	Logger().Debug("config resolved",
		zap.String("charset", out.Name()),
		zap.String("input_charset", in.Name()),
		zap.Int("facets", len(facets)))
	return Pack(facets...), nil
}
