// Package config loads the editor configuration from YAML files and GOVI_
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ionut-t/govi/core"
	"github.com/ionut-t/govi/internal/log"
)

// ClipboardProvider selects where the default register is mirrored.
type ClipboardProvider string

const (
	ClipboardSystem ClipboardProvider = "system"
	ClipboardMemory ClipboardProvider = "memory"
)

// ColorMode is "auto" to detect the terminal, or "none" for plain text.
type ColorMode string

const (
	ColorAuto ColorMode = "auto"
	ColorNone ColorMode = "none"
)

type Config struct {
	Editor    EditorConfig    `mapstructure:"editor" yaml:"editor"`
	UI        UIConfig        `mapstructure:"ui" yaml:"ui"`
	Clipboard ClipboardConfig `mapstructure:"clipboard" yaml:"clipboard"`
}

type EditorConfig struct {
	ContextMark   string `mapstructure:"context_mark" yaml:"context_mark"` // single character
	MaxMacroDepth int    `mapstructure:"max_macro_depth" yaml:"max_macro_depth"`
	MaxCount      int    `mapstructure:"max_count" yaml:"max_count"`
	ShiftWidth    int    `mapstructure:"shift_width" yaml:"shift_width"`
	ExpandTab     bool   `mapstructure:"expand_tab" yaml:"expand_tab"`
}

type UIConfig struct {
	LineNumbers     bool      `mapstructure:"line_numbers" yaml:"line_numbers"`
	RelativeNumbers bool      `mapstructure:"relative_numbers" yaml:"relative_numbers"`
	Theme           string    `mapstructure:"theme" yaml:"theme"`       // chroma style name
	Language        string    `mapstructure:"language" yaml:"language"` // chroma lexer override
	Color           ColorMode `mapstructure:"color" yaml:"color"`
}

type ClipboardConfig struct {
	Provider ClipboardProvider `mapstructure:"provider" yaml:"provider"`
}

func Defaults() Config {
	editor := core.DefaultConfig()
	return Config{
		Editor: EditorConfig{
			ContextMark:   string(editor.ContextMark),
			MaxMacroDepth: editor.MaxMacroDepth,
			MaxCount:      editor.MaxCount,
			ShiftWidth:    4,
			ExpandTab:     true,
		},
		UI: UIConfig{
			LineNumbers: true,
			Theme:       "catppuccin-mocha",
			Color:       ColorAuto,
		},
		Clipboard: ClipboardConfig{
			Provider: ClipboardSystem,
		},
	}
}

// SetDefaults registers every default with v so that environment variables
// and flags can override keys missing from the file.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("editor.context_mark", d.Editor.ContextMark)
	v.SetDefault("editor.max_macro_depth", d.Editor.MaxMacroDepth)
	v.SetDefault("editor.max_count", d.Editor.MaxCount)
	v.SetDefault("editor.shift_width", d.Editor.ShiftWidth)
	v.SetDefault("editor.expand_tab", d.Editor.ExpandTab)
	v.SetDefault("ui.line_numbers", d.UI.LineNumbers)
	v.SetDefault("ui.relative_numbers", d.UI.RelativeNumbers)
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("ui.language", d.UI.Language)
	v.SetDefault("ui.color", string(d.UI.Color))
	v.SetDefault("clipboard.provider", string(d.Clipboard.Provider))
}

// DefaultPath is ~/.config/govi/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".govi", "config.yaml")
	}
	return filepath.Join(home, ".config", "govi", "config.yaml")
}

// Load reads path, or the default location when path is empty. A missing
// default file is not an error.
func Load(path string) (Config, error) {
	return LoadWith(viper.New(), path)
}

// LoadWith is Load on a caller supplied viper, typically one with command
// line flags already bound.
func LoadWith(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("GOVI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			log.ErrorErr(log.CatConfig, "read config", err, "path", path)
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		log.Debug(log.CatConfig, "no config file, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(normaliseEnumHook())); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	log.Info(log.CatConfig, "config loaded", "file", v.ConfigFileUsed())
	return cfg, nil
}

// normaliseEnumHook lower-cases and trims values decoded into the string
// enums, so "System " reads as "system".
func normaliseEnumHook() mapstructure.DecodeHookFuncType {
	providerType := reflect.TypeOf(ClipboardProvider(""))
	colorType := reflect.TypeOf(ColorMode(""))

	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || (to != providerType && to != colorType) {
			return data, nil
		}
		return strings.ToLower(strings.TrimSpace(reflect.ValueOf(data).String())), nil
	}
}

var (
	ErrInvalidContextMark = errors.New("editor.context_mark must be a single character")
	ErrInvalidLimit       = errors.New("limit must be positive")
	ErrInvalidProvider    = errors.New("unknown clipboard provider")
	ErrInvalidColor       = errors.New("unknown color mode")
)

func (c Config) Validate() error {
	if utf8.RuneCountInString(c.Editor.ContextMark) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidContextMark, c.Editor.ContextMark)
	}
	if c.Editor.MaxMacroDepth <= 0 {
		return fmt.Errorf("editor.max_macro_depth: %w", ErrInvalidLimit)
	}
	if c.Editor.MaxCount <= 0 {
		return fmt.Errorf("editor.max_count: %w", ErrInvalidLimit)
	}
	if c.Editor.ShiftWidth <= 0 {
		return fmt.Errorf("editor.shift_width: %w", ErrInvalidLimit)
	}
	switch c.Clipboard.Provider {
	case ClipboardSystem, ClipboardMemory:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidProvider, c.Clipboard.Provider)
	}
	switch c.UI.Color {
	case ColorAuto, ColorNone:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColor, c.UI.Color)
	}
	return nil
}

// CoreConfig is the part of the configuration the interpreter reads.
func (c Config) CoreConfig() core.Config {
	mark, _ := utf8.DecodeRuneInString(c.Editor.ContextMark)
	return core.Config{
		ContextMark:   mark,
		MaxMacroDepth: c.Editor.MaxMacroDepth,
		MaxCount:      c.Editor.MaxCount,
	}
}

const defaultHeader = `# govi configuration
# Every key can be overridden with a GOVI_ environment variable,
# e.g. GOVI_EDITOR_SHIFT_WIDTH=2 or GOVI_CLIPBOARD_PROVIDER=memory.
`

// WriteDefault writes the default configuration to path, creating its
// directory.
func WriteDefault(path string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(defaultHeader), data...), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", path)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", path)
	return nil
}
