package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a supported config file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// configBaseName is the file name (without extension) searched for.
const configBaseName = "invaders"

// ParseFormat converts a CLI value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("config: unsupported format %q (want yaml or toml)", s)
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// FormatForPath picks a format from the file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("config: unsupported extension %q", ext)
	}
}

// Decode parses data over cfg, so keys missing from the file keep their current values.
func Decode(data []byte, format Format, cfg *InvadersConfig) error {
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("yaml unmarshal: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("toml decode: %w", err)
		}
	default:
		return fmt.Errorf("config: unsupported format %q", format)
	}
	return nil
}

// Encode writes cfg in the given format.
func Encode(w io.Writer, cfg InvadersConfig, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("toml encode: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("config: unsupported format %q", format)
	}
}

// WriteDefaults writes the built-in rules as a starter config file. YAML is
// the embedded file verbatim, comments included.
func WriteDefaults(w io.Writer, format Format) error {
	if format == FormatYAML {
		_, err := w.Write(DefaultYAML())
		return err
	}
	return Encode(w, DefaultInvadersConfig(), format)
}

// LoadFile reads and validates a single config file on top of the defaults.
func LoadFile(path string) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()

	format, err := FormatForPath(path)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Decode(data, format, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Load loads the game configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.{yaml,yml,toml} ->
// ./configs/invaders.{yaml,yml,toml} -> embedded default.
// Only an explicit customPath can produce an error; broken files found on
// the search path are skipped.
func Load(customPath string) (InvadersConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, dir := range searchDirs() {
		for _, ext := range FormatExtensions() {
			path := filepath.Join(dir, configBaseName+ext)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if cfg, err := LoadFile(path); err == nil {
				return cfg, nil
			}
		}
	}

	cfg := DefaultInvadersConfig()
	if err := Decode(defaultInvadersYAML, FormatYAML, &cfg); err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// searchDirs lists the directories Load looks in, most specific first.
func searchDirs() []string {
	var dirs []string
	if dir := UserConfigDir(); dir != "" {
		dirs = append(dirs, dir)
	}
	return append(dirs, "configs")
}

// UserConfigDir returns ~/.invaders/configs, or empty if home is unavailable.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs")
}
