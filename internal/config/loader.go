package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// extensions lists the accepted config file types in lookup order.
var extensions = []string{".yaml", ".yml", ".toml"}

// Load loads every game configuration.
// Search order per game: dir -> ~/.arcade/configs -> ./configs -> embedded default.
// Files override the embedded defaults key by key. Errors in files under an
// explicitly given dir are returned; broken files on the implicit paths are
// skipped.
func Load(dir string) (Bundle, error) {
	b, err := Defaults()
	if err != nil {
		return b, err
	}

	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return b, fmt.Errorf("config: %w", err)
		}
		if !info.IsDir() {
			return b, fmt.Errorf("config: %s is not a directory", dir)
		}
	}

	for _, t := range b.targets() {
		if err := loadGame(t, dir); err != nil {
			return b, err
		}
	}

	if err := b.Validate(); err != nil {
		return b, err
	}
	return b, nil
}

// loadGame overlays the first config file found for t onto its bundle section.
func loadGame(t target, dir string) error {
	if dir != "" {
		if path, ok := findFile(dir, t.id); ok {
			return t.load(path)
		}
	}

	for _, d := range implicitDirs() {
		path, ok := findFile(d, t.id)
		if !ok {
			continue
		}
		if err := t.load(path); err == nil {
			return nil
		}
	}
	return nil
}

// DecodeFile decodes a YAML or TOML file into dst, chosen by extension.
func DecodeFile(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), dst); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, dst); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config: unsupported file type %s", path)
	}
	return nil
}

// findFile returns the first existing config file for id in dir.
func findFile(dir, id string) (string, bool) {
	for _, ext := range extensions {
		path := filepath.Join(dir, id+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// implicitDirs returns the user and working-directory config locations.
func implicitDirs() []string {
	var dirs []string
	if user := userConfigDir(); user != "" {
		dirs = append(dirs, user)
	}
	return append(dirs, "configs")
}

// userConfigDir returns ~/.arcade/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs")
}
