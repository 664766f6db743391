package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mbourmaud/nob/internal/logger"
	"github.com/mbourmaud/nob/internal/shell"
)

// FileName is the config file looked up in the working directory
const FileName = "nob.yaml"

// DefaultRecipe is built when no recipe name is given
const DefaultRecipe = "default"

// Config represents the nob configuration
type Config struct {
	Log     LogConfig         `yaml:"log"`
	Recipes map[string]Recipe `yaml:"recipes,omitempty"`
}

// LogConfig contains logger settings
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// Recipe is an ordered list of steps
type Recipe []Step

// Step is one command of a recipe. Either Program (with Flags) or Command
// is set; Command is split into words without invoking a shell.
type Step struct {
	Name    string   `yaml:"name,omitempty"`
	Program string   `yaml:"program,omitempty"`
	Flags   []string `yaml:"flags,omitempty"`
	Command string   `yaml:"command,omitempty"`
	Check   bool     `yaml:"check,omitempty"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: logger.LevelInfo.String(),
		},
		Recipes: map[string]Recipe{},
	}
}

// Load reads and parses a nob.yaml file
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path, or returns defaults when the file does not exist.
// A file that exists but cannot be parsed is an error.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the config to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoggerOptions converts the log section into logger options
func (c *Config) LoggerOptions() (logger.Options, error) {
	level, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		return logger.Options{}, fmt.Errorf("log.level: %w", err)
	}
	return logger.Options{MinLevel: level, FilePath: c.Log.File}, nil
}

// RecipeNames returns the recipe names in sorted order
func (c *Config) RecipeNames() []string {
	names := make([]string, 0, len(c.Recipes))
	for name := range c.Recipes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Recipe returns the named recipe
func (c *Config) Recipe(name string) (Recipe, error) {
	recipe, ok := c.Recipes[name]
	if !ok {
		return nil, fmt.Errorf("recipe %q not found in %s", name, FileName)
	}
	return recipe, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := c.LoggerOptions(); err != nil {
		return err
	}

	for _, name := range c.RecipeNames() {
		if len(c.Recipes[name]) == 0 {
			return fmt.Errorf("recipes.%s has no steps", name)
		}
		for i, step := range c.Recipes[name] {
			if err := step.Validate(); err != nil {
				return fmt.Errorf("recipes.%s[%d]: %w", name, i, err)
			}
		}
	}

	return nil
}

// Validate checks that exactly one of program and command is set
func (s Step) Validate() error {
	switch {
	case s.Program == "" && s.Command == "":
		return fmt.Errorf("one of program or command is required")
	case s.Program != "" && s.Command != "":
		return fmt.Errorf("program and command are mutually exclusive")
	case s.Command != "" && len(s.Flags) > 0:
		return fmt.Errorf("flags are only allowed with program")
	}
	if s.Command != "" {
		if _, err := shell.FromCommandLine(s.Command); err != nil {
			return err
		}
	}
	return nil
}

// Invocation builds the shell invocation for the step
func (s Step) Invocation() (*shell.Invocation, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Command != "" {
		return shell.FromCommandLine(s.Command)
	}
	return shell.New(s.Program).AddFlags(s.Flags...), nil
}

// Title returns the step name, or its command line when unnamed
func (s Step) Title() string {
	if s.Name != "" {
		return s.Name
	}
	inv, err := s.Invocation()
	if err != nil {
		return s.Program + s.Command
	}
	return inv.String()
}
