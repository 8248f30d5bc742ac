// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlmap.yaml"

type BenchConfig struct {
	Count        int   `yaml:"count"`
	RemoveFrom   int   `yaml:"remove_from"`
	RemoveTo     int   `yaml:"remove_to"`
	Seed         int64 `yaml:"seed"` // 0 picks a time based seed
	ShowProgress bool  `yaml:"show_progress"`
	BTreeDegree  int   `yaml:"btree_degree"`
}

type ShellConfig struct {
	Prompt     string `yaml:"prompt"`
	ShowValues bool   `yaml:"show_values"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

type Config struct {
	Bench BenchConfig `yaml:"bench"`
	Shell ShellConfig `yaml:"shell"`
	Log   LogConfig   `yaml:"log"`
}

var defaultConfig = Config{
	Bench: BenchConfig{
		Count:        100000,
		RemoveFrom:   5000,
		RemoveTo:     7000,
		Seed:         0,
		ShowProgress: true,
		BTreeDegree:  32,
	},
	Shell: ShellConfig{
		Prompt:     "avl> ",
		ShowValues: false,
	},
	Log: LogConfig{
		Level:  "info",
		Format: "text",
	},
}

// LoadConfig reads ~/.avlmap.yaml. A missing or unreadable file yields the
// defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}
	return loadConfigFrom(configPath)
}

// loadConfigFrom decodes path over a copy of the defaults, so a partial file
// only overrides the keys it names. Invalid YAML returns the defaults along
// with the parse error.
func loadConfigFrom(configPath string) (*Config, error) {
	cfg := defaultConfig

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fallback := defaultConfig
		return &fallback, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	cfg.normalize()

	return &cfg, nil
}

// normalize replaces values the commands cannot run with
func (c *Config) normalize() {
	if c.Bench.Count <= 0 {
		c.Bench.Count = defaultConfig.Bench.Count
	}
	if c.Bench.BTreeDegree < 2 {
		c.Bench.BTreeDegree = defaultConfig.Bench.BTreeDegree
	}
	if c.Shell.Prompt == "" {
		c.Shell.Prompt = defaultConfig.Shell.Prompt
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfig(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func displaySettings(w io.Writer) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")
		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
		created = true
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Fprintf(w, "%s⚠️  %v. Showing defaults.%s\n\n", Warning, err, Reset)
	}

	fmt.Fprintf(w, "🔧 %savlmap Configuration Settings%s\n", Info, Reset)
	fmt.Fprintf(w, "═══════════════════════════════\n\n")
	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", configPath)
	}

	fmt.Fprintf(w, "⏱  %sBenchmark:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • count: %d\n", config.Bench.Count)
	fmt.Fprintf(w, "  • remove_from: %d\n", config.Bench.RemoveFrom)
	fmt.Fprintf(w, "  • remove_to: %d\n", config.Bench.RemoveTo)
	if config.Bench.Seed == 0 {
		fmt.Fprintf(w, "  • seed: 0 (time based)\n")
	} else {
		fmt.Fprintf(w, "  • seed: %d\n", config.Bench.Seed)
	}
	fmt.Fprintf(w, "  • show_progress: %t\n", config.Bench.ShowProgress)
	fmt.Fprintf(w, "  • btree_degree: %d\n\n", config.Bench.BTreeDegree)

	fmt.Fprintf(w, "🐚 %sShell:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • prompt: %q\n", config.Shell.Prompt)
	fmt.Fprintf(w, "  • show_values: %t\n\n", config.Shell.ShowValues)

	fmt.Fprintf(w, "📜 %sLogging:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • level: %s\n", config.Log.Level)
	fmt.Fprintf(w, "  • format: %s\n\n", config.Log.Format)

	fmt.Fprintf(w, "💡 Flags passed to a command override these values for that run.\n")
	return nil
}
