// Package config はYAML設定ファイルの読み込みを担います。
// すべての項目に既定値があり、部分的な設定でも有効です。
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"contagion/simulation"
)

type Config struct {
	Addr string `yaml:"addr"`
	Port string `yaml:"port"`
	// Seed が0のときは起動時刻から導出する
	Seed       uint64            `yaml:"seed"`
	Simulation simulation.Params `yaml:"simulation"`
}

func Default() Config {
	return Config{
		Addr:       "localhost",
		Port:       "8080",
		Simulation: simulation.DefaultParams(),
	}
}

// Load は path の設定を既定値の上に重ねて読み込みます。
// ファイルが存在しない場合は既定値をそのまま返します。
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
