package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	"roulette_bot/internal/config"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	defaultAnimationFrames = 3
	defaultAnimationDelay  = time.Second
	defaultStatsWindowSize = 500
)

var defaultStakes = []int{10, 50, 100}

type rouletteYAML struct {
	Stakes    []int  `yaml:"stakes"`
	MaxStake  int    `yaml:"max_stake"`
	Seed      uint64 `yaml:"seed"`
	Animation struct {
		Frames *int           `yaml:"frames"`
		Delay  *time.Duration `yaml:"delay"`
	} `yaml:"animation"`
	Stats struct {
		WindowSize int `yaml:"window_size"`
	} `yaml:"stats"`
}

type rouletteConfig struct {
	stakes          []int
	maxStake        int
	animationFrames int
	animationDelay  time.Duration
	statsWindowSize int
	seed            uint64
}

type roulettePathEnv struct {
	Path string `env:"ROULETTE_CONFIG" envDefault:"config.yaml"`
}

// RouletteConfigPath Путь к YAML с настройками игры из окружения
func RouletteConfigPath() string {
	var e roulettePathEnv
	if err := env.Parse(&e); err != nil {
		return "config.yaml"
	}
	return e.Path
}

// NewRouletteConfigFromYAML читает настройки игры из файла.
// Если файла нет, возвращаются значения по умолчанию.
func NewRouletteConfigFromYAML(path string) (config.RouletteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ParseRouletteConfig(nil)
		}
		return nil, fmt.Errorf("read roulette config: %w", err)
	}
	return ParseRouletteConfig(data)
}

// ParseRouletteConfig разбирает YAML и проверяет значения
func ParseRouletteConfig(data []byte) (config.RouletteConfig, error) {
	var raw rouletteYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse roulette config: %w", err)
	}

	cfg := &rouletteConfig{
		stakes:          defaultStakes,
		maxStake:        raw.MaxStake,
		animationFrames: defaultAnimationFrames,
		animationDelay:  defaultAnimationDelay,
		statsWindowSize: defaultStatsWindowSize,
		seed:            raw.Seed,
	}
	if len(raw.Stakes) > 0 {
		cfg.stakes = raw.Stakes
	}
	if raw.Animation.Frames != nil {
		cfg.animationFrames = *raw.Animation.Frames
	}
	if raw.Animation.Delay != nil {
		cfg.animationDelay = *raw.Animation.Delay
	}
	if raw.Stats.WindowSize != 0 {
		cfg.statsWindowSize = raw.Stats.WindowSize
	}

	if cfg.maxStake < 0 {
		return nil, fmt.Errorf("max_stake must not be negative")
	}
	for _, s := range cfg.stakes {
		if s <= 0 {
			return nil, fmt.Errorf("stake preset %d must be positive", s)
		}
		if cfg.maxStake > 0 && s > cfg.maxStake {
			return nil, fmt.Errorf("stake preset %d exceeds max_stake %d", s, cfg.maxStake)
		}
	}
	if cfg.animationFrames < 0 || cfg.animationDelay < 0 {
		return nil, fmt.Errorf("animation frames and delay must not be negative")
	}
	if cfg.statsWindowSize <= 0 {
		return nil, fmt.Errorf("stats window_size must be positive")
	}

	return cfg, nil
}

func (cfg *rouletteConfig) Stakes() []int {
	out := make([]int, len(cfg.stakes))
	copy(out, cfg.stakes)
	return out
}

func (cfg *rouletteConfig) MaxStake() int {
	return cfg.maxStake
}

func (cfg *rouletteConfig) AnimationFrames() int {
	return cfg.animationFrames
}

func (cfg *rouletteConfig) AnimationDelay() time.Duration {
	return cfg.animationDelay
}

func (cfg *rouletteConfig) StatsWindowSize() int {
	return cfg.statsWindowSize
}

func (cfg *rouletteConfig) Seed() uint64 {
	return cfg.seed
}
