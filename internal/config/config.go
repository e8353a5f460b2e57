package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	minFPS = 1
	maxFPS = 120
)

type Config struct {
	// OptionsPath is the default options feed; --options overrides it.
	OptionsPath string `env:"RULETA_OPTIONS" envDefault:"options.json"`
	// DBPath overrides the default sqlite store location.
	DBPath string `env:"RULETA_DB"`
	FPS    int    `env:"RULETA_FPS" envDefault:"30"`
}

func Read() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	if cfg.FPS < minFPS {
		cfg.FPS = minFPS
	}
	if cfg.FPS > maxFPS {
		cfg.FPS = maxFPS
	}
	return cfg, nil
}

// FrameInterval converts the configured frame rate into the tick period
// that paces the spin animation.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
